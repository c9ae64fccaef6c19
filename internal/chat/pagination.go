package chat

import (
	"fmt"

	"salesdesk/internal/domain"
)

// PageSize is the fixed number of rows shown per page across all lists.
const PageSize = 10

// PageView is one window into a larger result set.
type PageView[T any] struct {
	Items      []T
	PageIndex  int
	TotalPages int
	TotalItems int
}

// HasPrev reports whether a previous page exists.
func (v PageView[T]) HasPrev() bool { return v.PageIndex > 0 }

// HasNext reports whether a further page exists.
func (v PageView[T]) HasNext() bool { return v.PageIndex < v.TotalPages-1 }

// Paginate slices items into a page window. A requested index outside
// [0, totalPages-1] is clamped, never an error; an empty input yields one
// empty page. Caller order is preserved.
func Paginate[T any](items []T, pageIndex, pageSize int) PageView[T] {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageIndex > totalPages-1 {
		pageIndex = totalPages - 1
	}

	start := pageIndex * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PageView[T]{
		Items:      items[start:end],
		PageIndex:  pageIndex,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// NavRow builds the navigation button row for a page view: prev only when a
// previous page exists, next only when a further page exists, and a
// non-interactive page indicator whenever there is more than one page.
// A single page yields no row at all.
func NavRow[T any](view PageView[T], encodePage func(pageIndex int) string) []domain.Button {
	if view.TotalPages <= 1 {
		return nil
	}
	var row []domain.Button
	if view.HasPrev() {
		row = append(row, domain.Button{Label: "⬅️", Data: encodePage(view.PageIndex - 1)})
	}
	row = append(row, domain.Button{
		Label: fmt.Sprintf("%d/%d", view.PageIndex+1, view.TotalPages),
		Data:  EncodeNoop(),
	})
	if view.HasNext() {
		row = append(row, domain.Button{Label: "➡️", Data: encodePage(view.PageIndex + 1)})
	}
	return row
}
