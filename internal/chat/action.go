package chat

import (
	"fmt"
	"strconv"
	"strings"

	"salesdesk/internal/domain"
)

// Callback payloads travel through the transport as opaque strings. They are
// versioned pipe-joined records ("v1|sel|year|2024") so old buttons from
// messages sent before a deploy decode cleanly or fail as ErrUnknownAction
// instead of being misread.

const actionVersion = "v1"

// Field names accepted by Select actions.
const (
	FieldYear     = "year"
	FieldMonth    = "month"
	FieldCustomer = "customer"
)

// Action is the decoded form of a callback payload. Exactly one concrete type
// below is returned by Decode.
type Action interface {
	isAction()
}

// Select sets one funnel filter (year, month or customer).
type Select struct {
	Field string
	Value string
}

// Page navigates to another page of the current list.
type Page struct {
	Index int
}

// Back discards the stage being left.
type Back struct{}

// Cancel clears the whole selection and returns to the main menu.
type Cancel struct{}

// Menu enters a top-level flow.
type Menu struct {
	Flow domain.Flow
}

// Doc opens one document from the current list.
type Doc struct {
	DocumentID int64
}

// Download requests a generated spreadsheet for the current selection.
type Download struct {
	Kind string // "invoice" or "act"
}

// Contact shows the company contact card.
type Contact struct{}

// Noop is attached to non-interactive buttons such as the page indicator.
type Noop struct{}

func (Select) isAction()   {}
func (Page) isAction()     {}
func (Back) isAction()     {}
func (Cancel) isAction()   {}
func (Menu) isAction()     {}
func (Doc) isAction()      {}
func (Download) isAction() {}
func (Contact) isAction()  {}
func (Noop) isAction()     {}

// EncodeSelect builds the payload for choosing a filter value.
func EncodeSelect(field, value string) string {
	return strings.Join([]string{actionVersion, "sel", field, value}, "|")
}

// EncodePage builds the payload for jumping to a page.
func EncodePage(index int) string {
	return fmt.Sprintf("%s|page|%d", actionVersion, index)
}

// EncodeBack builds the payload for the back control.
func EncodeBack() string { return actionVersion + "|back" }

// EncodeCancel builds the payload for the cancel control.
func EncodeCancel() string { return actionVersion + "|cancel" }

// EncodeMenu builds the payload for entering a flow.
func EncodeMenu(flow domain.Flow) string {
	return fmt.Sprintf("%s|menu|%s", actionVersion, flow)
}

// EncodeDoc builds the payload for opening a document.
func EncodeDoc(documentID int64) string {
	return fmt.Sprintf("%s|doc|%d", actionVersion, documentID)
}

// EncodeDownload builds the payload for requesting a spreadsheet.
func EncodeDownload(kind string) string {
	return fmt.Sprintf("%s|dl|%s", actionVersion, kind)
}

// EncodeContact builds the payload for the contact card button.
func EncodeContact() string { return actionVersion + "|contact" }

// EncodeNoop builds the payload for non-interactive buttons.
func EncodeNoop() string { return actionVersion + "|noop" }

// Decode parses a callback payload. Payloads are decoded exactly once, at
// this boundary; anything malformed or from an unknown version is
// ErrUnknownAction.
func Decode(data string) (Action, error) {
	parts := strings.Split(data, "|")
	if len(parts) < 2 || parts[0] != actionVersion {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
	}

	switch parts[1] {
	case "sel":
		if len(parts) != 4 || parts[3] == "" {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		switch parts[2] {
		case FieldYear, FieldMonth, FieldCustomer:
			return Select{Field: parts[2], Value: parts[3]}, nil
		}
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)

	case "page":
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil || index < 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		return Page{Index: index}, nil

	case "back":
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		return Back{}, nil

	case "cancel":
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		return Cancel{}, nil

	case "menu":
		if len(parts) != 3 || !domain.ValidFlows[domain.Flow(parts[2])] {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		return Menu{Flow: domain.Flow(parts[2])}, nil

	case "doc":
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		id, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		return Doc{DocumentID: id}, nil

	case "dl":
		if len(parts) != 3 || (parts[2] != "invoice" && parts[2] != "act") {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
		}
		return Download{Kind: parts[2]}, nil

	case "contact":
		return Contact{}, nil

	case "noop":
		return Noop{}, nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
}
