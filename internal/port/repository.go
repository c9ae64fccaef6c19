package port

import (
	"context"

	"salesdesk/internal/domain"
)

// LedgerRepository defines the read-only aggregation queries against the
// back-office sales schema. Implementations must be side-effect free; all
// call sites route through the cache layer because these queries may be slow.
type LedgerRepository interface {
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceSummary, error)
	GetInvoice(ctx context.Context, documentID int64) (*domain.InvoiceSummary, error)
	InvoiceLines(ctx context.Context, documentID int64) ([]domain.InvoiceLine, error)
	CustomerLedger(ctx context.Context, phone string, year, month int) ([]domain.LedgerEntry, error)
	Years(ctx context.Context) ([]int, error)
	Months(ctx context.Context, year int) ([]int, error)
	CustomersWithActivity(ctx context.Context, year, month int) ([]domain.Customer, error)
	CustomerNameByPhone(ctx context.Context, phone string) (string, error)
}

// ProfileRepository defines persistence for chat user profiles.
type ProfileRepository interface {
	Get(ctx context.Context, chatID int64) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	SetPhone(ctx context.Context, chatID int64, phone string) error
	Count(ctx context.Context) (int, error)
}
