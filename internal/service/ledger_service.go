package service

import (
	"context"
	"strconv"

	"salesdesk/internal/cache"
	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

// LedgerService provides the aggregation queries the conversation engine
// consumes. Every method is read-through cached: results are keyed by the
// query parameters and live for the namespace TTL, so repeated browsing of
// the same month does not hit PostgreSQL again.
type LedgerService interface {
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceSummary, error)
	GetInvoice(ctx context.Context, documentID int64) (*domain.InvoiceSummary, error)
	InvoiceLines(ctx context.Context, documentID int64) ([]domain.InvoiceLine, error)
	CustomerLedger(ctx context.Context, phone string, year, month int) ([]domain.LedgerEntry, error)
	Years(ctx context.Context) ([]int, error)
	Months(ctx context.Context, year int) ([]int, error)
	CustomersWithActivity(ctx context.Context, year, month int) ([]domain.Customer, error)
	CustomerNameByPhone(ctx context.Context, phone string) (string, error)
	InvalidateAll()
}

type ledgerService struct {
	repo  port.LedgerRepository
	cache *cache.Cache
}

func NewLedgerService(repo port.LedgerRepository, c *cache.Cache) LedgerService {
	return &ledgerService{repo: repo, cache: c}
}

func (s *ledgerService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceSummary, error) {
	params := map[string]string{
		"year":  strconv.Itoa(filter.Year),
		"month": strconv.Itoa(filter.Month),
	}
	if filter.Phone != "" {
		params["phone"] = filter.Phone
	}
	key := cache.Key(cache.NSInvoices, params)
	return cache.Fetch(ctx, s.cache, key, cache.TTL(cache.NSInvoices), func(ctx context.Context) ([]domain.InvoiceSummary, error) {
		return s.repo.ListInvoices(ctx, filter)
	})
}

func (s *ledgerService) GetInvoice(ctx context.Context, documentID int64) (*domain.InvoiceSummary, error) {
	key := cache.Key(cache.NSInvoices, map[string]string{"id": strconv.FormatInt(documentID, 10)})
	return cache.Fetch(ctx, s.cache, key, cache.TTL(cache.NSInvoices), func(ctx context.Context) (*domain.InvoiceSummary, error) {
		return s.repo.GetInvoice(ctx, documentID)
	})
}

func (s *ledgerService) InvoiceLines(ctx context.Context, documentID int64) ([]domain.InvoiceLine, error) {
	key := cache.Key(cache.NSInvoiceLines, map[string]string{"id": strconv.FormatInt(documentID, 10)})
	return cache.Fetch(ctx, s.cache, key, cache.TTL(cache.NSInvoiceLines), func(ctx context.Context) ([]domain.InvoiceLine, error) {
		return s.repo.InvoiceLines(ctx, documentID)
	})
}

func (s *ledgerService) CustomerLedger(ctx context.Context, phone string, year, month int) ([]domain.LedgerEntry, error) {
	key := cache.Key(cache.NSReconciliation, map[string]string{
		"phone": phone,
		"year":  strconv.Itoa(year),
		"month": strconv.Itoa(month),
	})
	return cache.Fetch(ctx, s.cache, key, cache.TTL(cache.NSReconciliation), func(ctx context.Context) ([]domain.LedgerEntry, error) {
		return s.repo.CustomerLedger(ctx, phone, year, month)
	})
}

func (s *ledgerService) Years(ctx context.Context) ([]int, error) {
	key := cache.Key(cache.NSYears, nil)
	return cache.Fetch(ctx, s.cache, key, cache.TTL(cache.NSYears), func(ctx context.Context) ([]int, error) {
		return s.repo.Years(ctx)
	})
}

func (s *ledgerService) Months(ctx context.Context, year int) ([]int, error) {
	key := cache.Key(cache.NSMonths, map[string]string{"year": strconv.Itoa(year)})
	return cache.Fetch(ctx, s.cache, key, cache.TTL(cache.NSMonths), func(ctx context.Context) ([]int, error) {
		return s.repo.Months(ctx, year)
	})
}

func (s *ledgerService) CustomersWithActivity(ctx context.Context, year, month int) ([]domain.Customer, error) {
	key := cache.Key(cache.NSCustomers, map[string]string{
		"year":  strconv.Itoa(year),
		"month": strconv.Itoa(month),
	})
	return cache.Fetch(ctx, s.cache, key, cache.TTL(cache.NSCustomers), func(ctx context.Context) ([]domain.Customer, error) {
		return s.repo.CustomersWithActivity(ctx, year, month)
	})
}

func (s *ledgerService) CustomerNameByPhone(ctx context.Context, phone string) (string, error) {
	key := cache.Key(cache.NSCustomerName, map[string]string{"phone": phone})
	return cache.Fetch(ctx, s.cache, key, cache.TTL(cache.NSCustomerName), func(ctx context.Context) (string, error) {
		return s.repo.CustomerNameByPhone(ctx, phone)
	})
}

// InvalidateAll drops every cached query result. Exposed for the admin
// cache-reset command after back-office imports.
func (s *ledgerService) InvalidateAll() {
	s.cache.Clear()
}
