package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
)

type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceSummary), args.Error(1)
}

func (m *MockLedgerRepo) GetInvoice(ctx context.Context, documentID int64) (*domain.InvoiceSummary, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceSummary), args.Error(1)
}

func (m *MockLedgerRepo) InvoiceLines(ctx context.Context, documentID int64) ([]domain.InvoiceLine, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLine), args.Error(1)
}

func (m *MockLedgerRepo) CustomerLedger(ctx context.Context, phone string, year, month int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, phone, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepo) Years(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockLedgerRepo) Months(ctx context.Context, year int) ([]int, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockLedgerRepo) CustomersWithActivity(ctx context.Context, year, month int) ([]domain.Customer, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockLedgerRepo) CustomerNameByPhone(ctx context.Context, phone string) (string, error) {
	args := m.Called(ctx, phone)
	return args.String(0), args.Error(1)
}
