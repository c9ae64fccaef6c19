package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) InvoiceDocument(ctx context.Context, supplier string, inv *domain.InvoiceSummary, lines []domain.InvoiceLine) (*domain.DocumentRef, error) {
	args := m.Called(ctx, supplier, inv, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentRef), args.Error(1)
}

func (m *MockDocumentService) ReconciliationDocument(ctx context.Context, params domain.ActParams, entries []domain.LedgerEntry) (*domain.DocumentRef, error) {
	args := m.Called(ctx, params, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentRef), args.Error(1)
}
