package mocks

import (
	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
)

type MockDocumentGenerator struct {
	mock.Mock
}

func (m *MockDocumentGenerator) Invoice(supplier string, inv *domain.InvoiceSummary, lines []domain.InvoiceLine) ([]byte, error) {
	args := m.Called(supplier, inv, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentGenerator) ReconciliationAct(params domain.ActParams, entries []domain.LedgerEntry) ([]byte, error) {
	args := m.Called(params, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
