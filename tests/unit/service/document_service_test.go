package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/domain"
	"salesdesk/internal/service"
	"salesdesk/mocks"
)

func TestInvoiceDocument_RendersStoresAndLinks(t *testing.T) {
	gen := new(mocks.MockDocumentGenerator)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewDocumentService(gen, storage, 3600)
	ctx := context.Background()

	inv := &domain.InvoiceSummary{
		DocumentID: 42,
		IssuedAt:   time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
	}
	gen.On("Invoice", "AVTOLIDER", inv, mock.Anything).Return([]byte("xlsx-bytes"), nil).Once()

	var storedKey string
	storage.On("Save", ctx, mock.AnythingOfType("string"),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", mock.Anything).
		Run(func(args mock.Arguments) { storedKey = args.String(1) }).
		Return(nil).Once()
	storage.On("DownloadURL", ctx, mock.AnythingOfType("string"), int64(3600)).
		Return("https://files.example/doc", nil).Once()

	ref, err := svc.InvoiceDocument(ctx, "AVTOLIDER", inv, nil)
	require.NoError(t, err)

	assert.Equal(t, "nakladnaya_42_03-06-2024.xlsx", ref.Name)
	assert.Equal(t, "https://files.example/doc", ref.URL)
	assert.Contains(t, storedKey, "invoices/")
	assert.Contains(t, storedKey, "nakladnaya_42_03-06-2024.xlsx")
	gen.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestInvoiceDocument_GeneratorFailureSkipsStorage(t *testing.T) {
	gen := new(mocks.MockDocumentGenerator)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewDocumentService(gen, storage, 3600)

	boom := errors.New("render failed")
	inv := &domain.InvoiceSummary{DocumentID: 42, IssuedAt: time.Now()}
	gen.On("Invoice", mock.Anything, inv, mock.Anything).Return(nil, boom).Once()

	_, err := svc.InvoiceDocument(context.Background(), "AVTOLIDER", inv, nil)
	assert.ErrorIs(t, err, boom)
	storage.AssertNotCalled(t, "Save")
}

func TestReconciliationDocument(t *testing.T) {
	gen := new(mocks.MockDocumentGenerator)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewDocumentService(gen, storage, 900)
	ctx := context.Background()

	params := domain.ActParams{
		SellerName:   "AVTOLIDER",
		CustomerName: "ООО Ромашка",
		PeriodStart:  time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:    time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
	gen.On("ReconciliationAct", params, mock.Anything).Return([]byte("xlsx"), nil).Once()
	storage.On("Save", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()
	storage.On("DownloadURL", ctx, mock.AnythingOfType("string"), int64(900)).Return("https://files.example/act", nil).Once()

	ref, err := svc.ReconciliationDocument(ctx, params, nil)
	require.NoError(t, err)
	assert.Contains(t, ref.Name, "akt_sverki_06-2024")
	assert.Equal(t, "https://files.example/act", ref.URL)
	gen.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestReconciliationDocument_StorageFailure(t *testing.T) {
	gen := new(mocks.MockDocumentGenerator)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewDocumentService(gen, storage, 900)

	gen.On("ReconciliationAct", mock.Anything, mock.Anything).Return([]byte("xlsx"), nil).Once()
	storage.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bucket gone")).Once()

	_, err := svc.ReconciliationDocument(context.Background(), domain.ActParams{PeriodStart: time.Now()}, nil)
	assert.Error(t, err)
	storage.AssertNotCalled(t, "DownloadURL")
}
