package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DocumentService renders ledger data into spreadsheets, persists them and
// hands back a downloadable reference. Object keys carry a uuid suffix so two
// requests for the same document never clash in storage.
type DocumentService interface {
	InvoiceDocument(ctx context.Context, supplier string, inv *domain.InvoiceSummary, lines []domain.InvoiceLine) (*domain.DocumentRef, error)
	ReconciliationDocument(ctx context.Context, params domain.ActParams, entries []domain.LedgerEntry) (*domain.DocumentRef, error)
}

type documentService struct {
	generator     port.DocumentGenerator
	storage       port.ObjectStorage
	presignExpiry int64
}

func NewDocumentService(generator port.DocumentGenerator, storage port.ObjectStorage, presignExpiry int64) DocumentService {
	return &documentService{
		generator:     generator,
		storage:       storage,
		presignExpiry: presignExpiry,
	}
}

func (s *documentService) InvoiceDocument(ctx context.Context, supplier string, inv *domain.InvoiceSummary, lines []domain.InvoiceLine) (*domain.DocumentRef, error) {
	content, err := s.generator.Invoice(supplier, inv, lines)
	if err != nil {
		return nil, fmt.Errorf("rendering invoice %d: %w", inv.DocumentID, err)
	}
	name := fmt.Sprintf("nakladnaya_%d_%s.xlsx", inv.DocumentID, inv.IssuedAt.Format("02-01-2006"))
	return s.store(ctx, "invoices", name, content)
}

func (s *documentService) ReconciliationDocument(ctx context.Context, params domain.ActParams, entries []domain.LedgerEntry) (*domain.DocumentRef, error) {
	content, err := s.generator.ReconciliationAct(params, entries)
	if err != nil {
		return nil, fmt.Errorf("rendering reconciliation act: %w", err)
	}
	name := fmt.Sprintf("akt_sverki_%s_%s.xlsx",
		params.PeriodStart.Format("01-2006"), time.Now().Format("20060102"))
	return s.store(ctx, "acts", name, content)
}

func (s *documentService) store(ctx context.Context, prefix, name string, content []byte) (*domain.DocumentRef, error) {
	key := fmt.Sprintf("%s/%s/%s", prefix, uuid.New().String(), name)
	if err := s.storage.Save(ctx, key, xlsxContentType, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("storing document %s: %w", key, err)
	}
	url, err := s.storage.DownloadURL(ctx, key, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("building download url for %s: %w", key, err)
	}
	return &domain.DocumentRef{Name: name, URL: url}, nil
}
