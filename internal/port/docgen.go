package port

import "salesdesk/internal/domain"

// DocumentGenerator renders ledger rows into downloadable spreadsheets.
// The core only supplies rows and a parameter record; spreadsheet internals
// stay behind this interface.
type DocumentGenerator interface {
	Invoice(supplier string, inv *domain.InvoiceSummary, lines []domain.InvoiceLine) ([]byte, error)
	ReconciliationAct(params domain.ActParams, entries []domain.LedgerEntry) ([]byte, error)
}
