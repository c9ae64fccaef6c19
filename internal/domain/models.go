package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile represents a chat user linked to a back-office customer by phone.
type Profile struct {
	ChatID    int64     `db:"chat_id" json:"chat_id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Username  string    `db:"username" json:"username"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Registered reports whether the profile has a phone number on file.
func (p *Profile) Registered() bool {
	return p != nil && p.Phone != ""
}

// InvoiceSummary is one sales document row from the ledger, grouped with its total.
// Rows are read-only projections; they are never written back.
type InvoiceSummary struct {
	DocumentID    int64           `db:"document_id" json:"document_id"`
	IssuedAt      time.Time       `db:"issued_at" json:"issued_at"`
	CustomerID    int64           `db:"customer_id" json:"customer_id"`
	CustomerName  string          `db:"customer_name" json:"customer_name"`
	CustomerPhone string          `db:"customer_phone" json:"customer_phone"`
	Store         string          `db:"store" json:"store"`
	Total         decimal.Decimal `db:"total" json:"total"`
}

// InvoiceLine is a single goods position inside one sales document.
type InvoiceLine struct {
	GoodsCode int64           `db:"goods_code" json:"goods_code"`
	GoodsName string          `db:"goods_name" json:"goods_name"`
	Quantity  decimal.Decimal `db:"quantity" json:"quantity"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
}

// LedgerEntry is one reconciliation row for a customer: a sales document with
// the amount sold, the amount paid against it, and the resulting debt.
type LedgerEntry struct {
	DocumentID int64           `db:"document_id" json:"document_id"`
	IssuedAt   time.Time       `db:"issued_at" json:"issued_at"`
	SaleTotal  decimal.Decimal `db:"sale_total" json:"sale_total"`
	PaidTotal  decimal.Decimal `db:"paid_total" json:"paid_total"`
	Debt       decimal.Decimal `db:"debt" json:"debt"`
}

// Customer identifies one back-office counterparty with period activity.
type Customer struct {
	ID    int64           `db:"id" json:"id"`
	Name  string          `db:"name" json:"name"`
	Phone string          `db:"phone" json:"phone"`
	Total decimal.Decimal `db:"total" json:"total"`
}

// InvoiceFilter narrows ListInvoices. Phone is empty for admin (all customers).
type InvoiceFilter struct {
	Year  int
	Month int
	Phone string
}

// ActParams carries everything the reconciliation act spreadsheet needs
// besides the entry rows themselves.
type ActParams struct {
	SellerName     string          `json:"seller_name"`
	CustomerName   string          `json:"customer_name"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// Button is one pressable control in a reply keyboard row.
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// DocumentRef points at a generated spreadsheet the user may download.
type DocumentRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Reply is the renderable result handed back to the chat transport.
type Reply struct {
	Text     string       `json:"text"`
	Buttons  [][]Button   `json:"buttons,omitempty"`
	Document *DocumentRef `json:"document,omitempty"`
}
