package cache

import "time"

// Cache namespaces. One namespace per query family; the TTL table below
// pairs each with how stale its data may grow before a recompute.
const (
	NSInvoices       = "invoices"
	NSInvoiceLines   = "invoice_lines"
	NSReconciliation = "reconciliation"
	NSYears          = "years"
	NSMonths         = "months"
	NSCustomers      = "customers"
	NSCustomerName   = "customer_name"
)

// ttlTable maps namespaces to expiry. Directory-like data (years, months,
// customer names) changes rarely and lives longest; per-document detail is
// the most volatile.
var ttlTable = map[string]time.Duration{
	NSInvoices:       10 * time.Minute,
	NSInvoiceLines:   5 * time.Minute,
	NSReconciliation: 10 * time.Minute,
	NSYears:          time.Hour,
	NSMonths:         time.Hour,
	NSCustomers:      30 * time.Minute,
	NSCustomerName:   time.Hour,
}

// defaultTTL covers namespaces missing from the table.
const defaultTTL = 5 * time.Minute

// TTL returns the configured time-to-live for a namespace.
func TTL(namespace string) time.Duration {
	if ttl, ok := ttlTable[namespace]; ok {
		return ttl
	}
	return defaultTTL
}
