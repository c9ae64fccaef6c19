package domain

// Stage is one discrete step in the guided selection funnel.
type Stage string

const (
	StageIdle             Stage = "idle"
	StageAwaitingPhone    Stage = "awaiting_phone"
	StageAwaitingYear     Stage = "awaiting_year"
	StageAwaitingMonth    Stage = "awaiting_month"
	StageAwaitingCustomer Stage = "awaiting_customer"
	StageAwaitingDocument Stage = "awaiting_document"
)

// Flow identifies a top-level conversation funnel.
type Flow string

const (
	FlowUserInvoices        Flow = "user_invoices"
	FlowUserReconciliation  Flow = "user_reconciliation"
	FlowAdminInvoices       Flow = "admin_invoices"
	FlowAdminReconciliation Flow = "admin_reconciliation"
)

// ValidFlows enumerates the flows accepted from callback payloads.
var ValidFlows = map[Flow]bool{
	FlowUserInvoices:        true,
	FlowUserReconciliation:  true,
	FlowAdminInvoices:       true,
	FlowAdminReconciliation: true,
}

// AdminOnly reports whether the flow requires the admin allow-list.
func (f Flow) AdminOnly() bool {
	return f == FlowAdminInvoices || f == FlowAdminReconciliation
}

// NeedsCustomerStage reports whether the funnel includes an entity
// selection step between month and document.
func (f Flow) NeedsCustomerStage() bool {
	return f == FlowAdminReconciliation
}
