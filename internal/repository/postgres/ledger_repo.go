package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

type ledgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepo creates a PostgreSQL-backed LedgerRepository over the
// back-office sales schema. All queries are read-only; only performed,
// non-deleted sales documents are visible.
func NewLedgerRepo(db *sqlx.DB) port.LedgerRepository {
	return &ledgerRepo{db: db}
}

// buildSalesWhere constructs the dynamic WHERE clause shared by the invoice
// queries. It returns the clause string (starting with "WHERE") and the
// positional arguments.
func buildSalesWhere(filter domain.InvoiceFilter) (clause string, args []interface{}) {
	clause = "WHERE s.sls_performed = 1 AND s.sls_deleted = 0"
	argN := 1

	if filter.Year != 0 {
		clause += fmt.Sprintf(" AND EXTRACT(YEAR FROM s.sls_datetime) = $%d", argN)
		args = append(args, filter.Year)
		argN++
	}
	if filter.Month != 0 {
		clause += fmt.Sprintf(" AND EXTRACT(MONTH FROM s.sls_datetime) = $%d", argN)
		args = append(args, filter.Month)
		argN++
	}
	if filter.Phone != "" {
		clause += fmt.Sprintf(" AND c.cstm_phone = $%d", argN)
		args = append(args, filter.Phone)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}

	return clause, args
}

func (r *ledgerRepo) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceSummary, error) {
	whereClause, args := buildSalesWhere(filter)

	query := fmt.Sprintf(`SELECT
		s.sls_id AS document_id,
		s.sls_datetime AS issued_at,
		c.cstm_id AS customer_id,
		c.cstm_name AS customer_name,
		COALESCE(c.cstm_phone, '') AS customer_phone,
		COALESCE(s.sls_store, '') AS store,
		COALESCE(SUM(i.sli_amount), 0) AS total
	FROM doc_sales s
	JOIN dir_customers c ON s.sls_customer = c.cstm_id
	LEFT JOIN doc_sale_items i ON i.sli_sale = s.sls_id
	%s
	GROUP BY s.sls_id, s.sls_datetime, c.cstm_id, c.cstm_name, c.cstm_phone, s.sls_store
	ORDER BY s.sls_datetime, s.sls_id`, whereClause)

	var rows []domain.InvoiceSummary
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("ledgerRepo.ListInvoices: %w", err)
	}
	return rows, nil
}

func (r *ledgerRepo) GetInvoice(ctx context.Context, documentID int64) (*domain.InvoiceSummary, error) {
	query := `SELECT
		s.sls_id AS document_id,
		s.sls_datetime AS issued_at,
		c.cstm_id AS customer_id,
		c.cstm_name AS customer_name,
		COALESCE(c.cstm_phone, '') AS customer_phone,
		COALESCE(s.sls_store, '') AS store,
		COALESCE(SUM(i.sli_amount), 0) AS total
	FROM doc_sales s
	JOIN dir_customers c ON s.sls_customer = c.cstm_id
	LEFT JOIN doc_sale_items i ON i.sli_sale = s.sls_id
	WHERE s.sls_id = $1 AND s.sls_performed = 1 AND s.sls_deleted = 0
	GROUP BY s.sls_id, s.sls_datetime, c.cstm_id, c.cstm_name, c.cstm_phone, s.sls_store`

	var inv domain.InvoiceSummary
	err := r.db.GetContext(ctx, &inv, query, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ledgerRepo.GetInvoice: %w", err)
	}
	return &inv, nil
}

func (r *ledgerRepo) InvoiceLines(ctx context.Context, documentID int64) ([]domain.InvoiceLine, error) {
	query := `SELECT
		g.gds_code AS goods_code,
		g.gds_name AS goods_name,
		i.sli_quantity AS quantity,
		i.sli_price AS price,
		i.sli_amount AS amount
	FROM doc_sale_items i
	JOIN dir_goods g ON i.sli_goods = g.gds_id
	WHERE i.sli_sale = $1
	ORDER BY i.sli_id`

	var rows []domain.InvoiceLine
	if err := r.db.SelectContext(ctx, &rows, query, documentID); err != nil {
		return nil, fmt.Errorf("ledgerRepo.InvoiceLines: %w", err)
	}
	return rows, nil
}

func (r *ledgerRepo) CustomerLedger(ctx context.Context, phone string, year, month int) ([]domain.LedgerEntry, error) {
	query := `SELECT
		s.sls_id AS document_id,
		s.sls_datetime AS issued_at,
		COALESCE(SUM(i.sli_amount), 0) AS sale_total,
		COALESCE(p.paid, 0) AS paid_total,
		COALESCE(SUM(i.sli_amount), 0) - COALESCE(p.paid, 0) AS debt
	FROM doc_sales s
	JOIN dir_customers c ON s.sls_customer = c.cstm_id
	LEFT JOIN doc_sale_items i ON i.sli_sale = s.sls_id
	LEFT JOIN (
		SELECT pmt_sale, SUM(pmt_amount) AS paid
		FROM doc_payments
		WHERE pmt_deleted = 0
		GROUP BY pmt_sale
	) p ON p.pmt_sale = s.sls_id
	WHERE s.sls_performed = 1 AND s.sls_deleted = 0
		AND c.cstm_phone = $1
		AND EXTRACT(YEAR FROM s.sls_datetime) = $2
		AND EXTRACT(MONTH FROM s.sls_datetime) = $3
	GROUP BY s.sls_id, s.sls_datetime, p.paid
	ORDER BY s.sls_datetime, s.sls_id`

	var rows []domain.LedgerEntry
	if err := r.db.SelectContext(ctx, &rows, query, phone, year, month); err != nil {
		return nil, fmt.Errorf("ledgerRepo.CustomerLedger: %w", err)
	}
	return rows, nil
}

func (r *ledgerRepo) Years(ctx context.Context) ([]int, error) {
	query := `SELECT DISTINCT EXTRACT(YEAR FROM sls_datetime)::int AS year
	FROM doc_sales
	WHERE sls_performed = 1 AND sls_deleted = 0
	ORDER BY year DESC`

	var years []int
	if err := r.db.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("ledgerRepo.Years: %w", err)
	}
	return years, nil
}

func (r *ledgerRepo) Months(ctx context.Context, year int) ([]int, error) {
	query := `SELECT DISTINCT EXTRACT(MONTH FROM sls_datetime)::int AS month
	FROM doc_sales
	WHERE sls_performed = 1 AND sls_deleted = 0
		AND EXTRACT(YEAR FROM sls_datetime) = $1
	ORDER BY month`

	var months []int
	if err := r.db.SelectContext(ctx, &months, query, year); err != nil {
		return nil, fmt.Errorf("ledgerRepo.Months: %w", err)
	}
	return months, nil
}

func (r *ledgerRepo) CustomersWithActivity(ctx context.Context, year, month int) ([]domain.Customer, error) {
	query := `SELECT
		c.cstm_id AS id,
		c.cstm_name AS name,
		COALESCE(c.cstm_phone, '') AS phone,
		COALESCE(SUM(i.sli_amount), 0) AS total
	FROM doc_sales s
	JOIN dir_customers c ON s.sls_customer = c.cstm_id
	LEFT JOIN doc_sale_items i ON i.sli_sale = s.sls_id
	WHERE s.sls_performed = 1 AND s.sls_deleted = 0
		AND EXTRACT(YEAR FROM s.sls_datetime) = $1
		AND EXTRACT(MONTH FROM s.sls_datetime) = $2
	GROUP BY c.cstm_id, c.cstm_name, c.cstm_phone
	ORDER BY c.cstm_name`

	var rows []domain.Customer
	if err := r.db.SelectContext(ctx, &rows, query, year, month); err != nil {
		return nil, fmt.Errorf("ledgerRepo.CustomersWithActivity: %w", err)
	}
	return rows, nil
}

func (r *ledgerRepo) CustomerNameByPhone(ctx context.Context, phone string) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name,
		"SELECT cstm_name FROM dir_customers WHERE cstm_phone = $1 LIMIT 1", phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("ledgerRepo.CustomerNameByPhone: %w", err)
	}
	return name, nil
}
