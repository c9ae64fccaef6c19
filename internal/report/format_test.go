package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"salesdesk/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0 сум", FormatMoney(decimal.Zero))
	assert.Equal(t, "150 сум", FormatMoney(d("150")))
	assert.Equal(t, "12 345 сум", FormatMoney(d("12345")))
	assert.Equal(t, "1 234 567 сум", FormatMoney(d("1234567")))
	assert.Equal(t, "1 234 567.50 сум", FormatMoney(d("1234567.5")))
	assert.Equal(t, "-12 345 сум", FormatMoney(d("-12345")))
}

func TestFormatDate(t *testing.T) {
	issued := time.Date(2024, time.June, 3, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "03.06.2024", FormatDate(issued))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Январь", MonthName(1))
	assert.Equal(t, "Июнь", MonthName(6))
	assert.Equal(t, "Декабрь", MonthName(12))
	assert.Equal(t, "13", MonthName(13))
	assert.Equal(t, "0", MonthName(0))
}

func TestInvoiceListSummary(t *testing.T) {
	invoices := []domain.InvoiceSummary{
		{DocumentID: 1, Total: d("100000")},
		{DocumentID: 2, Total: d("250000")},
	}
	text := InvoiceListSummary(invoices, 2024, 6)

	assert.Contains(t, text, "06/2024")
	assert.Contains(t, text, "Найдено: 2")
	assert.Contains(t, text, "350 000 сум")
}

func TestInvoiceListSummary_Empty(t *testing.T) {
	text := InvoiceListSummary(nil, 2024, 6)
	assert.Contains(t, text, "не найдены")
	assert.Contains(t, text, "06/2024")
}

func TestInvoiceDetails_CapsLines(t *testing.T) {
	inv := &domain.InvoiceSummary{
		DocumentID:   42,
		IssuedAt:     time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		Store:        "Центральный склад",
		CustomerName: "ООО Ромашка",
	}
	var lines []domain.InvoiceLine
	for i := 0; i < 13; i++ {
		lines = append(lines, domain.InvoiceLine{
			GoodsCode: int64(1000 + i),
			GoodsName: "Фильтр масляный",
			Quantity:  d("2"),
			Price:     d("50000"),
			Amount:    d("100000"),
		})
	}

	text := InvoiceDetails(inv, lines)

	assert.Contains(t, text, "Накладная #42")
	assert.Contains(t, text, "03.06.2024")
	assert.Contains(t, text, "... и еще 3 товаров")
	assert.Contains(t, text, "Итого: 1 300 000 сум")
	assert.Equal(t, 10, strings.Count(text, "Фильтр масляный"))
}

func TestInvoiceDetails_ShortListHasNoTail(t *testing.T) {
	inv := &domain.InvoiceSummary{DocumentID: 7, IssuedAt: time.Now()}
	lines := []domain.InvoiceLine{
		{GoodsCode: 1, GoodsName: "Свеча зажигания", Quantity: d("4"), Price: d("25000"), Amount: d("100000")},
	}

	text := InvoiceDetails(inv, lines)
	assert.NotContains(t, text, "и еще")
	assert.Contains(t, text, "Итого: 100 000 сум")
}

func TestReconciliationSummary(t *testing.T) {
	entries := []domain.LedgerEntry{
		{DocumentID: 1, SaleTotal: d("500000"), PaidTotal: d("300000"), Debt: d("200000")},
		{DocumentID: 2, SaleTotal: d("100000"), PaidTotal: d("100000"), Debt: d("0")},
	}
	text := ReconciliationSummary(entries, "ООО Ромашка", 2024, 6)

	assert.Contains(t, text, "Акт сверки за 06/2024")
	assert.Contains(t, text, "ООО Ромашка")
	assert.Contains(t, text, "Найдено: 2 документов")
	assert.Contains(t, text, "600 000 сум")
	assert.Contains(t, text, "Итоговый долг: 200 000 сум")
}

func TestReconciliationSummary_Empty(t *testing.T) {
	text := ReconciliationSummary(nil, "ООО Ромашка", 2024, 6)
	assert.Contains(t, text, "не найдены")
}

func TestBuildActParams(t *testing.T) {
	entries := []domain.LedgerEntry{
		{SaleTotal: d("500000"), PaidTotal: d("300000"), Debt: d("200000")},
		{SaleTotal: d("100000"), PaidTotal: d("50000"), Debt: d("50000")},
	}
	params := BuildActParams("AVTOLIDER", "ООО Ромашка", 2024, 6, entries)

	assert.Equal(t, "AVTOLIDER", params.SellerName)
	assert.Equal(t, "ООО Ромашка", params.CustomerName)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), params.PeriodStart)
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), params.PeriodEnd)
	assert.True(t, params.OpeningBalance.IsZero())
	assert.True(t, params.ClosingBalance.Equal(d("250000")))
}

func TestBuildActParams_FebruaryEnd(t *testing.T) {
	params := BuildActParams("AVTOLIDER", "X", 2024, 2, nil)
	assert.Equal(t, 29, params.PeriodEnd.Day())
}
