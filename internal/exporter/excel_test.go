package exporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salesdesk/internal/domain"
)

func reopen(t *testing.T, content []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestInvoice_Workbook(t *testing.T) {
	gen := NewExcelGenerator()
	inv := &domain.InvoiceSummary{
		DocumentID:   42,
		IssuedAt:     time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		CustomerName: "ООО Ромашка",
	}
	lines := []domain.InvoiceLine{
		{GoodsCode: 11113, GoodsName: "Подфарник боковой", Quantity: decimal.NewFromInt(12), Price: decimal.NewFromInt(35000), Amount: decimal.NewFromInt(420000)},
		{GoodsCode: 10939, GoodsName: "Втулка торсиона кабины", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(30000), Amount: decimal.NewFromInt(60000)},
	}

	content, err := gen.Invoice("AVTOLIDER", inv, lines)
	require.NoError(t, err)
	f := reopen(t, content)

	assert.Equal(t, "Накладная", f.GetSheetName(0))

	title, err := f.GetCellValue("Накладная", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ТОВАРНАЯ НАКЛАДНАЯ № 42", title)

	date, _ := f.GetCellValue("Накладная", "A3")
	assert.Equal(t, "от 03.06.2024", date)

	supplier, _ := f.GetCellValue("Накладная", "A5")
	assert.Equal(t, "Поставщик: AVTOLIDER", supplier)

	customer, _ := f.GetCellValue("Накладная", "A6")
	assert.Equal(t, "Покупатель: ООО Ромашка", customer)

	// First goods row sits under the header row.
	name, _ := f.GetCellValue("Накладная", "C9")
	assert.Equal(t, "Подфарник боковой", name)
	amount, _ := f.GetCellValue("Накладная", "G9")
	assert.Equal(t, "420000.00", amount)

	// Totals row follows the two goods rows.
	label, _ := f.GetCellValue("Накладная", "A11")
	assert.Equal(t, "ИТОГО:", label)
	total, _ := f.GetCellValue("Накладная", "G11")
	assert.Equal(t, "480000.00", total)

	signature, _ := f.GetCellValue("Накладная", "A14")
	assert.Contains(t, signature, "Отпустил")
}

func TestInvoice_NoLines(t *testing.T) {
	gen := NewExcelGenerator()
	inv := &domain.InvoiceSummary{DocumentID: 7, IssuedAt: time.Now()}

	content, err := gen.Invoice("AVTOLIDER", inv, nil)
	require.NoError(t, err)
	f := reopen(t, content)

	total, _ := f.GetCellValue("Накладная", "G9")
	assert.Equal(t, "0.00", total)
}

func TestReconciliationAct_Workbook(t *testing.T) {
	gen := NewExcelGenerator()
	params := domain.ActParams{
		SellerName:     "AVTOLIDER",
		CustomerName:   "ООО Ромашка",
		PeriodStart:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:      time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.NewFromInt(200000),
	}
	entries := []domain.LedgerEntry{
		{DocumentID: 1, IssuedAt: time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
			SaleTotal: decimal.NewFromInt(500000), PaidTotal: decimal.NewFromInt(300000), Debt: decimal.NewFromInt(200000)},
	}

	content, err := gen.ReconciliationAct(params, entries)
	require.NoError(t, err)
	f := reopen(t, content)

	assert.Equal(t, "Акт сверки", f.GetSheetName(0))

	title, _ := f.GetCellValue("Акт сверки", "A1")
	assert.Equal(t, "АКТ СВЕРКИ ВЗАИМНЫХ РАСЧЕТОВ", title)

	period, _ := f.GetCellValue("Акт сверки", "A3")
	assert.Equal(t, "за период с 01.06.2024 по 30.06.2024", period)

	seller, _ := f.GetCellValue("Акт сверки", "A5")
	assert.Equal(t, "Продавец: AVTOLIDER", seller)

	opening, _ := f.GetCellValue("Акт сверки", "A7")
	assert.Equal(t, "Сальдо на начало: 0.00", opening)

	doc, _ := f.GetCellValue("Акт сверки", "B10")
	assert.Equal(t, "№ 1", doc)
	debt, _ := f.GetCellValue("Акт сверки", "F10")
	assert.Equal(t, "200000.00", debt)

	closingLabel, _ := f.GetCellValue("Акт сверки", "A11")
	assert.Equal(t, "Сальдо на конец:", closingLabel)
	closing, _ := f.GetCellValue("Акт сверки", "F11")
	assert.Equal(t, "200000.00", closing)
}
