// Package exporter renders ledger data into Excel workbooks with excelize.
package exporter

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

const (
	invoiceSheet = "Накладная"
	actSheet     = "Акт сверки"
)

// ExcelGenerator implements port.DocumentGenerator.
type ExcelGenerator struct{}

func NewExcelGenerator() *ExcelGenerator { return &ExcelGenerator{} }

var _ port.DocumentGenerator = (*ExcelGenerator)(nil)

type styleSet struct {
	header int
	head   int
	cell   int
	cellL  int
	cellR  int
	total  int
}

func buildStyles(f *excelize.File) (styleSet, error) {
	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	var s styleSet
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return s, err
	}
	s.head, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return s, err
	}
	s.cell, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return s, err
	}
	s.cellL, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return s, err
	}
	s.cellR, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return s, err
	}
	s.total, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    border,
	})
	return s, err
}

// Invoice renders the goods invoice workbook: merged title, supplier line,
// bordered goods table, totals row and a signature block.
func (g *ExcelGenerator) Invoice(supplier string, inv *domain.InvoiceSummary, lines []domain.InvoiceLine) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), invoiceSheet); err != nil {
		return nil, err
	}
	styles, err := buildStyles(f)
	if err != nil {
		return nil, err
	}

	widths := []float64{5, 12, 40, 12, 8, 15, 15}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(invoiceSheet, col, col, w); err != nil {
			return nil, err
		}
	}

	if err := f.MergeCell(invoiceSheet, "A1", "G2"); err != nil {
		return nil, err
	}
	setCell(f, invoiceSheet, "A1", fmt.Sprintf("ТОВАРНАЯ НАКЛАДНАЯ № %d", inv.DocumentID), styles.header)

	if err := f.MergeCell(invoiceSheet, "A3", "G3"); err != nil {
		return nil, err
	}
	setCell(f, invoiceSheet, "A3", "от "+inv.IssuedAt.Format("02.01.2006"), 0)

	setCell(f, invoiceSheet, "A5", "Поставщик: "+supplier, 0)
	if inv.CustomerName != "" {
		setCell(f, invoiceSheet, "A6", "Покупатель: "+inv.CustomerName, 0)
	}

	const startRow = 8
	headers := []string{"№", "Код товара", "Наименование", "Количество", "Ед.изм.", "Цена", "Сумма"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, startRow)
		setCell(f, invoiceSheet, cell, h, styles.head)
	}

	total := decimal.Zero
	row := startRow + 1
	for i, line := range lines {
		setRow(f, invoiceSheet, row, []cellValue{
			{i + 1, styles.cell},
			{line.GoodsCode, styles.cell},
			{line.GoodsName, styles.cellL},
			{line.Quantity.String(), styles.cell},
			{"шт.", styles.cell},
			{moneyCell(line.Price), styles.cellR},
			{moneyCell(line.Amount), styles.cellR},
		})
		total = total.Add(line.Amount)
		row++
	}

	if err := f.MergeCell(invoiceSheet,
		fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row)); err != nil {
		return nil, err
	}
	setCell(f, invoiceSheet, fmt.Sprintf("A%d", row), "ИТОГО:", styles.total)
	setCell(f, invoiceSheet, fmt.Sprintf("G%d", row), moneyCell(total), styles.total)

	row += 3
	setCell(f, invoiceSheet, fmt.Sprintf("A%d", row), "Отпустил: ________________", 0)
	setCell(f, invoiceSheet, fmt.Sprintf("F%d", row), "Получил: ________________", 0)
	row += 2
	setCell(f, invoiceSheet, fmt.Sprintf("A%d", row), "М.П.", 0)
	setCell(f, invoiceSheet, fmt.Sprintf("F%d", row), "М.П.", 0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReconciliationAct renders the reconciliation act workbook: party names,
// period bounds, opening balance, a per-document table and the closing
// balance row.
func (g *ExcelGenerator) ReconciliationAct(params domain.ActParams, entries []domain.LedgerEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), actSheet); err != nil {
		return nil, err
	}
	styles, err := buildStyles(f)
	if err != nil {
		return nil, err
	}

	widths := []float64{5, 15, 14, 18, 18, 18}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(actSheet, col, col, w); err != nil {
			return nil, err
		}
	}

	if err := f.MergeCell(actSheet, "A1", "F2"); err != nil {
		return nil, err
	}
	setCell(f, actSheet, "A1", "АКТ СВЕРКИ ВЗАИМНЫХ РАСЧЕТОВ", styles.header)

	if err := f.MergeCell(actSheet, "A3", "F3"); err != nil {
		return nil, err
	}
	setCell(f, actSheet, "A3", fmt.Sprintf("за период с %s по %s",
		params.PeriodStart.Format("02.01.2006"), params.PeriodEnd.Format("02.01.2006")), 0)

	setCell(f, actSheet, "A5", "Продавец: "+params.SellerName, 0)
	setCell(f, actSheet, "A6", "Покупатель: "+params.CustomerName, 0)
	setCell(f, actSheet, "A7", "Сальдо на начало: "+moneyCell(params.OpeningBalance), 0)

	const startRow = 9
	headers := []string{"№", "Документ", "Дата", "Сумма продажи", "Оплачено", "Долг"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, startRow)
		setCell(f, actSheet, cell, h, styles.head)
	}

	row := startRow + 1
	for i, e := range entries {
		setRow(f, actSheet, row, []cellValue{
			{i + 1, styles.cell},
			{fmt.Sprintf("№ %d", e.DocumentID), styles.cell},
			{e.IssuedAt.Format("02.01.2006"), styles.cell},
			{moneyCell(e.SaleTotal), styles.cellR},
			{moneyCell(e.PaidTotal), styles.cellR},
			{moneyCell(e.Debt), styles.cellR},
		})
		row++
	}

	if err := f.MergeCell(actSheet,
		fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row)); err != nil {
		return nil, err
	}
	setCell(f, actSheet, fmt.Sprintf("A%d", row), "Сальдо на конец:", styles.total)
	setCell(f, actSheet, fmt.Sprintf("F%d", row), moneyCell(params.ClosingBalance), styles.total)

	row += 3
	setCell(f, actSheet, fmt.Sprintf("A%d", row), params.SellerName+": ________________", 0)
	setCell(f, actSheet, fmt.Sprintf("D%d", row), params.CustomerName+": ________________", 0)
	row += 2
	setCell(f, actSheet, fmt.Sprintf("A%d", row), "М.П.", 0)
	setCell(f, actSheet, fmt.Sprintf("D%d", row), "М.П.", 0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type cellValue struct {
	value any
	style int
}

func setRow(f *excelize.File, sheet string, row int, values []cellValue) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		setCell(f, sheet, cell, v.value, v.style)
	}
}

func setCell(f *excelize.File, sheet, cell string, value any, style int) {
	_ = f.SetCellValue(sheet, cell, value)
	if style != 0 {
		_ = f.SetCellStyle(sheet, cell, cell, style)
	}
}

func moneyCell(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
