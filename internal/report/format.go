// Package report turns ledger rows into the texts and document parameters
// the conversation engine sends back to users.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"salesdesk/internal/domain"
)

// maxLinesShown caps the goods positions printed in a detail message; the
// full list goes into the spreadsheet.
const maxLinesShown = 10

var monthNames = [13]string{
	"", "Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// MonthName returns the Russian month name, or the number itself when out of
// range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", month)
	}
	return monthNames[month]
}

// FormatMoney renders an amount as "1 234 567 сум". Whole sums stay whole;
// fractional sums keep two decimals.
func FormatMoney(amount decimal.Decimal) string {
	places := int32(0)
	if !amount.Equal(amount.Truncate(0)) {
		places = 2
	}
	s := amount.StringFixed(places)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out + " сум"
}

// FormatDate renders a date as "02.01.2006".
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// InvoiceListSummary heads the paginated invoice list: period, count and
// grand total.
func InvoiceListSummary(invoices []domain.InvoiceSummary, year, month int) string {
	if len(invoices) == 0 {
		return fmt.Sprintf("❌ За %02d/%d накладные не найдены", month, year)
	}
	total := decimal.Zero
	for _, inv := range invoices {
		total = total.Add(inv.Total)
	}
	return fmt.Sprintf(
		"📦 Накладные за %02d/%d\n\n📊 Найдено: %d накладных\n💰 Общая сумма: %s\n\nВыберите накладную для детального просмотра:",
		month, year, len(invoices), FormatMoney(total),
	)
}

// InvoiceButtonLabel is the one-line list entry for a document.
func InvoiceButtonLabel(inv domain.InvoiceSummary) string {
	name := inv.CustomerName
	if len([]rune(name)) > 25 {
		name = string([]rune(name)[:22]) + "..."
	}
	return fmt.Sprintf("#%d %s • %s", inv.DocumentID, FormatDate(inv.IssuedAt), name)
}

// InvoiceDetails renders one document with its goods positions, capped at
// maxLinesShown with a "… and N more" tail.
func InvoiceDetails(inv *domain.InvoiceSummary, lines []domain.InvoiceLine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 Накладная #%d\n", inv.DocumentID)
	if inv.Store != "" {
		fmt.Fprintf(&b, "🏪 Магазин: %s\n", inv.Store)
	}
	fmt.Fprintf(&b, "📅 Дата: %s\n", FormatDate(inv.IssuedAt))
	if inv.CustomerName != "" {
		fmt.Fprintf(&b, "👤 Покупатель: %s\n", inv.CustomerName)
	}
	b.WriteString("\n📦 Товары:\n")

	shown := lines
	if len(shown) > maxLinesShown {
		shown = shown[:maxLinesShown]
	}
	for _, line := range shown {
		fmt.Fprintf(&b, "\n• %s\n  Код: %d\n  Кол-во: %s\n  Цена: %s\n  Сумма: %s\n",
			line.GoodsName, line.GoodsCode, line.Quantity.String(),
			FormatMoney(line.Price), FormatMoney(line.Amount))
	}
	if rest := len(lines) - maxLinesShown; rest > 0 {
		fmt.Fprintf(&b, "\n... и еще %d товаров\n", rest)
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	fmt.Fprintf(&b, "\n💰 Итого: %s", FormatMoney(total))
	return b.String()
}

// ReconciliationSummary heads the reconciliation result: customer, period,
// document count, period total and closing debt.
func ReconciliationSummary(entries []domain.LedgerEntry, customerName string, year, month int) string {
	if len(entries) == 0 {
		return fmt.Sprintf("❌ За %02d/%d данные для акта сверки не найдены", month, year)
	}
	totalSum := decimal.Zero
	totalDebt := decimal.Zero
	for _, e := range entries {
		totalSum = totalSum.Add(e.SaleTotal)
		totalDebt = totalDebt.Add(e.Debt)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📄 Акт сверки за %02d/%d\n", month, year)
	if customerName != "" {
		fmt.Fprintf(&b, "👤 Покупатель: %s\n", customerName)
	}
	fmt.Fprintf(&b, "\n📊 Найдено: %d документов\n", len(entries))
	fmt.Fprintf(&b, "💵 Общая сумма за период: %s\n", FormatMoney(totalSum))
	fmt.Fprintf(&b, "💰 Итоговый долг: %s\n", FormatMoney(totalDebt))
	b.WriteString("\n(подробности — в Excel)")
	return b.String()
}

// BuildActParams assembles the reconciliation act parameters for a period.
// The opening balance is zero (the act covers the period in isolation) and
// the closing balance is the sum of per-document debts.
func BuildActParams(sellerName, customerName string, year, month int, entries []domain.LedgerEntry) domain.ActParams {
	closing := decimal.Zero
	for _, e := range entries {
		closing = closing.Add(e.Debt)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return domain.ActParams{
		SellerName:     sellerName,
		CustomerName:   customerName,
		PeriodStart:    start,
		PeriodEnd:      end,
		OpeningBalance: decimal.Zero,
		ClosingBalance: closing,
	}
}
