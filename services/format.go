package services

import (
	"sort"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"wealthgenie/backend/models"
)

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// currency renders an amount with en-IN digit grouping and the PDF-safe
// currency prefix, always to two decimal places.
func currency(amount float64) string {
	return models.PDFCurrencyPrefix + enIN.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// amount2 renders a plain amount to two decimal places, no grouping. Used in
// the workbook where cells stay close to the raw values.
func amount2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// percent1 renders a percentage to one decimal place, without the sign.
func percent1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// progressString renders current/target as a one-decimal percentage, or the
// bare "0" when the target is unset.
func progressString(current, target float64) string {
	if target <= 0 {
		return "0"
	}
	return percent1(progressPercent(current, target))
}

// truncate caps display text at max runes. Lossy on screen only; the
// underlying records are never modified.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// parseDate understands the two date shapes the data API emits. Unparseable
// dates sort last.
func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// recentFirst returns a copy of the transactions sorted newest first.
func recentFirst(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[i].Date).After(parseDate(out[j].Date))
	})
	return out
}

// filterTransactions drops transaction types the user deselected. With both
// income and expenses selected the collection passes through untouched,
// including any records of other types.
func filterTransactions(transactions []models.Transaction, opts models.ExportOptions) []models.Transaction {
	if opts.Income && opts.Expenses {
		return transactions
	}
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if opts.Income && t.IsIncome() {
			filtered = append(filtered, t)
			continue
		}
		if opts.Expenses && t.IsExpense() {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
