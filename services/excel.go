package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"wealthgenie/backend/models"
)

// Workbook sheet names. The frontend help text references these tabs, so
// they are part of the export contract.
const (
	sheetSummary      = "Summary"
	sheetTransactions = "Transactions"
	sheetEMIs         = "EMIs"
	sheetSavings      = "SavingsGoals"
	sheetCategories   = "Categories"
)

// BuildWorkbook renders the multi-sheet xlsx artifact. The Summary sheet is
// always present; the remaining sheets follow the selection flags. Sheets
// whose source collection is empty get a single placeholder row instead of
// being dropped, so the tab layout stays predictable.
func BuildWorkbook(snapshot models.Snapshot, opts models.ExportOptions) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sum := Summarize(snapshot)

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("error renaming summary sheet: %w", err)
	}
	if err := writeRows(f, sheetSummary, summaryRows(snapshot, sum)); err != nil {
		return nil, err
	}
	f.SetColWidth(sheetSummary, "A", "A", 24)
	f.SetColWidth(sheetSummary, "B", "B", 22)

	if opts.Income || opts.Expenses {
		if err := addSheet(f, sheetTransactions, transactionRows(snapshot.Transactions, opts)); err != nil {
			return nil, err
		}
	}

	if opts.EMIs {
		if err := addSheet(f, sheetEMIs, emiRows(snapshot.EMIs)); err != nil {
			return nil, err
		}
	}

	if opts.Savings {
		if err := addSheet(f, sheetSavings, savingsRows(snapshot.Savings)); err != nil {
			return nil, err
		}
	}

	if opts.Categories {
		if err := addSheet(f, sheetCategories, categoryRows(snapshot.Transactions)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("error creating sheet %s: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &rows[i]); err != nil {
			return fmt.Errorf("error writing row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func summaryRows(snapshot models.Snapshot, sum models.FinancialSummary) [][]interface{} {
	return [][]interface{}{
		{models.AppName + " " + models.ReportTitle},
		{"Generated on:", time.Now().Format("02/01/2006, 15:04:05")},
		{"User:", snapshot.Profile.DisplayName()},
		{},
		{"Financial Summary"},
		{"Metric", "Value (" + models.CurrencySymbol + ")"},
		{"Total Income", amount2(sum.TotalIncome)},
		{"Total Expenses", amount2(sum.TotalExpenses)},
		{"Net Savings", amount2(sum.NetSavings)},
		{},
		{"EMI Summary"},
		{"Total Monthly EMI", amount2(sum.TotalEMIAmount)},
		{"Total Paid", amount2(sum.TotalEMIPaid)},
		{"Remaining", amount2(sum.TotalEMIRemaining)},
		{},
		{"Savings Goals Summary"},
		{"Total Target", amount2(sum.TotalSavingsTarget)},
		{"Total Current", amount2(sum.TotalSavingsCurrent)},
		{"Progress %", progressString(sum.TotalSavingsCurrent, sum.TotalSavingsTarget)},
		{},
		{"Data Counts"},
		{"Transactions", sum.TransactionCount},
		{"EMIs", sum.EMICount},
		{"Savings Goals", sum.SavingsGoalCount},
	}
}

func transactionRows(transactions []models.Transaction, opts models.ExportOptions) [][]interface{} {
	filtered := filterTransactions(transactions, opts)
	if len(filtered) == 0 {
		return [][]interface{}{{"No transactions found"}}
	}

	rows := [][]interface{}{
		{"Date", "Description", "Category", "Type", "Amount", "Source"},
	}
	for _, t := range filtered {
		source := t.Source
		if source == "" {
			source = "N/A"
		}
		rows = append(rows, []interface{}{t.Date, t.Description, t.Category, t.Type, t.Amount, source})
	}
	return rows
}

func emiRows(emis []models.EMI) [][]interface{} {
	if len(emis) == 0 {
		return [][]interface{}{{"No EMIs found"}}
	}

	rows := [][]interface{}{
		{"Name", "Monthly Amount", "Due Date", "Total Amount", "Amount Paid", "Remaining", "Status"},
	}
	for _, e := range emis {
		rows = append(rows, []interface{}{e.Name, e.Amount, e.DueDate, e.TotalAmount, e.Paid, e.Remaining(), e.Status})
	}
	return rows
}

func savingsRows(goals []models.SavingsGoal) [][]interface{} {
	if len(goals) == 0 {
		return [][]interface{}{{"No savings goals found"}}
	}

	rows := [][]interface{}{
		{"Goal", "Target Amount", "Current Amount", "Progress %", "Deadline", "Status"},
	}
	for _, g := range goals {
		rows = append(rows, []interface{}{
			g.Name, g.TargetAmount, g.CurrentAmount,
			progressString(g.CurrentAmount, g.TargetAmount), g.Deadline, g.Status,
		})
	}
	return rows
}

func categoryRows(transactions []models.Transaction) [][]interface{} {
	rows := [][]interface{}{
		{"Category", "Amount (" + models.CurrencySymbol + ")", "Percentage"},
	}
	for _, share := range CategoryBreakdown(transactions) {
		rows = append(rows, []interface{}{share.Category, amount2(share.Total), percent1(share.Percent) + "%"})
	}
	return rows
}
