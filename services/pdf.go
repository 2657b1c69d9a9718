package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"wealthgenie/backend/models"
)

// Page geometry in points (A4 portrait).
const (
	pdfMargin    = 40.0
	pdfTopY      = 60.0
	pdfRowHeight = 20.0
)

// Section header fill colors.
var (
	pdfBlue   = [3]int{59, 130, 246}
	pdfGreen  = [3]int{16, 185, 129}
	pdfPurple = [3]int{139, 92, 246}
)

type pdfReport struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	pageW float64
	pageH float64
	maxW  float64
	y     float64
}

// BuildPDF renders the paginated document report. Sections are drawn in a
// fixed order with per-section page-break thresholds; the recent-transactions
// section always starts on a fresh page. Every page gets the centered
// "<app> | Page i of N" footer.
func BuildPDF(snapshot models.Snapshot, opts models.ExportOptions) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pageW, pageH := pdf.GetPageSize()

	r := &pdfReport{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		pageW: pageW,
		pageH: pageH,
		maxW:  pageW - pdfMargin*2,
		y:     pdfTopY,
	}

	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(0, pageH-30)
		pdf.CellFormat(pageW, 10,
			fmt.Sprintf("%s | Page %d of {nb}", models.ReportFooter, pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	sum := Summarize(snapshot)

	r.titleBlock(snapshot.Profile)
	r.financialSummary(sum)
	r.emiOverview(snapshot.EMIs, sum, opts)
	r.savingsGoals(snapshot.Savings, sum, opts)
	r.categoryBreakdown(snapshot.Transactions, opts)
	r.recentTransactions(snapshot.Transactions, opts)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) titleBlock(profile models.Profile) {
	r.pdf.SetFont("Helvetica", "B", 28)
	r.pdf.SetTextColor(37, 99, 235)
	r.textCentered(models.AppName)

	r.y += 35
	r.pdf.SetFont("Helvetica", "B", 18)
	r.pdf.SetTextColor(0, 0, 0)
	r.textCentered(models.ReportTitle)

	r.y += 30
	r.pdf.SetFont("Helvetica", "", 11)
	r.pdf.SetTextColor(100, 100, 100)
	r.textCentered("Generated: " + time.Now().Format("02/01/2006, 15:04:05"))

	r.y += 20
	r.textCentered("User: " + profile.DisplayName())

	r.y += 60
}

func (r *pdfReport) financialSummary(sum models.FinancialSummary) {
	r.sectionTitle("Financial Summary")
	r.drawTable([]string{"Metric", "Value"}, [][]string{
		{"Total Income", currency(sum.TotalIncome)},
		{"Total Expenses", currency(sum.TotalExpenses)},
		{"Net Savings", currency(sum.NetSavings)},
	}, pdfBlue)
	r.y += 20
}

func (r *pdfReport) emiOverview(emis []models.EMI, sum models.FinancialSummary, opts models.ExportOptions) {
	if !opts.EMIs || len(emis) == 0 {
		return
	}
	r.breakPageIfBelow(250)

	r.sectionTitle("EMI Overview")
	r.drawTable([]string{"Metric", "Amount"}, [][]string{
		{"Total Monthly EMI", currency(sum.TotalEMIAmount)},
		{"Total Paid", currency(sum.TotalEMIPaid)},
		{"Remaining", currency(sum.TotalEMIRemaining)},
	}, pdfBlue)
	r.y += 20

	rows := make([][]string, 0, models.MaxPDFEMIRows)
	for i, e := range emis {
		if i == models.MaxPDFEMIRows {
			break
		}
		rows = append(rows, []string{
			truncate(e.Name, models.MaxNameChars),
			currency(e.Amount),
			e.DueDate,
			e.Status,
		})
	}
	r.drawTable([]string{"EMI Name", "Monthly Amount", "Due Date", "Status"}, rows, pdfBlue)

	if len(emis) > models.MaxPDFEMIRows {
		r.note(fmt.Sprintf("... and %d more EMIs", len(emis)-models.MaxPDFEMIRows))
		r.y += 30
	}
}

func (r *pdfReport) savingsGoals(goals []models.SavingsGoal, sum models.FinancialSummary, opts models.ExportOptions) {
	if !opts.Savings || len(goals) == 0 {
		return
	}
	r.breakPageIfBelow(250)

	r.sectionTitle("Savings Goals")
	r.drawTable([]string{"Metric", "Value"}, [][]string{
		{"Total Target", currency(sum.TotalSavingsTarget)},
		{"Current Amount", currency(sum.TotalSavingsCurrent)},
		{"Progress", progressString(sum.TotalSavingsCurrent, sum.TotalSavingsTarget) + "%"},
	}, pdfGreen)
	r.y += 20

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			truncate(g.Name, models.MaxNameChars),
			currency(g.TargetAmount),
			currency(g.CurrentAmount),
			progressString(g.CurrentAmount, g.TargetAmount) + "%",
		})
	}
	r.drawTable([]string{"Goal Name", "Target", "Current", "Progress"}, rows, pdfGreen)
}

func (r *pdfReport) categoryBreakdown(transactions []models.Transaction, opts models.ExportOptions) {
	shares := CategoryBreakdown(transactions)
	if !opts.Categories || len(shares) == 0 {
		return
	}
	r.breakPageIfBelow(200)

	r.sectionTitle("Expense Breakdown by Category")
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{s.Category, currency(s.Total), percent1(s.Percent) + "%"})
	}
	r.drawTable([]string{"Category", "Amount", "Percentage"}, rows, pdfPurple)
}

func (r *pdfReport) recentTransactions(transactions []models.Transaction, opts models.ExportOptions) {
	if !opts.Income && !opts.Expenses {
		return
	}
	if len(transactions) == 0 {
		return
	}

	// The transaction listing always opens a fresh page.
	r.pdf.AddPage()
	r.y = pdfTopY

	r.sectionTitle(fmt.Sprintf("Recent Transactions (Last %d)", models.MaxPDFTransactionRows))

	filtered := filterTransactions(transactions, opts)
	recent := recentFirst(filtered)
	if len(recent) > models.MaxPDFTransactionRows {
		recent = recent[:models.MaxPDFTransactionRows]
	}

	rows := make([][]string, 0, len(recent))
	for _, t := range recent {
		rows = append(rows, []string{
			t.Date,
			truncate(t.Description, models.MaxDescriptionChars),
			truncate(t.Category, models.MaxCategoryChars),
			truncate(t.Type, models.MaxTypeChars),
			currency(t.Amount),
		})
	}
	r.drawTable([]string{"Date", "Description", "Category", "Type", "Amount"}, rows, pdfBlue)

	if len(filtered) > models.MaxPDFTransactionRows {
		r.note(fmt.Sprintf("... and %d more transactions", len(filtered)-models.MaxPDFTransactionRows))
	}
}

// drawTable renders a header row with a colored fill and white bold text,
// then striped data rows. The last cell of a row is right-aligned when it
// carries a currency value. Overflow past the bottom margin starts a new
// page mid-table.
func (r *pdfReport) drawTable(headers []string, rows [][]string, headerColor [3]int) {
	colWidth := r.maxW / float64(len(headers))

	r.pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	r.pdf.Rect(pdfMargin, r.y, r.maxW, pdfRowHeight, "F")
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		r.pdf.Text(pdfMargin+float64(i)*colWidth+5, r.y+14, r.tr(h))
	}
	r.y += pdfRowHeight

	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont("Helvetica", "", 9)
	for rowIndex, row := range rows {
		if rowIndex%2 == 0 {
			r.pdf.SetFillColor(245, 245, 245)
			r.pdf.Rect(pdfMargin, r.y, r.maxW, pdfRowHeight, "F")
		}
		for colIndex, cell := range row {
			if colIndex == len(row)-1 && strings.Contains(cell, models.PDFCurrencyPrefix) {
				w := r.pdf.GetStringWidth(r.tr(cell))
				r.pdf.Text(pdfMargin+float64(colIndex+1)*colWidth-10-w, r.y+14, r.tr(cell))
			} else {
				r.pdf.Text(pdfMargin+float64(colIndex)*colWidth+5, r.y+14, r.tr(cell))
			}
		}
		r.y += pdfRowHeight

		if r.y > r.pageH-100 {
			r.pdf.AddPage()
			r.y = pdfTopY
			r.pdf.SetTextColor(0, 0, 0)
			r.pdf.SetFont("Helvetica", "", 9)
		}
	}
	r.y += 10
}

func (r *pdfReport) sectionTitle(title string) {
	r.pdf.SetFont("Helvetica", "B", 16)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.Text(pdfMargin, r.y, r.tr(title))
	r.y += 30
}

func (r *pdfReport) note(text string) {
	r.pdf.SetFont("Helvetica", "I", 9)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.Text(pdfMargin, r.y+10, r.tr(text))
}

func (r *pdfReport) textCentered(text string) {
	w := r.pdf.GetStringWidth(r.tr(text))
	r.pdf.Text((r.pageW-w)/2, r.y, r.tr(text))
}

// breakPageIfBelow starts a new page when fewer than threshold points remain
// before the bottom edge.
func (r *pdfReport) breakPageIfBelow(threshold float64) {
	if r.y > r.pageH-threshold {
		r.pdf.AddPage()
		r.y = pdfTopY
	}
}
