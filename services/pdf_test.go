package services

import (
	"bytes"
	"fmt"
	"testing"

	"wealthgenie/backend/models"
)

func TestBuildPDFProducesDocument(t *testing.T) {
	data, err := BuildPDF(sampleSnapshot(), allOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", data[:8])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("output has no PDF trailer")
	}
}

func TestBuildPDFEmptySnapshot(t *testing.T) {
	snapshot := models.Snapshot{}
	snapshot.Normalize()

	// Title block and financial summary still render; every optional
	// section is skipped for empty collections.
	data, err := BuildPDF(snapshot, allOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("expected a non-empty document")
	}
}

// pdfPageCount counts page objects in the document. Page dictionaries are
// written uncompressed, so "/Type /Page" appears once per page plus once for
// the "/Type /Pages" root node.
func pdfPageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func manyTransactionSnapshot(n int) models.Snapshot {
	snapshot := sampleSnapshot()
	snapshot.Transactions = nil
	for i := 0; i < n; i++ {
		snapshot.Transactions = append(snapshot.Transactions, models.Transaction{
			Date:        fmt.Sprintf("2024-01-%02d", i%28+1),
			Description: fmt.Sprintf("transaction %d with a description long enough to truncate", i),
			Category:    "Food",
			Type:        "Expense",
			Amount:      float64(i) + 0.5,
		})
	}
	return snapshot
}

func TestBuildPDFManyTransactions(t *testing.T) {
	data, err := BuildPDF(manyTransactionSnapshot(50), allOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("expected a PDF document")
	}

	// The listing caps at 30 rows, so a 50-transaction document paginates
	// exactly like a 30-transaction one; uncapped, the extra rows would
	// overflow onto another page.
	capped, err := BuildPDF(manyTransactionSnapshot(30), allOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := pdfPageCount(data), pdfPageCount(capped); got != want {
		t.Errorf("page count with 50 transactions = %d, want %d (same as 30)", got, want)
	}
}

func TestBuildPDFManyEMIs(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.EMIs = nil
	for i := 0; i < 20; i++ {
		snapshot.EMIs = append(snapshot.EMIs, models.EMI{
			Name:    fmt.Sprintf("Loan %d", i),
			Amount:  100,
			DueDate: "2024-02-05",
			Status:  "upcoming",
		})
	}

	data, err := BuildPDF(snapshot, allOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("expected a non-empty document")
	}
}

func TestRecentTransactionCap(t *testing.T) {
	// The listing shows the 30 most recent; the remainder collapses into the
	// "... and N more transactions" note.
	var transactions []models.Transaction
	for i := 0; i < 50; i++ {
		transactions = append(transactions, models.Transaction{
			Date:   fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1),
			Type:   "Expense",
			Amount: 10,
		})
	}

	filtered := filterTransactions(transactions, models.ExportOptions{Income: true, Expenses: true})
	recent := recentFirst(filtered)
	if len(recent) != 50 {
		t.Fatalf("filtered count = %d", len(recent))
	}
	shown := recent
	if len(shown) > models.MaxPDFTransactionRows {
		shown = shown[:models.MaxPDFTransactionRows]
	}
	if len(shown) != 30 {
		t.Errorf("shown rows = %d, want 30", len(shown))
	}
	if remaining := len(filtered) - len(shown); remaining != 20 {
		t.Errorf("truncation note count = %d, want 20", remaining)
	}
	// Newest first.
	if parseDate(shown[0].Date).Before(parseDate(shown[len(shown)-1].Date)) {
		t.Error("expected newest-first ordering")
	}
}
