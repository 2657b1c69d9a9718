package models

// Report identity strings. The filename prefix and footer text are load
// bearing: users and download automation key off the exact patterns.
const (
	AppName        = "WealthGenie"
	ReportTitle    = "Financial Report"
	ReportFooter   = "WealthGenie Financial Tracker"
	ReportBaseName = "WealthGenie_Report"
)

// Currency rendering. The workbook keeps the rupee sign; the core PDF fonts
// carry no U+20B9 glyph, so the PDF renderer uses the ASCII prefix instead.
const (
	CurrencySymbol    = "₹"
	PDFCurrencyPrefix = "Rs."
)

// Per-column character limits for the PDF tables. Display truncation only,
// never applied to the underlying data.
const (
	MaxNameChars        = 25
	MaxDescriptionChars = 20
	MaxCategoryChars    = 15
	MaxTypeChars        = 3
)

// Row caps for the PDF report. Rows beyond the cap collapse into a
// "... and N more" note.
const (
	MaxPDFEMIRows         = 15
	MaxPDFTransactionRows = 30
)

// MIME types for the two export artifacts.
const (
	MIMETypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMETypePDF  = "application/pdf"
)
