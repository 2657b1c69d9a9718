package models

// ExportFormat selects which report renderer an export runs through. The two
// formats are mutually exclusive; exactly one is active per export.
type ExportFormat string

const (
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

// Valid reports whether the format is one of the supported renderers.
func (f ExportFormat) Valid() bool {
	return f == FormatXLSX || f == FormatPDF
}

// Extension returns the file extension for the format, without the dot.
func (f ExportFormat) Extension() string {
	return string(f)
}

// MIMEType returns the Content-Type the artifact is served with.
func (f ExportFormat) MIMEType() string {
	if f == FormatPDF {
		return MIMETypePDF
	}
	return MIMETypeXLSX
}

// ExportOptions is the set of section toggles a user picked in the export
// dialog. Each flag is independent; at least one must be set for an export
// to run.
type ExportOptions struct {
	Income     bool `json:"income"`
	Expenses   bool `json:"expenses"`
	Savings    bool `json:"savings"`
	Categories bool `json:"categories"`
	EMIs       bool `json:"emis"`
	Summary    bool `json:"summary"`
}

// Any reports whether at least one section is selected.
func (o ExportOptions) Any() bool {
	return o.Income || o.Expenses || o.Savings || o.Categories || o.EMIs || o.Summary
}

// Snapshot is one user's financial data as returned by the data API. It is
// fetched fresh for every export and discarded afterwards.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	EMIs         []EMI         `json:"emis"`
	Savings      []SavingsGoal `json:"savings"`
	Profile      Profile       `json:"profile"`
}

// Normalize applies the documented defaults for fields the data API may
// omit. It runs once at the fetch boundary so the report builders never
// re-guard individual fields.
func (s *Snapshot) Normalize() {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.EMIs == nil {
		s.EMIs = []EMI{}
	}
	if s.Savings == nil {
		s.Savings = []SavingsGoal{}
	}
	for i := range s.EMIs {
		if s.EMIs[i].Status == "" {
			s.EMIs[i].Status = EMIStatusUpcoming
		}
	}
	for i := range s.Savings {
		if s.Savings[i].Status == "" {
			s.Savings[i].Status = SavingsStatusOnTrack
		}
	}
}
