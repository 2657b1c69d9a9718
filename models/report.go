package models

// FinancialSummary is the fixed set of derived totals shown in the summary
// sections of both report formats. All values are computed per export and
// never stored.
type FinancialSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetSavings    float64 `json:"netSavings"`

	TotalEMIAmount    float64 `json:"totalEmiAmount"`
	TotalEMIPaid      float64 `json:"totalEmiPaid"`
	TotalEMIRemaining float64 `json:"totalEmiRemaining"`

	TotalSavingsTarget  float64 `json:"totalSavingsTarget"`
	TotalSavingsCurrent float64 `json:"totalSavingsCurrent"`

	TransactionCount int `json:"transactionCount"`
	EMICount         int `json:"emiCount"`
	SavingsGoalCount int `json:"savingsGoalCount"`
}

// CategoryShare is one row of the expense-by-category breakdown.
type CategoryShare struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Percent  float64 `json:"percent"`
}
