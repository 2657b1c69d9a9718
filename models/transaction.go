package models

// Transaction types as stored by the data API.
const (
	TransactionTypeIncome  = "Income"
	TransactionTypeExpense = "Expense"
)

type Transaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source,omitempty"`
}

// IsIncome reports whether the transaction is an income record.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction is an expense record.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
