package models

// EMIStatusUpcoming is the default status for EMIs the data API stored
// without one.
const EMIStatusUpcoming = "upcoming"

// EMI is a recurring loan installment obligation. TotalAmount and Paid are
// optional in the data API and default to 0.
type EMI struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	TotalAmount float64 `json:"totalAmount,omitempty"`
	Paid        float64 `json:"paid,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// Remaining is the outstanding balance on the loan.
func (e EMI) Remaining() float64 {
	return e.TotalAmount - e.Paid
}
