package models

// SavingsStatusOnTrack is the default status for goals the data API stored
// without one.
const SavingsStatusOnTrack = "on-track"

// SavingsGoal is a target amount the user intends to accumulate by a
// deadline, tracked against a current amount (optional, defaults to 0).
type SavingsGoal struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount,omitempty"`
	Deadline      string  `json:"deadline"`
	Status        string  `json:"status,omitempty"`
}
