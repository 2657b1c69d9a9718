package services

import (
	"sort"

	"wealthgenie/backend/models"
)

// Summarize computes the derived totals for one snapshot. Pure function;
// absent optional amounts are already zero after Snapshot.Normalize.
func Summarize(s models.Snapshot) models.FinancialSummary {
	var sum models.FinancialSummary

	for _, t := range s.Transactions {
		switch {
		case t.IsIncome():
			sum.TotalIncome += t.Amount
		case t.IsExpense():
			sum.TotalExpenses += t.Amount
		}
	}
	sum.NetSavings = sum.TotalIncome - sum.TotalExpenses

	for _, e := range s.EMIs {
		sum.TotalEMIAmount += e.Amount
		sum.TotalEMIPaid += e.Paid
	}
	sum.TotalEMIRemaining = sum.TotalEMIAmount - sum.TotalEMIPaid

	for _, g := range s.Savings {
		sum.TotalSavingsTarget += g.TargetAmount
		sum.TotalSavingsCurrent += g.CurrentAmount
	}

	sum.TransactionCount = len(s.Transactions)
	sum.EMICount = len(s.EMIs)
	sum.SavingsGoalCount = len(s.Savings)

	return sum
}

// CategoryBreakdown groups expense transactions by category and returns the
// per-category totals sorted descending by amount. Percent is the share of
// total expenses, 0 when there are no expenses. The relative order of
// equal-amount categories is deterministic (alphabetical) but callers must
// not rely on it.
func CategoryBreakdown(transactions []models.Transaction) []models.CategoryShare {
	totals := make(map[string]float64)
	var totalExpenses float64
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		totals[t.Category] += t.Amount
		totalExpenses += t.Amount
	}

	shares := make([]models.CategoryShare, 0, len(totals))
	for category, total := range totals {
		share := models.CategoryShare{Category: category, Total: total}
		if totalExpenses > 0 {
			share.Percent = total / totalExpenses * 100
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Total != shares[j].Total {
			return shares[i].Total > shares[j].Total
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

// progressPercent is current/target expressed as a percentage, defined as 0
// when the target is 0.
func progressPercent(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target * 100
}
