// Package summary folds sets of transactions into time-bucketed aggregates.
package summary

import (
	"math"
	"sort"
	"time"

	"github.com/rappen-dev/rappen/internal/model"
)

// Fold aggregates the transactions of one bucket. Savings transfers are
// excluded from income/outcome and tracked in savingsIn/savingsOut instead.
// When withBalance is set (day-level buckets), the balance is taken from the
// transaction latest by date; for equal dates the later row in the input
// wins, so callers must pass rows in storage (= original file) order.
func Fold(key, label string, transactions []model.Transaction, withBalance bool) model.BucketSummary {
	s := model.BucketSummary{
		Key:              key,
		Label:            label,
		TransactionCount: len(transactions),
	}

	var balance float64
	var balanceDate time.Time

	for _, tx := range transactions {
		if tx.Category == model.CategorySavingsTransfer {
			s.SavingsIn += tx.CreditAmount
			s.SavingsOut += tx.DebitAmount
		} else {
			s.Income += tx.CreditAmount
			s.Outcome += tx.DebitAmount
		}

		if !tx.Date.Before(balanceDate) {
			balanceDate = tx.Date
			balance = tx.BalanceAfter
		}
	}

	s.Savings = s.Income - s.Outcome
	s.SavingsMovement = s.SavingsIn - s.SavingsOut

	if withBalance && len(transactions) > 0 {
		s.Balance = &balance
	}

	return s
}

// ByMonth groups transactions by month key and folds each group, sorted by
// key ascending. Balance is a daily snapshot concept and is not populated at
// month granularity.
func ByMonth(transactions []model.Transaction) []model.BucketSummary {
	return foldGroups(transactions, func(tx model.Transaction) string { return tx.MonthKey }, monthLabel, false)
}

// ByDay groups transactions by day key and folds each group, sorted by key
// ascending, with the end-of-day balance populated.
func ByDay(transactions []model.Transaction) []model.BucketSummary {
	return foldGroups(transactions, func(tx model.Transaction) string { return tx.DayKey }, dayLabel, true)
}

// ByCategory breaks one set of debit transactions down per category, sorted
// by total descending. Credits are ignored; percentages are of total
// expenses, rounded to whole numbers.
func ByCategory(transactions []model.Transaction) ([]model.CategorySummary, float64) {
	totals := make(map[model.Category]*model.CategorySummary)
	var totalExpenses float64

	for _, tx := range transactions {
		if tx.Type != model.TypeDebit {
			continue
		}

		category := tx.Category
		if category == "" {
			category = model.CategoryUncategorized
		}

		entry, ok := totals[category]
		if !ok {
			entry = &model.CategorySummary{Category: category}
			totals[category] = entry
		}
		entry.Total += tx.DebitAmount
		entry.Count++
		totalExpenses += tx.DebitAmount
	}

	out := make([]model.CategorySummary, 0, len(totals))
	for _, entry := range totals {
		if totalExpenses > 0 {
			entry.Percentage = int(math.Round(entry.Total / totalExpenses * 100))
		}
		out = append(out, *entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})

	return out, totalExpenses
}

func foldGroups(transactions []model.Transaction, keyFn func(model.Transaction) string, labelFn func(string) string, withBalance bool) []model.BucketSummary {
	groups := make(map[string][]model.Transaction)
	var keys []string

	for _, tx := range transactions {
		key := keyFn(tx)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], tx)
	}

	sort.Strings(keys)

	out := make([]model.BucketSummary, 0, len(keys))
	for _, key := range keys {
		out = append(out, Fold(key, labelFn(key), groups[key], withBalance))
	}
	return out
}

func monthLabel(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("January 2006")
}

func dayLabel(dayKey string) string {
	t, err := time.Parse("2006-01-02", dayKey)
	if err != nil {
		return dayKey
	}
	return t.Format("2 Jan")
}
