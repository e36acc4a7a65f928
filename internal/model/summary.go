package model

// BucketSummary aggregates the transactions of one time bucket. Savings
// transfers are tracked separately and excluded from income/outcome.
// Balance is only meaningful for day-level buckets; it is the reported
// account balance after the latest transaction of the day.
type BucketSummary struct {
	Key              string   `json:"key"`
	Label            string   `json:"label,omitempty"`
	Income           float64  `json:"income"`
	Outcome          float64  `json:"outcome"`
	Savings          float64  `json:"savings"`
	SavingsIn        float64  `json:"savingsIn"`
	SavingsOut       float64  `json:"savingsOut"`
	SavingsMovement  float64  `json:"savingsMovement"`
	Balance          *float64 `json:"balance,omitempty"`
	TransactionCount int      `json:"transactionCount"`
}

// CategorySummary aggregates one month's debits for a single category.
type CategorySummary struct {
	Category   Category `json:"category"`
	Total      float64  `json:"total"`
	Count      int      `json:"count"`
	Percentage int      `json:"percentage"`
}

// ImportResult reports the outcome of one statement upload.
type ImportResult struct {
	BatchID  string `json:"batchId"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}
