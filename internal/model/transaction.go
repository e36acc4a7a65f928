// Package model defines the core data structures for the rappen application.
package model

import "time"

// TransactionType indicates the direction of a transaction.
type TransactionType string

const (
	// TypeDebit represents money leaving the account.
	TypeDebit TransactionType = "debit"
	// TypeCredit represents money entering the account.
	TypeCredit TransactionType = "credit"
)

// Transaction is one normalized row of a bank statement.
type Transaction struct {
	Date              time.Time       `json:"date"`
	ValueDate         *time.Time      `json:"valueDate"`
	ImportedAt        time.Time       `json:"importedAt"`
	ExternalReference string          `json:"externalReference"`
	ReferenceNumber   string          `json:"referenceNumber"`
	BookingText       string          `json:"bookingText"`
	PaymentPurpose    string          `json:"paymentPurpose"`
	AmountDetails     string          `json:"amountDetails"`
	Details           string          `json:"details"`
	Currency          string          `json:"currency"`
	Type              TransactionType `json:"type"`
	Category          Category        `json:"category"`
	YearKey           string          `json:"yearKey"`
	MonthKey          string          `json:"monthKey"`
	DayKey            string          `json:"dayKey"`
	ImportBatchID     string          `json:"importBatchId"`
	DebitAmount       float64         `json:"debitAmount"`
	CreditAmount      float64         `json:"creditAmount"`
	BalanceAfter      float64         `json:"balanceAfter"`
	Amount            float64         `json:"amount"`
	ID                int64           `json:"id"`
	CategoryManual    bool            `json:"categoryManual"`
}

// YearKey formats a date as a "YYYY" bucket key.
func YearKey(d time.Time) string {
	return d.Format("2006")
}

// MonthKey formats a date as a "YYYY-MM" bucket key.
func MonthKey(d time.Time) string {
	return d.Format("2006-01")
}

// DayKey formats a date as a "YYYY-MM-DD" bucket key.
func DayKey(d time.Time) string {
	return d.Format("2006-01-02")
}
