// Package service defines the interfaces between the import/categorization
// core and its collaborators.
package service

import (
	"context"
	"time"

	"github.com/rappen-dev/rappen/internal/model"
)

// TransactionFilter narrows transaction queries. Zero values mean "no
// constraint". MonthKey takes precedence over the date range, matching the
// query semantics of the HTTP layer.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      model.TransactionType
	YearKey   string
	MonthKey  string
	DayKey    string
	BatchID   string
	Search    string
	SortBy    string
	Limit     int
	Offset    int
	SortDesc  bool
	AutoOnly  bool
}

// Store is the persistence interface consumed by the importer, the
// recategorizer, and the HTTP layer.
type Store interface {
	// InsertTransaction persists one transaction. It returns
	// common.ErrDuplicateEntry when a row with the same non-empty external
	// reference already exists; the storage layer enforces that uniqueness
	// so concurrent imports of overlapping files cannot double-count.
	InsertTransaction(ctx context.Context, tx *model.Transaction) (int64, error)

	// FindByExternalReference returns common.ErrNotFound when no row
	// carries the given reference.
	FindByExternalReference(ctx context.Context, ref string) (*model.Transaction, error)

	GetTransaction(ctx context.Context, id int64) (*model.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	CountTransactions(ctx context.Context, filter TransactionFilter) (int, error)

	// UpdateTransactionCategory sets the category and the manual-override
	// flag. Records flagged manual stay out of automatic recategorization.
	UpdateTransactionCategory(ctx context.Context, id int64, category model.Category, manual bool) error

	DeleteBatch(ctx context.Context, batchID string) (int64, error)
	// DeleteTransactions removes all transactions, or only one year's worth
	// when year is non-empty.
	DeleteTransactions(ctx context.Context, year string) (int64, error)

	// GetUserFullName returns the configured account holder name used for
	// savings-transfer detection; empty when unset.
	GetUserFullName(ctx context.Context) (string, error)
	SetUserFullName(ctx context.Context, name string) error

	Close() error
}
