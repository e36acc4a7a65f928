package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/rappen-dev/rappen/internal/common"
	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/service"
)

const transactionColumns = `id, external_reference, reference_number, date, value_date,
	booking_text, payment_purpose, amount_details, details, currency,
	debit_amount, credit_amount, balance_after, type, amount,
	year_key, month_key, day_key, category, category_manual,
	import_batch_id, imported_at`

// sortColumns whitelists the sortable fields exposed by the query API.
var sortColumns = map[string]string{
	"date":        "date",
	"amount":      "amount",
	"bookingText": "booking_text",
	"category":    "category",
	"importedAt":  "imported_at",
}

// InsertTransaction persists one transaction and returns its row id. A
// uniqueness violation on the external reference surfaces as
// common.ErrDuplicateEntry so the importer can count the row as skipped.
func (s *SQLiteStore) InsertTransaction(ctx context.Context, tx *model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransaction(tx); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (
			external_reference, reference_number, date, value_date,
			booking_text, payment_purpose, amount_details, details, currency,
			debit_amount, credit_amount, balance_after, type, amount,
			year_key, month_key, day_key, category, category_manual,
			import_batch_id, imported_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ExternalReference,
		tx.ReferenceNumber,
		tx.Date,
		tx.ValueDate,
		tx.BookingText,
		tx.PaymentPurpose,
		tx.AmountDetails,
		tx.Details,
		tx.Currency,
		tx.DebitAmount,
		tx.CreditAmount,
		tx.BalanceAfter,
		string(tx.Type),
		tx.Amount,
		tx.YearKey,
		tx.MonthKey,
		tx.DayKey,
		string(tx.Category),
		tx.CategoryManual,
		tx.ImportBatchID,
		tx.ImportedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, common.ErrDuplicateEntry
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	tx.ID = id
	return id, nil
}

// FindByExternalReference looks up a transaction by its bank-supplied
// reference. Returns common.ErrNotFound when absent.
func (s *SQLiteStore) FindByExternalReference(ctx context.Context, ref string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(ref, "ref"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM transactions WHERE external_reference = ?", transactionColumns), ref)
	return scanTransaction(row)
}

// GetTransaction fetches one transaction by row id.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM transactions WHERE id = ?", transactionColumns), id)
	return scanTransaction(row)
}

// ListTransactions returns transactions matching the filter. Results are
// ordered by the requested sort column with row id as tiebreak, so same-day
// rows keep their original file order.
func (s *SQLiteStore) ListTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	where, args := buildFilter(filter)

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "date"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM transactions%s ORDER BY %s %s, id %s",
		transactionColumns, where, column, direction, direction)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		tx, err := scanTransactionRows(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

// CountTransactions counts transactions matching the filter.
func (s *SQLiteStore) CountTransactions(ctx context.Context, filter service.TransactionFilter) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	where, args := buildFilter(filter)

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions"+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// UpdateTransactionCategory sets the category and manual-override flag of a
// single transaction. Returns common.ErrNotFound for unknown ids.
func (s *SQLiteStore) UpdateTransactionCategory(ctx context.Context, id int64, category model.Category, manual bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET category = ?, category_manual = ? WHERE id = ?",
		string(category), manual, id)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteBatch removes all transactions of one import batch.
func (s *SQLiteStore) DeleteBatch(ctx context.Context, batchID string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(batchID, "batchID"); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE import_batch_id = ?", batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete batch: %w", err)
	}
	return res.RowsAffected()
}

// DeleteTransactions removes all transactions, or one year's worth when year
// is non-empty.
func (s *SQLiteStore) DeleteTransactions(ctx context.Context, year string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var (
		res sql.Result
		err error
	)
	if year == "" {
		res, err = s.db.ExecContext(ctx, "DELETE FROM transactions")
	} else {
		res, err = s.db.ExecContext(ctx, "DELETE FROM transactions WHERE year_key = ?", year)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	return res.RowsAffected()
}

func buildFilter(filter service.TransactionFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.YearKey != "" {
		clauses = append(clauses, "year_key = ?")
		args = append(args, filter.YearKey)
	}
	switch {
	case filter.MonthKey != "":
		clauses = append(clauses, "month_key = ?")
		args = append(args, filter.MonthKey)
	case filter.StartDate != nil || filter.EndDate != nil:
		if filter.StartDate != nil {
			clauses = append(clauses, "date >= ?")
			args = append(args, *filter.StartDate)
		}
		if filter.EndDate != nil {
			clauses = append(clauses, "date <= ?")
			args = append(args, *filter.EndDate)
		}
	}
	if filter.DayKey != "" {
		clauses = append(clauses, "day_key = ?")
		args = append(args, filter.DayKey)
	}
	if filter.BatchID != "" {
		clauses = append(clauses, "import_batch_id = ?")
		args = append(args, filter.BatchID)
	}
	if filter.Search != "" {
		clauses = append(clauses, "booking_text LIKE ? COLLATE NOCASE")
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.AutoOnly {
		clauses = append(clauses, "category_manual = 0")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row *sql.Row) (*model.Transaction, error) {
	tx, err := scanTransactionRows(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return tx, err
}

func scanTransactionRows(scanner rowScanner) (*model.Transaction, error) {
	var tx model.Transaction
	var valueDate sql.NullTime
	var txType, category string

	err := scanner.Scan(
		&tx.ID,
		&tx.ExternalReference,
		&tx.ReferenceNumber,
		&tx.Date,
		&valueDate,
		&tx.BookingText,
		&tx.PaymentPurpose,
		&tx.AmountDetails,
		&tx.Details,
		&tx.Currency,
		&tx.DebitAmount,
		&tx.CreditAmount,
		&tx.BalanceAfter,
		&txType,
		&tx.Amount,
		&tx.YearKey,
		&tx.MonthKey,
		&tx.DayKey,
		&category,
		&tx.CategoryManual,
		&tx.ImportBatchID,
		&tx.ImportedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	if valueDate.Valid {
		vd := valueDate.Time
		tx.ValueDate = &vd
	}
	tx.Type = model.TransactionType(txType)
	tx.Category = model.Category(category)
	return &tx, nil
}
