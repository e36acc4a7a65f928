package storage

import (
	"context"
	"testing"
	"time"

	"github.com/rappen-dev/rappen/internal/common"
	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testTransaction(ref string, date time.Time) *model.Transaction {
	return &model.Transaction{
		Date:              date,
		ExternalReference: ref,
		BookingText:       "MIGROS FILIALE 123",
		Currency:          "CHF",
		DebitAmount:       45.90,
		Amount:            45.90,
		BalanceAfter:      1000,
		Type:              model.TypeDebit,
		Category:          "Groceries",
		YearKey:           model.YearKey(date),
		MonthKey:          model.MonthKey(date),
		DayKey:            model.DayKey(date),
		ImportBatchID:     "batch_test",
		ImportedAt:        time.Now().UTC(),
	}
}

func TestInsertAndFindByExternalReference(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	id, err := store.InsertTransaction(ctx, testTransaction("ref-1", date))
	require.NoError(t, err)
	assert.Positive(t, id)

	found, err := store.FindByExternalReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "MIGROS FILIALE 123", found.BookingText)
	assert.Equal(t, model.TypeDebit, found.Type)
	assert.Equal(t, "2024-03-15", found.DayKey)
	assert.True(t, found.Date.Equal(date))

	_, err = store.FindByExternalReference(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInsertDuplicateExternalReference(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	_, err := store.InsertTransaction(ctx, testTransaction("ref-1", date))
	require.NoError(t, err)

	_, err = store.InsertTransaction(ctx, testTransaction("ref-1", date))
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	// Empty references are exempt from the uniqueness constraint.
	_, err = store.InsertTransaction(ctx, testTransaction("", date))
	require.NoError(t, err)
	_, err = store.InsertTransaction(ctx, testTransaction("", date))
	require.NoError(t, err)

	count, err := store.CountTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestListTransactionsFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	march := testTransaction("a", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	april := testTransaction("b", time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC))
	april.BookingText = "Salary"
	april.Type = model.TypeCredit
	april.DebitAmount = 0
	april.CreditAmount = 5000
	april.Amount = 5000
	lastYear := testTransaction("c", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))

	for _, tx := range []*model.Transaction{march, april, lastYear} {
		_, err := store.InsertTransaction(ctx, tx)
		require.NoError(t, err)
	}

	byMonth, err := store.ListTransactions(ctx, service.TransactionFilter{MonthKey: "2024-03"})
	require.NoError(t, err)
	require.Len(t, byMonth, 1)
	assert.Equal(t, "a", byMonth[0].ExternalReference)

	byType, err := store.ListTransactions(ctx, service.TransactionFilter{Type: model.TypeCredit})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Salary", byType[0].BookingText)

	byYear, err := store.ListTransactions(ctx, service.TransactionFilter{YearKey: "2023"})
	require.NoError(t, err)
	require.Len(t, byYear, 1)

	search, err := store.ListTransactions(ctx, service.TransactionFilter{Search: "migros"})
	require.NoError(t, err)
	assert.Len(t, search, 2)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	byRange, err := store.ListTransactions(ctx, service.TransactionFilter{StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, byRange, 2)

	// Default ordering is date ascending.
	all, err := store.ListTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ExternalReference)

	desc, err := store.ListTransactions(ctx, service.TransactionFilter{SortDesc: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, desc, 1)
	assert.Equal(t, "b", desc[0].ExternalReference)
}

func TestSameDayOrderingFollowsInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	first := testTransaction("r1", date)
	first.BalanceAfter = 100
	second := testTransaction("r2", date)
	second.BalanceAfter = 200

	_, err := store.InsertTransaction(ctx, first)
	require.NoError(t, err)
	_, err = store.InsertTransaction(ctx, second)
	require.NoError(t, err)

	all, err := store.ListTransactions(ctx, service.TransactionFilter{DayKey: "2024-03-15"})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 100.0, all[0].BalanceAfter)
	assert.Equal(t, 200.0, all[1].BalanceAfter)
}

func TestUpdateTransactionCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.InsertTransaction(ctx, testTransaction("ref-1", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	require.NoError(t, store.UpdateTransactionCategory(ctx, id, "Dining Out", true))

	got, err := store.GetTransaction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.Category("Dining Out"), got.Category)
	assert.True(t, got.CategoryManual)

	// Manually categorized rows fall out of the auto-only listing used by
	// bulk recategorization.
	auto, err := store.ListTransactions(ctx, service.TransactionFilter{AutoOnly: true})
	require.NoError(t, err)
	assert.Empty(t, auto)

	err = store.UpdateTransactionCategory(ctx, 9999, "Rent", false)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteBatchAndYear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testTransaction("a", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	a.ImportBatchID = "batch_a"
	b := testTransaction("b", time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC))
	b.ImportBatchID = "batch_b"

	for _, tx := range []*model.Transaction{a, b} {
		_, err := store.InsertTransaction(ctx, tx)
		require.NoError(t, err)
	}

	deleted, err := store.DeleteBatch(ctx, "batch_a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = store.DeleteTransactions(ctx, "2023")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	count, err := store.CountTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	name, err := store.GetUserFullName(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)

	require.NoError(t, store.SetUserFullName(ctx, "Jane Doe"))

	name, err = store.GetUserFullName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)

	// Upsert overwrites.
	require.NoError(t, store.SetUserFullName(ctx, "Janet Doe"))
	name, err = store.GetUserFullName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Janet Doe", name)
}
