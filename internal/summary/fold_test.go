package summary

import (
	"testing"
	"time"

	"github.com/rappen-dev/rappen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(day int, txType model.TransactionType, amount, balance float64, category model.Category) model.Transaction {
	date := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
	t := model.Transaction{
		Date:         date,
		Type:         txType,
		Category:     category,
		BalanceAfter: balance,
		YearKey:      model.YearKey(date),
		MonthKey:     model.MonthKey(date),
		DayKey:       model.DayKey(date),
	}
	if txType == model.TypeCredit {
		t.CreditAmount = amount
	} else {
		t.DebitAmount = amount
	}
	t.Amount = amount
	return t
}

func TestFoldExcludesSavingsTransfers(t *testing.T) {
	transactions := []model.Transaction{
		tx(1, model.TypeCredit, 5000, 6000, model.CategoryUncategorized),
		tx(2, model.TypeDebit, 1200, 4800, "Rent"),
		tx(3, model.TypeDebit, 500, 4300, model.CategorySavingsTransfer),
		tx(4, model.TypeCredit, 100, 4400, model.CategorySavingsTransfer),
	}

	s := Fold("2024-03", "March 2024", transactions, false)

	assert.Equal(t, 5000.0, s.Income)
	assert.Equal(t, 1200.0, s.Outcome)
	assert.Equal(t, 3800.0, s.Savings)
	assert.Equal(t, 100.0, s.SavingsIn)
	assert.Equal(t, 500.0, s.SavingsOut)
	assert.Equal(t, -400.0, s.SavingsMovement)
	assert.Equal(t, 4, s.TransactionCount)
	assert.Nil(t, s.Balance)
}

func TestFoldBalanceLastByDate(t *testing.T) {
	transactions := []model.Transaction{
		tx(2, model.TypeDebit, 10, 300, model.CategoryUncategorized),
		tx(1, model.TypeDebit, 10, 100, model.CategoryUncategorized),
		tx(3, model.TypeDebit, 10, 700, model.CategoryUncategorized),
	}

	s := Fold("2024-03", "", transactions, true)
	require.NotNil(t, s.Balance)
	assert.Equal(t, 700.0, *s.Balance)
}

func TestFoldBalanceTiebreakIsInputOrder(t *testing.T) {
	// Same-day rows: the later row in input (= storage/file) order wins.
	transactions := []model.Transaction{
		tx(15, model.TypeDebit, 10, 100, model.CategoryUncategorized),
		tx(15, model.TypeDebit, 10, 90, model.CategoryUncategorized),
		tx(15, model.TypeDebit, 10, 80, model.CategoryUncategorized),
	}

	s := Fold("2024-03-15", "", transactions, true)
	require.NotNil(t, s.Balance)
	assert.Equal(t, 80.0, *s.Balance)
}

func TestByDayGroupsAndSorts(t *testing.T) {
	transactions := []model.Transaction{
		tx(20, model.TypeDebit, 50, 950, "Groceries"),
		tx(5, model.TypeDebit, 30, 970, "Groceries"),
		tx(5, model.TypeCredit, 100, 1000, model.CategoryUncategorized),
	}

	days := ByDay(transactions)
	require.Len(t, days, 2)

	assert.Equal(t, "2024-03-05", days[0].Key)
	assert.Equal(t, "5 Mar", days[0].Label)
	assert.Equal(t, 100.0, days[0].Income)
	assert.Equal(t, 30.0, days[0].Outcome)
	assert.Equal(t, 2, days[0].TransactionCount)
	require.NotNil(t, days[0].Balance)

	assert.Equal(t, "2024-03-20", days[1].Key)
	assert.Equal(t, 50.0, days[1].Outcome)
}

func TestByMonthHasNoBalance(t *testing.T) {
	transactions := []model.Transaction{
		tx(5, model.TypeDebit, 30, 970, "Groceries"),
		tx(20, model.TypeDebit, 50, 920, "Groceries"),
	}

	months := ByMonth(transactions)
	require.Len(t, months, 1)
	assert.Equal(t, "2024-03", months[0].Key)
	assert.Equal(t, "March 2024", months[0].Label)
	assert.Equal(t, 80.0, months[0].Outcome)
	assert.Nil(t, months[0].Balance)
}

func TestMonthSummaryEqualsSumOfDaySummaries(t *testing.T) {
	transactions := []model.Transaction{
		tx(1, model.TypeCredit, 5000, 5000, model.CategoryUncategorized),
		tx(2, model.TypeDebit, 100, 4900, "Groceries"),
		tx(2, model.TypeDebit, 200, 4700, model.CategorySavingsTransfer),
		tx(9, model.TypeDebit, 50, 4650, "Dining Out"),
	}

	month := ByMonth(transactions)[0]
	days := ByDay(transactions)

	var income, outcome, savingsIn, savingsOut float64
	for _, d := range days {
		income += d.Income
		outcome += d.Outcome
		savingsIn += d.SavingsIn
		savingsOut += d.SavingsOut
	}

	assert.Equal(t, month.Income, income)
	assert.Equal(t, month.Outcome, outcome)
	assert.Equal(t, month.SavingsIn, savingsIn)
	assert.Equal(t, month.SavingsOut, savingsOut)
}

func TestByCategory(t *testing.T) {
	transactions := []model.Transaction{
		tx(1, model.TypeDebit, 300, 0, "Groceries"),
		tx(2, model.TypeDebit, 100, 0, "Groceries"),
		tx(3, model.TypeDebit, 100, 0, "Dining Out"),
		// Credits never count toward expenses.
		tx(4, model.TypeCredit, 5000, 0, model.CategoryUncategorized),
	}

	categories, total := ByCategory(transactions)
	assert.Equal(t, 500.0, total)
	require.Len(t, categories, 2)

	assert.Equal(t, model.Category("Groceries"), categories[0].Category)
	assert.Equal(t, 400.0, categories[0].Total)
	assert.Equal(t, 2, categories[0].Count)
	assert.Equal(t, 80, categories[0].Percentage)

	assert.Equal(t, model.Category("Dining Out"), categories[1].Category)
	assert.Equal(t, 20, categories[1].Percentage)
}

func TestByCategoryEmpty(t *testing.T) {
	categories, total := ByCategory(nil)
	assert.Empty(t, categories)
	assert.Zero(t, total)
}
