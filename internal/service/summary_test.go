package service

import (
	"testing"
	"time"

	"kopilka/internal/models"
	"kopilka/internal/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestFilterByMonth(t *testing.T) {
	txs := []models.Transaction{
		{Date: date(2026, time.March, 5)},
		{Date: date(2026, time.March, 31)},
		{Date: date(2026, time.April, 1)},
		{Date: date(2025, time.March, 15)},
	}

	filtered := filterByMonth(txs, 3, 2026)
	require.Len(t, filtered, 2)
	assert.Equal(t, date(2026, time.March, 5), filtered[0].Date)
	assert.Equal(t, date(2026, time.March, 31), filtered[1].Date)

	// Missing month or year disables the filter.
	assert.Len(t, filterByMonth(txs, 0, 2026), 4)
	assert.Len(t, filterByMonth(txs, 3, 0), 4)
}

func TestPeriodTotals(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: money.FromCents(100_00)},
		{Type: models.TransactionTypeIncome, Amount: money.FromCents(50_00)},
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(30_00)},
		// Transfers do not change net worth and must not count.
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(500_00), IsTransfer: true},
		{Type: models.TransactionTypeIncome, Amount: money.FromCents(500_00), IsTransfer: true},
		// Soft-deleted rows are invisible to aggregates.
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(999_00), IsDeleted: true},
	}

	income, expense := periodTotals(txs)
	assert.Equal(t, money.FromCents(150_00), income)
	assert.Equal(t, money.FromCents(30_00), expense)
}

func TestExpensesByCategory(t *testing.T) {
	foodID := uuid.New()
	rentID := uuid.New()

	txs := []models.Transaction{
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(20_00), CategoryID: &foodID, CategoryName: strPtr("Food"), CategoryColor: strPtr("#E07A5F")},
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(15_00), CategoryID: &foodID, CategoryName: strPtr("Food"), CategoryColor: strPtr("#E07A5F")},
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(300_00), CategoryID: &rentID, CategoryName: strPtr("Rent"), CategoryColor: strPtr("#3D405B")},
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(7_00)},
		// Income, transfers and deleted rows never appear in the grouping.
		{Type: models.TransactionTypeIncome, Amount: money.FromCents(1000_00), CategoryID: &foodID},
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(50_00), CategoryID: &rentID, IsTransfer: true},
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(60_00), CategoryID: &rentID, IsDeleted: true},
	}

	result := expensesByCategory(txs)
	require.Len(t, result, 3)

	assert.Equal(t, "Rent", *result[0].CategoryName)
	assert.Equal(t, money.FromCents(300_00), result[0].Total)

	assert.Equal(t, "Food", *result[1].CategoryName)
	assert.Equal(t, "#E07A5F", *result[1].CategoryColor)
	assert.Equal(t, money.FromCents(35_00), result[1].Total)

	assert.Nil(t, result[2].CategoryName)
	assert.Equal(t, money.FromCents(7_00), result[2].Total)
}

func TestExpensesByCategoryTieOrder(t *testing.T) {
	aID := uuid.New()
	bID := uuid.New()

	txs := []models.Transaction{
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(10_00)},
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(10_00), CategoryID: &bID, CategoryName: strPtr("Beta")},
		{Type: models.TransactionTypeExpense, Amount: money.FromCents(10_00), CategoryID: &aID, CategoryName: strPtr("Alpha")},
	}

	result := expensesByCategory(txs)
	require.Len(t, result, 3)
	assert.Equal(t, "Alpha", *result[0].CategoryName)
	assert.Equal(t, "Beta", *result[1].CategoryName)
	assert.Nil(t, result[2].CategoryName)
}

func TestAccountBalance(t *testing.T) {
	accID := uuid.New()
	otherID := uuid.New()
	acc := models.Account{ID: accID, Balance: money.FromCents(100_00)}

	txs := []models.Transaction{
		{AccountID: &accID, Type: models.TransactionTypeIncome, Amount: money.FromCents(50_00)},
		{AccountID: &accID, Type: models.TransactionTypeExpense, Amount: money.FromCents(30_00)},
		// Other accounts, detached and deleted rows do not contribute.
		{AccountID: &otherID, Type: models.TransactionTypeIncome, Amount: money.FromCents(999_00)},
		{AccountID: nil, Type: models.TransactionTypeExpense, Amount: money.FromCents(999_00)},
		{AccountID: &accID, Type: models.TransactionTypeExpense, Amount: money.FromCents(999_00), IsDeleted: true},
	}

	assert.Equal(t, money.FromCents(120_00), accountBalance(acc, txs))
}

func TestAccountBalanceTransferConservation(t *testing.T) {
	fromID := uuid.New()
	toID := uuid.New()
	from := models.Account{ID: fromID, Balance: money.FromCents(200_00)}
	to := models.Account{ID: toID, Balance: money.FromCents(50_00)}

	// A transfer is a paired expense/income; transfer rows still move
	// account balances even though they are excluded from period totals.
	txs := []models.Transaction{
		{AccountID: &fromID, Type: models.TransactionTypeExpense, Amount: money.FromCents(75_00), IsTransfer: true},
		{AccountID: &toID, Type: models.TransactionTypeIncome, Amount: money.FromCents(75_00), IsTransfer: true},
	}

	assert.Equal(t, money.FromCents(125_00), accountBalance(from, txs))
	assert.Equal(t, money.FromCents(125_00), accountBalance(to, txs))

	total := accountBalance(from, txs) + accountBalance(to, txs)
	assert.Equal(t, from.Balance+to.Balance, total)
}

func TestUpcomingFixedExpenses(t *testing.T) {
	ref := date(2026, time.September, 10)
	paidThisMonth := date(2026, time.September, 5)
	paidLastMonth := date(2026, time.August, 5)

	expenses := []models.RecurringExpense{
		{Name: "Rent", Amount: money.FromCents(350_00), IsActive: true},
		{Name: "Music", Amount: money.FromCents(3_00), IsActive: true, LastPaidDate: &paidLastMonth},
		{Name: "Gym", Amount: money.FromCents(20_00), IsActive: true, LastPaidDate: &paidThisMonth},
		{Name: "Old box", Amount: money.FromCents(99_00), IsActive: false},
	}

	assert.Equal(t, money.FromCents(353_00), upcomingFixedExpenses(expenses, ref))
}

func TestPaidInMonth(t *testing.T) {
	ref := date(2026, time.September, 15)

	assert.False(t, paidInMonth(nil, ref))

	sameMonth := date(2026, time.September, 1)
	assert.True(t, paidInMonth(&sameMonth, ref))

	prevMonth := date(2026, time.August, 31)
	assert.False(t, paidInMonth(&prevMonth, ref))

	// Same month a year earlier does not count as paid.
	lastYear := date(2025, time.September, 15)
	assert.False(t, paidInMonth(&lastYear, ref))
}
