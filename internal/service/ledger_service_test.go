package service

import (
	"context"
	"testing"
	"time"

	"kopilka/internal/models"
	"kopilka/internal/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation runs before any repository access, so a zero-value service is
// enough to exercise the rejection paths.

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestTransferRejectsNonPositiveAmount(t *testing.T) {
	s := &LedgerService{}
	userID := uuid.New()

	err := s.Transfer(context.Background(), userID, uuid.New(), uuid.New(), money.FromCents(0), time.Time{}, "")
	requireValidationError(t, err)

	err = s.Transfer(context.Background(), userID, uuid.New(), uuid.New(), money.FromCents(-100), time.Time{}, "")
	requireValidationError(t, err)
}

func TestTransferRejectsSameAccount(t *testing.T) {
	s := &LedgerService{}
	accID := uuid.New()

	err := s.Transfer(context.Background(), uuid.New(), accID, accID, money.FromCents(100), time.Time{}, "")
	requireValidationError(t, err)
}

func TestContributeToGoalRejectsNonPositiveAmount(t *testing.T) {
	s := &LedgerService{}

	_, err := s.ContributeToGoal(context.Background(), uuid.New(), uuid.New(), money.FromCents(0), time.Time{}, nil)
	requireValidationError(t, err)

	_, err = s.ContributeToGoal(context.Background(), uuid.New(), uuid.New(), money.FromCents(-50), time.Time{}, nil)
	requireValidationError(t, err)
}

func TestApplyContribution(t *testing.T) {
	now := date(2026, 3, 15)

	tests := []struct {
		name          string
		current       int64
		target        int64
		completed     bool
		amount        int64
		wantCurrent   int64
		wantCompleted bool
	}{
		{"below target", 80_00, 100_00, false, 19_00, 99_00, false},
		{"exactly at target", 80_00, 100_00, false, 20_00, 100_00, true},
		{"above target", 80_00, 100_00, false, 25_00, 105_00, true},
		{"completion never reverts", 10_00, 100_00, true, 5_00, 15_00, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := &models.SavingsGoal{
				ID:            uuid.New(),
				UserID:        uuid.New(),
				Name:          "Vacation",
				TargetAmount:  money.FromCents(tt.target),
				CurrentAmount: money.FromCents(tt.current),
				IsCompleted:   tt.completed,
			}

			applyContribution(goal, money.FromCents(tt.amount), now)

			assert.Equal(t, money.FromCents(tt.wantCurrent), goal.CurrentAmount)
			assert.Equal(t, tt.wantCompleted, goal.IsCompleted)
			assert.Equal(t, now, goal.UpdatedAt)
		})
	}
}

func TestContributionTransaction(t *testing.T) {
	now := date(2026, 3, 15)
	when := date(2026, 3, 10)
	accID := uuid.New()
	goal := &models.SavingsGoal{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Vacation",
	}

	txn := contributionTransaction(goal, money.FromCents(25_00), &accID, when, now)

	assert.Equal(t, goal.UserID, txn.UserID)
	assert.Equal(t, &accID, txn.AccountID)
	assert.Equal(t, models.TransactionTypeExpense, txn.Type)
	assert.Equal(t, money.FromCents(25_00), txn.Amount)
	assert.Equal(t, when, txn.Date)
	assert.Equal(t, models.PaymentMethodTransfer, txn.PaymentMethod)
	require.NotNil(t, txn.Description)
	assert.Equal(t, "Savings contribution: Vacation", *txn.Description)
}

func TestTransferLegs(t *testing.T) {
	userID := uuid.New()
	from := &models.Account{ID: uuid.New(), UserID: userID, Name: "Checking"}
	to := &models.Account{ID: uuid.New(), UserID: userID, Name: "Savings"}
	when := date(2026, 3, 10)
	now := date(2026, 3, 15)

	out, in := transferLegs(userID, from, to, money.FromCents(50_00), when, now, "")

	assert.NotEqual(t, out.ID, in.ID)
	assert.Equal(t, out.Amount, in.Amount)
	assert.Equal(t, money.FromCents(50_00), out.Amount)

	assert.Equal(t, models.TransactionTypeExpense, out.Type)
	assert.Equal(t, &from.ID, out.AccountID)
	assert.Equal(t, models.TransactionTypeIncome, in.Type)
	assert.Equal(t, &to.ID, in.AccountID)

	assert.True(t, out.IsTransfer)
	assert.True(t, in.IsTransfer)
	assert.Equal(t, models.PaymentMethodTransfer, out.PaymentMethod)
	assert.Equal(t, models.PaymentMethodTransfer, in.PaymentMethod)

	require.NotNil(t, out.Description)
	require.NotNil(t, in.Description)
	assert.Equal(t, "Transfer to Savings", *out.Description)
	assert.Equal(t, "Transfer from Checking", *in.Description)

	assert.Equal(t, when, out.Date)
	assert.Equal(t, when, in.Date)
	assert.Equal(t, userID, out.UserID)
	assert.Equal(t, userID, in.UserID)
}

func TestTransferLegsAppendNote(t *testing.T) {
	userID := uuid.New()
	from := &models.Account{ID: uuid.New(), UserID: userID, Name: "Checking"}
	to := &models.Account{ID: uuid.New(), UserID: userID, Name: "Savings"}

	out, in := transferLegs(userID, from, to, money.FromCents(10_00), date(2026, 3, 10), date(2026, 3, 15), "rent share")

	require.NotNil(t, out.Description)
	require.NotNil(t, in.Description)
	assert.Equal(t, "Transfer to Savings (rent share)", *out.Description)
	assert.Equal(t, "Transfer from Checking (rent share)", *in.Description)
}

func TestPaymentAccount(t *testing.T) {
	defaultID := uuid.New()
	explicitID := uuid.New()
	expense := &models.RecurringExpense{AccountID: &defaultID}

	assert.Equal(t, &explicitID, paymentAccount(expense, &explicitID))
	assert.Equal(t, &defaultID, paymentAccount(expense, nil))
	assert.Nil(t, paymentAccount(&models.RecurringExpense{}, nil))
}

func TestRecurringPayment(t *testing.T) {
	catID := uuid.New()
	accID := uuid.New()
	when := date(2026, 3, 1)
	now := date(2026, 3, 15)
	expense := &models.RecurringExpense{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Name:       "Rent",
		Amount:     money.FromCents(1200_00),
		CategoryID: &catID,
	}

	txn := recurringPayment(expense, &accID, when, now)

	assert.Equal(t, expense.UserID, txn.UserID)
	assert.Equal(t, &catID, txn.CategoryID)
	assert.Equal(t, &accID, txn.AccountID)
	assert.Equal(t, models.TransactionTypeExpense, txn.Type)
	assert.Equal(t, money.FromCents(1200_00), txn.Amount)
	assert.Equal(t, when, txn.Date)
	assert.Equal(t, models.PaymentMethodCard, txn.PaymentMethod)
	require.NotNil(t, txn.Description)
	assert.Equal(t, "Fixed expense: Rent", *txn.Description)
}

func TestMarkPaid(t *testing.T) {
	paidOn := date(2026, 3, 5)
	now := date(2026, 3, 15)
	expense := &models.RecurringExpense{ID: uuid.New(), Name: "Rent"}

	markPaid(expense, paidOn, now)

	require.NotNil(t, expense.LastPaidDate)
	assert.Equal(t, paidOn, *expense.LastPaidDate)
	assert.Equal(t, now, expense.UpdatedAt)
}
