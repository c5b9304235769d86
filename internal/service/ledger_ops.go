package service

import (
	"fmt"
	"time"

	"kopilka/internal/models"
	"kopilka/internal/money"

	"github.com/google/uuid"
)

// Pure state transitions behind the compound ledger operations. Like the
// aggregation helpers in summary.go they carry no storage concerns, so the
// rows each operation writes and the mutations it applies are testable in
// isolation.

// applyContribution advances a goal by amount. The goal is completed once
// the new total reaches the target; completion never reverts here.
func applyContribution(goal *models.SavingsGoal, amount money.Money, now time.Time) {
	goal.CurrentAmount += amount
	if goal.CurrentAmount >= goal.TargetAmount {
		goal.IsCompleted = true
	}
	goal.UpdatedAt = now
}

// contributionTransaction is the expense row recorded alongside a goal
// contribution.
func contributionTransaction(goal *models.SavingsGoal, amount money.Money, accountID *uuid.UUID, date, now time.Time) *models.Transaction {
	desc := fmt.Sprintf("Savings contribution: %s", goal.Name)
	return &models.Transaction{
		ID:            uuid.New(),
		UserID:        goal.UserID,
		AccountID:     accountID,
		Type:          models.TransactionTypeExpense,
		Amount:        amount,
		Date:          date,
		Description:   &desc,
		PaymentMethod: models.PaymentMethodTransfer,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// transferLegs builds the paired rows of a transfer: an expense on the
// source account and an income on the destination, equal amounts, both
// flagged as transfer, each description naming the counterpart account.
func transferLegs(userID uuid.UUID, from, to *models.Account, amount money.Money, date, now time.Time, note string) (out, in *models.Transaction) {
	outDesc := fmt.Sprintf("Transfer to %s", to.Name)
	inDesc := fmt.Sprintf("Transfer from %s", from.Name)
	if note != "" {
		outDesc = fmt.Sprintf("%s (%s)", outDesc, note)
		inDesc = fmt.Sprintf("%s (%s)", inDesc, note)
	}

	out = &models.Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		AccountID:     &from.ID,
		Type:          models.TransactionTypeExpense,
		Amount:        amount,
		Date:          date,
		Description:   &outDesc,
		PaymentMethod: models.PaymentMethodTransfer,
		IsTransfer:    true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	in = &models.Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		AccountID:     &to.ID,
		Type:          models.TransactionTypeIncome,
		Amount:        amount,
		Date:          date,
		Description:   &inDesc,
		PaymentMethod: models.PaymentMethodTransfer,
		IsTransfer:    true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return out, in
}

// paymentAccount resolves which account a recurring payment hits: the
// explicitly requested one, else the expense's default, possibly nil.
func paymentAccount(expense *models.RecurringExpense, explicit *uuid.UUID) *uuid.UUID {
	if explicit != nil {
		return explicit
	}
	return expense.AccountID
}

// recurringPayment is the expense row recorded when a fixed expense is
// paid. It carries the expense's category and the resolved account.
func recurringPayment(expense *models.RecurringExpense, accountID *uuid.UUID, date, now time.Time) *models.Transaction {
	desc := fmt.Sprintf("Fixed expense: %s", expense.Name)
	return &models.Transaction{
		ID:            uuid.New(),
		UserID:        expense.UserID,
		AccountID:     accountID,
		CategoryID:    expense.CategoryID,
		Type:          models.TransactionTypeExpense,
		Amount:        expense.Amount,
		Date:          date,
		Description:   &desc,
		PaymentMethod: models.PaymentMethodCard,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// markPaid advances the in-memory expense after its payment committed.
func markPaid(expense *models.RecurringExpense, paidOn, now time.Time) {
	expense.LastPaidDate = &paidOn
	expense.UpdatedAt = now
}
