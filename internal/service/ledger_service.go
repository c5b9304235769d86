package service

import (
	"context"
	"errors"
	"time"

	"kopilka/internal/dto"
	"kopilka/internal/models"
	"kopilka/internal/money"
	"kopilka/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// LedgerService is the money operations engine: it computes account
// balances and period summaries, and performs the compound writes
// (transfer, savings contribution, recurring-expense payment) that touch
// several records at once. Each compound write runs on a single database
// transaction so either every record commits or none do.
type LedgerService struct {
	db        *pgxpool.Pool
	accounts  *repository.AccountRepository
	txns      *repository.TransactionRepository
	goals     *repository.SavingsGoalRepository
	recurring *repository.RecurringExpenseRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewLedgerService(
	db *pgxpool.Pool,
	accounts *repository.AccountRepository,
	txns *repository.TransactionRepository,
	goals *repository.SavingsGoalRepository,
	recurring *repository.RecurringExpenseRepository,
	logger *zap.Logger,
) *LedgerService {
	return &LedgerService{
		db:        db,
		accounts:  accounts,
		txns:      txns,
		goals:     goals,
		recurring: recurring,
		logger:    logger,
		now:       time.Now,
	}
}

// AccountBalance computes the effective lifetime balance of one account.
func (s *LedgerService) AccountBalance(ctx context.Context, userID, accountID uuid.UUID) (money.Money, error) {
	account, err := s.accounts.GetByID(ctx, userID, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, notFoundErrorf("account %s", accountID)
		}
		return 0, err
	}

	txs, err := s.txns.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return 0, err
	}

	return accountBalance(*account, txs), nil
}

// AccountBalances computes effective balances for all of the owner's
// accounts with a single fetch of the transaction history.
func (s *LedgerService) AccountBalances(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]money.Money, error) {
	accounts, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	txs, err := s.txns.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, err
	}

	balances := make(map[uuid.UUID]money.Money, len(accounts))
	for _, a := range accounts {
		balances[a.ID] = accountBalance(a, txs)
	}
	return balances, nil
}

// Summary builds the monthly overview. Income/expense totals and the
// category breakdown honor the optional month/year filter; account
// balances are always lifetime and the fixed-expense load always refers
// to the current month.
func (s *LedgerService) Summary(ctx context.Context, userID uuid.UUID, month, year int) (*dto.SummaryResponse, error) {
	txs, err := s.txns.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fixed, err := s.recurring.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	period := filterByMonth(txs, month, year)
	income, expense := periodTotals(period)

	accountSummaries := make([]dto.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		accountSummaries = append(accountSummaries, dto.AccountSummary{
			ID:      a.ID.String(),
			Name:    a.Name,
			Type:    string(a.Type),
			Color:   a.Color,
			Balance: accountBalance(a, txs),
		})
	}

	return &dto.SummaryResponse{
		Balance:               income - expense,
		TotalIncome:           income,
		TotalExpense:          expense,
		ExpensesByCategory:    expensesByCategory(period),
		Accounts:              accountSummaries,
		UpcomingFixedExpenses: upcomingFixedExpenses(fixed, s.now()),
	}, nil
}

// Transfer moves money between two owned accounts by writing a paired
// expense/income flagged as a transfer. Transfers are excluded from
// income/expense totals but included in account balances, so the owner's
// combined balance is conserved.
func (s *LedgerService) Transfer(ctx context.Context, userID, fromID, toID uuid.UUID, amount money.Money, date time.Time, note string) error {
	if !amount.IsPositive() {
		return validationErrorf("transfer amount must be positive")
	}
	if fromID == toID {
		return validationErrorf("cannot transfer to the same account")
	}

	from, err := s.accounts.GetByID(ctx, userID, fromID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundErrorf("from account %s", fromID)
		}
		return err
	}

	to, err := s.accounts.GetByID(ctx, userID, toID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundErrorf("to account %s", toID)
		}
		return err
	}

	if date.IsZero() {
		date = s.now()
	}

	outLeg, inLeg := transferLegs(userID, from, to, amount, date, s.now(), note)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := s.txns.CreateTx(ctx, tx, outLeg); err != nil {
		return err
	}
	if err := s.txns.CreateTx(ctx, tx, inLeg); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.logger.Info("Transfer completed",
		zap.String("user_id", userID.String()),
		zap.String("from", from.Name),
		zap.String("to", to.Name),
		zap.String("amount", amount.String()),
	)
	return nil
}

// ContributeToGoal adds funds to a savings goal and records a matching
// expense transaction so the contribution shows up in the ledger. The goal
// is marked completed once the new total reaches the target; completion
// never reverts automatically.
func (s *LedgerService) ContributeToGoal(ctx context.Context, userID, goalID uuid.UUID, amount money.Money, date time.Time, accountID *uuid.UUID) (*models.SavingsGoal, error) {
	if !amount.IsPositive() {
		return nil, validationErrorf("contribution amount must be positive")
	}

	goal, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundErrorf("savings goal %s", goalID)
		}
		return nil, err
	}

	if accountID != nil {
		if _, err := s.accounts.GetByID(ctx, userID, *accountID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, notFoundErrorf("account %s", *accountID)
			}
			return nil, err
		}
	}

	if date.IsZero() {
		date = s.now()
	}

	now := s.now()
	applyContribution(goal, amount, now)
	txn := contributionTransaction(goal, amount, accountID, date, now)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := s.goals.UpdateProgressTx(ctx, tx, goal); err != nil {
		return nil, err
	}
	if err := s.txns.CreateTx(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return goal, nil
}

// PayRecurringExpense records one payment of a fixed expense: an expense
// transaction plus an advanced last_paid_date. There is no guard against
// paying twice in one month; repeated calls record repeated transactions.
func (s *LedgerService) PayRecurringExpense(ctx context.Context, userID, expenseID uuid.UUID, date time.Time, accountID *uuid.UUID) (*models.RecurringExpense, error) {
	expense, err := s.recurring.GetByID(ctx, userID, expenseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFoundErrorf("recurring expense %s", expenseID)
		}
		return nil, err
	}

	if accountID != nil {
		if _, err := s.accounts.GetByID(ctx, userID, *accountID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, notFoundErrorf("account %s", *accountID)
			}
			return nil, err
		}
	}
	accountID = paymentAccount(expense, accountID)

	if date.IsZero() {
		date = s.now()
	}

	now := s.now()
	txn := recurringPayment(expense, accountID, date, now)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := s.txns.CreateTx(ctx, tx, txn); err != nil {
		return nil, err
	}
	if err := s.recurring.MarkPaidTx(ctx, tx, userID, expenseID, date); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	markPaid(expense, date, now)
	return expense, nil
}
