package repository

import (
	"context"
	"time"

	"kopilka/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RecurringExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecurringExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *RecurringExpenseRepository {
	return &RecurringExpenseRepository{
		db:     db,
		logger: logger,
	}
}

const recurringColumns = "id, user_id, name, amount_cents, category_id, account_id, due_day, is_active, last_paid_date, created_at, updated_at"

func (r *RecurringExpenseRepository) Create(ctx context.Context, e *models.RecurringExpense) error {
	query := squirrel.Insert("recurring_expenses").
		Columns("id", "user_id", "name", "amount_cents", "category_id", "account_id",
			"due_day", "is_active", "last_paid_date", "created_at", "updated_at").
		Values(e.ID, e.UserID, e.Name, e.Amount, e.CategoryID, e.AccountID,
			e.DueDay, e.IsActive, e.LastPaidDate, e.CreatedAt, e.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *RecurringExpenseRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.RecurringExpense, error) {
	query := squirrel.Select(recurringColumns).
		From("recurring_expenses").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var e models.RecurringExpense
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.UserID, &e.Name, &e.Amount, &e.CategoryID, &e.AccountID,
		&e.DueDay, &e.IsActive, &e.LastPaidDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *RecurringExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecurringExpense, error) {
	query := squirrel.Select(recurringColumns).
		From("recurring_expenses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("due_day ASC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.RecurringExpense
	for rows.Next() {
		var e models.RecurringExpense
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Name, &e.Amount, &e.CategoryID, &e.AccountID,
			&e.DueDay, &e.IsActive, &e.LastPaidDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func (r *RecurringExpenseRepository) Update(ctx context.Context, e *models.RecurringExpense) error {
	query := squirrel.Update("recurring_expenses").
		Set("name", e.Name).
		Set("amount_cents", e.Amount).
		Set("category_id", e.CategoryID).
		Set("account_id", e.AccountID).
		Set("due_day", e.DueDay).
		Set("is_active", e.IsActive).
		Set("updated_at", e.UpdatedAt).
		Where(squirrel.Eq{"id": e.ID, "user_id": e.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// MarkPaidTx advances last_paid_date inside an open transaction, together
// with the expense transaction recorded for the payment.
func (r *RecurringExpenseRepository) MarkPaidTx(ctx context.Context, tx pgx.Tx, userID, id uuid.UUID, paidOn time.Time) error {
	query := squirrel.Update("recurring_expenses").
		Set("last_paid_date", paidOn).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *RecurringExpenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("recurring_expenses").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
