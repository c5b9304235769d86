package repository

import (
	"context"

	"kopilka/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DebtRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDebtRepository(db *pgxpool.Pool, logger *zap.Logger) *DebtRepository {
	return &DebtRepository{
		db:     db,
		logger: logger,
	}
}

const debtColumns = "id, user_id, name, description, type, total_amount_cents, remaining_amount_cents, due_date, is_settled, created_at, updated_at"

func (r *DebtRepository) Create(ctx context.Context, d *models.Debt) error {
	query := squirrel.Insert("debts").
		Columns("id", "user_id", "name", "description", "type", "total_amount_cents",
			"remaining_amount_cents", "due_date", "is_settled", "created_at", "updated_at").
		Values(d.ID, d.UserID, d.Name, d.Description, d.Type, d.TotalAmount,
			d.RemainingAmount, d.DueDate, d.IsSettled, d.CreatedAt, d.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *DebtRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Debt, error) {
	query := squirrel.Select(debtColumns).
		From("debts").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var d models.Debt
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&d.ID, &d.UserID, &d.Name, &d.Description, &d.Type, &d.TotalAmount,
		&d.RemainingAmount, &d.DueDate, &d.IsSettled, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *DebtRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Debt, error) {
	query := squirrel.Select(debtColumns).
		From("debts").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("due_date ASC NULLS LAST", "created_at DESC").
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

	var debts []models.Debt
	for rows.Next() {
		var d models.Debt
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Name, &d.Description, &d.Type, &d.TotalAmount,
			&d.RemainingAmount, &d.DueDate, &d.IsSettled, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}

	return debts, rows.Err()
}

func (r *DebtRepository) Update(ctx context.Context, d *models.Debt) error {
	query := squirrel.Update("debts").
		Set("name", d.Name).
		Set("description", d.Description).
		Set("type", d.Type).
		Set("total_amount_cents", d.TotalAmount).
		Set("remaining_amount_cents", d.RemainingAmount).
		Set("due_date", d.DueDate).
		Set("is_settled", d.IsSettled).
		Set("updated_at", d.UpdatedAt).
		Where(squirrel.Eq{"id": d.ID, "user_id": d.UserID}).
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

func (r *DebtRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("debts").
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
