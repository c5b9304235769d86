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

type AccountRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAccountRepository(db *pgxpool.Pool, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger,
	}
}

const accountColumns = "id, user_id, name, type, balance_cents, color, is_active, created_at, updated_at"

func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	query := squirrel.Insert("accounts").
		Columns("id", "user_id", "name", "type", "balance_cents", "color", "is_active", "created_at", "updated_at").
		Values(a.ID, a.UserID, a.Name, a.Type, a.Balance, a.Color, a.IsActive, a.CreatedAt, a.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AccountRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Account, error) {
	query := squirrel.Select(accountColumns).
		From("accounts").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var a models.Account
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.Color, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *AccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	query := squirrel.Select(accountColumns).
		From("accounts").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
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

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.Color, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r *AccountRepository) Update(ctx context.Context, a *models.Account) error {
	query := squirrel.Update("accounts").
		Set("name", a.Name).
		Set("type", a.Type).
		Set("balance_cents", a.Balance).
		Set("color", a.Color).
		Set("is_active", a.IsActive).
		Set("updated_at", a.UpdatedAt).
		Where(squirrel.Eq{"id": a.ID, "user_id": a.UserID}).
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

func (r *AccountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("accounts").
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
