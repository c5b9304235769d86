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

type SavingsGoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSavingsGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *SavingsGoalRepository {
	return &SavingsGoalRepository{
		db:     db,
		logger: logger,
	}
}

const savingsGoalColumns = "id, user_id, name, target_amount_cents, current_amount_cents, target_date, color, is_completed, created_at, updated_at"

func (r *SavingsGoalRepository) Create(ctx context.Context, g *models.SavingsGoal) error {
	query := squirrel.Insert("savings_goals").
		Columns("id", "user_id", "name", "target_amount_cents", "current_amount_cents",
			"target_date", "color", "is_completed", "created_at", "updated_at").
		Values(g.ID, g.UserID, g.Name, g.TargetAmount, g.CurrentAmount,
			g.TargetDate, g.Color, g.IsCompleted, g.CreatedAt, g.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SavingsGoalRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SavingsGoal, error) {
	query := squirrel.Select(savingsGoalColumns).
		From("savings_goals").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var g models.SavingsGoal
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
		&g.TargetDate, &g.Color, &g.IsCompleted, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *SavingsGoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	query := squirrel.Select(savingsGoalColumns).
		From("savings_goals").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("target_date ASC NULLS LAST", "created_at DESC").
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

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
			&g.TargetDate, &g.Color, &g.IsCompleted, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (r *SavingsGoalRepository) Update(ctx context.Context, g *models.SavingsGoal) error {
	query := squirrel.Update("savings_goals").
		Set("name", g.Name).
		Set("target_amount_cents", g.TargetAmount).
		Set("target_date", g.TargetDate).
		Set("color", g.Color).
		Set("updated_at", g.UpdatedAt).
		Where(squirrel.Eq{"id": g.ID, "user_id": g.UserID}).
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

// UpdateProgressTx persists a contribution inside an open transaction,
// together with the expense transaction recorded for it.
func (r *SavingsGoalRepository) UpdateProgressTx(ctx context.Context, tx pgx.Tx, g *models.SavingsGoal) error {
	query := squirrel.Update("savings_goals").
		Set("current_amount_cents", g.CurrentAmount).
		Set("is_completed", g.IsCompleted).
		Set("updated_at", g.UpdatedAt).
		Where(squirrel.Eq{"id": g.ID, "user_id": g.UserID}).
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

func (r *SavingsGoalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("savings_goals").
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
