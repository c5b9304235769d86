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

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

var transactionColumns = []string{
	"t.id", "t.user_id", "t.account_id", "t.category_id", "t.type", "t.amount_cents",
	"t.date", "t.subcategory", "t.description", "t.payment_method",
	"t.is_transfer", "t.is_deleted", "t.created_at", "t.updated_at",
	"c.name", "c.color",
}

func (r *TransactionRepository) insertBuilder(t *models.Transaction) squirrel.InsertBuilder {
	return squirrel.Insert("transactions").
		Columns("id", "user_id", "account_id", "category_id", "type", "amount_cents",
			"date", "subcategory", "description", "payment_method",
			"is_transfer", "is_deleted", "created_at", "updated_at").
		Values(t.ID, t.UserID, t.AccountID, t.CategoryID, t.Type, t.Amount,
			t.Date, t.Subcategory, t.Description, t.PaymentMethod,
			t.IsTransfer, t.IsDeleted, t.CreatedAt, t.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	sql, args, err := r.insertBuilder(t).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// CreateTx inserts inside an open transaction; used by the compound ledger
// operations so all their writes commit or roll back together.
func (r *TransactionRepository) CreateTx(ctx context.Context, tx pgx.Tx, t *models.Transaction) error {
	sql, args, err := r.insertBuilder(t).ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		LeftJoin("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.id": id, "t.user_id": userID, "t.is_deleted": false}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var t models.Transaction
	if err := scanTransaction(r.db.QueryRow(ctx, sql, args...), &t); err != nil {
		return nil, err
	}

	return &t, nil
}

// ListByUser returns the owner's non-deleted transactions, newest first.
// month and year restrict to one calendar month when both are non-zero.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, month, year int) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		LeftJoin("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.user_id": userID, "t.is_deleted": false}).
		OrderBy("t.date DESC", "t.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if month > 0 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		query = query.Where(squirrel.GtOrEq{"t.date": start}).Where(squirrel.Lt{"t.date": end})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

func (r *TransactionRepository) Update(ctx context.Context, t *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("account_id", t.AccountID).
		Set("category_id", t.CategoryID).
		Set("type", t.Type).
		Set("amount_cents", t.Amount).
		Set("date", t.Date).
		Set("subcategory", t.Subcategory).
		Set("description", t.Description).
		Set("payment_method", t.PaymentMethod).
		Set("updated_at", t.UpdatedAt).
		Where(squirrel.Eq{"id": t.ID, "user_id": t.UserID, "is_deleted": false}).
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

// SoftDelete hides a transaction from every query and aggregate without
// removing the row.
func (r *TransactionRepository) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Update("transactions").
		Set("is_deleted", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "user_id": userID, "is_deleted": false}).
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

func scanTransaction(row pgx.Row, t *models.Transaction) error {
	return row.Scan(
		&t.ID, &t.UserID, &t.AccountID, &t.CategoryID, &t.Type, &t.Amount,
		&t.Date, &t.Subcategory, &t.Description, &t.PaymentMethod,
		&t.IsTransfer, &t.IsDeleted, &t.CreatedAt, &t.UpdatedAt,
		&t.CategoryName, &t.CategoryColor,
	)
}
