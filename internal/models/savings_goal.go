package models

import (
	"time"

	"kopilka/internal/money"

	"github.com/google/uuid"
)

// SavingsGoal tracks progress toward a target amount. IsCompleted flips to
// true once CurrentAmount reaches TargetAmount and never reverts on its own.
type SavingsGoal struct {
	ID            uuid.UUID   `db:"id"`
	UserID        uuid.UUID   `db:"user_id"`
	Name          string      `db:"name"`
	TargetAmount  money.Money `db:"target_amount_cents"`
	CurrentAmount money.Money `db:"current_amount_cents"`
	TargetDate    *time.Time  `db:"target_date"`
	Color         string      `db:"color"`
	IsCompleted   bool        `db:"is_completed"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}
