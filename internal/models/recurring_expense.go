package models

import (
	"time"

	"kopilka/internal/money"

	"github.com/google/uuid"
)

// RecurringExpense is a fixed monthly cost (rent, subscriptions). It is
// never paid automatically; an explicit pay action records the expense
// transaction and advances LastPaidDate. "Paid this month" is decided
// solely by comparing LastPaidDate's year and month with the current ones.
type RecurringExpense struct {
	ID           uuid.UUID   `db:"id"`
	UserID       uuid.UUID   `db:"user_id"`
	Name         string      `db:"name"`
	Amount       money.Money `db:"amount_cents"`
	CategoryID   *uuid.UUID  `db:"category_id"`
	AccountID    *uuid.UUID  `db:"account_id"`
	DueDay       int         `db:"due_day"`
	IsActive     bool        `db:"is_active"`
	LastPaidDate *time.Time  `db:"last_paid_date"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}
