package models

import (
	"time"

	"kopilka/internal/money"

	"github.com/google/uuid"
)

type DebtType string

const (
	DebtTypeOwedToMe DebtType = "OWED_TO_ME"
	DebtTypeIOwe     DebtType = "I_OWE"
)

func (t DebtType) Valid() bool {
	return t == DebtTypeOwedToMe || t == DebtTypeIOwe
}

type Debt struct {
	ID              uuid.UUID   `db:"id"`
	UserID          uuid.UUID   `db:"user_id"`
	Name            string      `db:"name"`
	Description     *string     `db:"description"`
	Type            DebtType    `db:"type"`
	TotalAmount     money.Money `db:"total_amount_cents"`
	RemainingAmount money.Money `db:"remaining_amount_cents"`
	DueDate         *time.Time  `db:"due_date"`
	IsSettled       bool        `db:"is_settled"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}
