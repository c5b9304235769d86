package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType distinguishes income categories from expense categories.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "IN"
	CategoryTypeExpense CategoryType = "OUT"
)

func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

type Category struct {
	ID        uuid.UUID    `db:"id"`
	UserID    uuid.UUID    `db:"user_id"`
	Name      string       `db:"name"`
	Type      CategoryType `db:"type"`
	Color     string       `db:"color"`
	Icon      *string      `db:"icon"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
