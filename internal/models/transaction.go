package models

import (
	"time"

	"kopilka/internal/money"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "IN"
	TransactionTypeExpense TransactionType = "OUT"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// Transaction is a single ledger movement. Amount is always positive;
// direction is carried by Type. Transfers between accounts appear as a
// paired IN/OUT with IsTransfer set on both legs. Rows are never hard
// deleted, IsDeleted hides them from every query and aggregate.
type Transaction struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	AccountID     *uuid.UUID      `db:"account_id"`
	CategoryID    *uuid.UUID      `db:"category_id"`
	Type          TransactionType `db:"type"`
	Amount        money.Money     `db:"amount_cents"`
	Date          time.Time       `db:"date"`
	Subcategory   *string         `db:"subcategory"`
	Description   *string         `db:"description"`
	PaymentMethod PaymentMethod   `db:"payment_method"`
	IsTransfer    bool            `db:"is_transfer"`
	IsDeleted     bool            `db:"is_deleted"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`

	// Denormalized from the category join for list/detail responses.
	CategoryName  *string `db:"category_name"`
	CategoryColor *string `db:"category_color"`
}
