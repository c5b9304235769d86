package models

import (
	"time"

	"kopilka/internal/money"

	"github.com/google/uuid"
)

type AccountType string

const (
	AccountTypeCash   AccountType = "CASH"
	AccountTypeDebit  AccountType = "DEBIT"
	AccountTypeCredit AccountType = "CREDIT"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeCash, AccountTypeDebit, AccountTypeCredit:
		return true
	}
	return false
}

// Account is a place money lives. Balance is the stored opening/adjustment
// baseline, not the live balance: the authoritative figure is always
// baseline plus the account's full transaction history.
type Account struct {
	ID        uuid.UUID   `db:"id"`
	UserID    uuid.UUID   `db:"user_id"`
	Name      string      `db:"name"`
	Type      AccountType `db:"type"`
	Balance   money.Money `db:"balance_cents"`
	Color     string      `db:"color"`
	IsActive  bool        `db:"is_active"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}
