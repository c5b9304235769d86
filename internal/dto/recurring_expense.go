package dto

import "kopilka/internal/money"

type RecurringExpenseRequest struct {
	Name       string      `json:"name"`
	Amount     money.Money `json:"amount"`
	CategoryID *string     `json:"category_id"`
	AccountID  *string     `json:"account_id"`
	DueDay     int         `json:"due_day"`
	IsActive   *bool       `json:"is_active"`
}

type RecurringExpenseResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Amount       money.Money `json:"amount"`
	CategoryID   *string     `json:"category_id"`
	AccountID    *string     `json:"account_id"`
	DueDay       int         `json:"due_day"`
	IsActive     bool        `json:"is_active"`
	LastPaidDate *string     `json:"last_paid_date"`
	CreatedAt    string      `json:"created_at"`
}

type PayRecurringRequest struct {
	AccountID *string `json:"account_id"`
	Date      string  `json:"date"`
}
