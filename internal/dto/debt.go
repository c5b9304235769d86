package dto

import "kopilka/internal/money"

type DebtRequest struct {
	Name            string      `json:"name"`
	Description     *string     `json:"description"`
	Type            string      `json:"type"`
	TotalAmount     money.Money `json:"total_amount"`
	RemainingAmount money.Money `json:"remaining_amount"`
	DueDate         *string     `json:"due_date"`
	IsSettled       *bool       `json:"is_settled"`
}

type DebtResponse struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     *string     `json:"description"`
	Type            string      `json:"type"`
	TotalAmount     money.Money `json:"total_amount"`
	RemainingAmount money.Money `json:"remaining_amount"`
	DueDate         *string     `json:"due_date"`
	IsSettled       bool        `json:"is_settled"`
	CreatedAt       string      `json:"created_at"`
}
