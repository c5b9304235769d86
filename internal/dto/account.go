package dto

import "kopilka/internal/money"

type AccountRequest struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Balance  money.Money `json:"balance"`
	Color    string      `json:"color"`
	IsActive *bool       `json:"is_active"`
}

// AccountResponse reports both the stored baseline and the computed
// balance; the computed value is the authoritative one for display.
type AccountResponse struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            string      `json:"type"`
	Balance         money.Money `json:"balance"`
	ComputedBalance money.Money `json:"computed_balance"`
	Color           string      `json:"color"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       string      `json:"created_at"`
}
