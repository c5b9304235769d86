package dto

import "kopilka/internal/money"

type SavingsGoalRequest struct {
	Name         string      `json:"name"`
	TargetAmount money.Money `json:"target_amount"`
	TargetDate   *string     `json:"target_date"`
	Color        string      `json:"color"`
}

type SavingsGoalResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	TargetAmount  money.Money `json:"target_amount"`
	CurrentAmount money.Money `json:"current_amount"`
	TargetDate    *string     `json:"target_date"`
	Color         string      `json:"color"`
	IsCompleted   bool        `json:"is_completed"`
	CreatedAt     string      `json:"created_at"`
}

type AddFundsRequest struct {
	Amount    money.Money `json:"amount"`
	Date      string      `json:"date"`
	AccountID *string     `json:"account_id"`
}
