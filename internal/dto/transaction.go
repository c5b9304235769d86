package dto

import "kopilka/internal/money"

type TransactionRequest struct {
	AccountID     *string     `json:"account_id"`
	CategoryID    *string     `json:"category_id"`
	Type          string      `json:"type"`
	Amount        money.Money `json:"amount"`
	Date          string      `json:"date"`
	Subcategory   *string     `json:"subcategory"`
	Description   *string     `json:"description"`
	PaymentMethod string      `json:"payment_method"`
}

type TransactionResponse struct {
	ID            string      `json:"id"`
	AccountID     *string     `json:"account_id"`
	CategoryID    *string     `json:"category_id"`
	CategoryName  *string     `json:"category_name"`
	CategoryColor *string     `json:"category_color"`
	Type          string      `json:"type"`
	Amount        money.Money `json:"amount"`
	Date          string      `json:"date"`
	Subcategory   *string     `json:"subcategory"`
	Description   *string     `json:"description"`
	PaymentMethod string      `json:"payment_method"`
	IsTransfer    bool        `json:"is_transfer"`
	CreatedAt     string      `json:"created_at"`
}

type TransferRequest struct {
	FromAccount string      `json:"from_account"`
	ToAccount   string      `json:"to_account"`
	Amount      money.Money `json:"amount"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
}
