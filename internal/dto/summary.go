package dto

import "kopilka/internal/money"

// SummaryResponse is the monthly overview: period-scoped totals with
// transfers excluded, plus lifetime account balances and the fixed-expense
// load still pending for the current month.
type SummaryResponse struct {
	Balance               money.Money       `json:"balance"`
	TotalIncome           money.Money       `json:"total_income"`
	TotalExpense          money.Money       `json:"total_expense"`
	ExpensesByCategory    []CategoryExpense `json:"expenses_by_category"`
	Accounts              []AccountSummary  `json:"accounts"`
	UpcomingFixedExpenses money.Money       `json:"upcoming_fixed_expenses"`
}

// CategoryExpense keys keep the category__name/category__color shape the
// web client already consumes.
type CategoryExpense struct {
	CategoryName  *string     `json:"category__name"`
	CategoryColor *string     `json:"category__color"`
	Total         money.Money `json:"total"`
}

type AccountSummary struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Color   string      `json:"color"`
	Balance money.Money `json:"balance"`
}
