package service

import (
	"sort"
	"time"

	"kopilka/internal/dto"
	"kopilka/internal/models"
	"kopilka/internal/money"
)

// Pure aggregation over transaction history. Every function here skips
// soft-deleted rows so the exclusion holds on every read path, whatever
// the caller fetched.

// filterByMonth keeps transactions inside one calendar month. month and
// year both zero means no filter.
func filterByMonth(txs []models.Transaction, month, year int) []models.Transaction {
	if month <= 0 || year <= 0 {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.Year() == year && int(t.Date.Month()) == month {
			out = append(out, t)
		}
	}
	return out
}

// periodTotals sums income and expense over the set, excluding transfers:
// a transfer does not change net worth, only its distribution across
// accounts.
func periodTotals(txs []models.Transaction) (income, expense money.Money) {
	for _, t := range txs {
		if t.IsDeleted || t.IsTransfer {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			income += t.Amount
		case models.TransactionTypeExpense:
			expense += t.Amount
		}
	}
	return income, expense
}

// expensesByCategory groups non-transfer expenses by category and sorts
// descending by total. Uncategorized expenses fall into a nil bucket.
func expensesByCategory(txs []models.Transaction) []dto.CategoryExpense {
	type bucket struct {
		name  *string
		color *string
		total money.Money
	}
	buckets := make(map[string]*bucket)

	for _, t := range txs {
		if t.IsDeleted || t.IsTransfer || t.Type != models.TransactionTypeExpense {
			continue
		}
		key := ""
		if t.CategoryID != nil {
			key = t.CategoryID.String()
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{name: t.CategoryName, color: t.CategoryColor}
			buckets[key] = b
		}
		b.total += t.Amount
	}

	result := make([]dto.CategoryExpense, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, dto.CategoryExpense{
			CategoryName:  b.name,
			CategoryColor: b.color,
			Total:         b.total,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		// Equal totals: named buckets before the nil bucket, then by name.
		ni, nj := result[i].CategoryName, result[j].CategoryName
		switch {
		case ni == nil:
			return false
		case nj == nil:
			return true
		default:
			return *ni < *nj
		}
	})

	return result
}

// accountBalance is the effective balance of an account: the stored
// baseline plus its full non-deleted transaction history, with no date
// filter. Account balances represent current holdings, not period
// activity, so they are never month-scoped.
func accountBalance(a models.Account, txs []models.Transaction) money.Money {
	balance := a.Balance
	for _, t := range txs {
		if t.IsDeleted || t.AccountID == nil || *t.AccountID != a.ID {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			balance += t.Amount
		case models.TransactionTypeExpense:
			balance -= t.Amount
		}
	}
	return balance
}

// upcomingFixedExpenses sums active recurring expenses not yet paid in the
// month of ref. This is a "right now" figure and ignores any month filter
// a summary was requested with.
func upcomingFixedExpenses(expenses []models.RecurringExpense, ref time.Time) money.Money {
	var total money.Money
	for _, e := range expenses {
		if !e.IsActive || paidInMonth(e.LastPaidDate, ref) {
			continue
		}
		total += e.Amount
	}
	return total
}

// paidInMonth reports whether lastPaid falls in the same calendar month as
// ref. A nil lastPaid means never paid.
func paidInMonth(lastPaid *time.Time, ref time.Time) bool {
	if lastPaid == nil {
		return false
	}
	return lastPaid.Year() == ref.Year() && lastPaid.Month() == ref.Month()
}
