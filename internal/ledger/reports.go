package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// NetWorthData decomposes net worth into assets and liabilities.
type NetWorthData struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	NetWorth    decimal.Decimal
	Receivables decimal.Decimal
	Payables    decimal.Decimal
}

// MonthlyData aggregates income and expense for one calendar month.
type MonthlyData struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// NetWorth totals the current position:
//
//	assets      = non-credit-card balances + investments + receivables
//	liabilities = negative credit-card balances + card outstanding + payables
func (e *Engine) NetWorth() NetWorthData {
	cash := decimal.Zero
	cardDebt := decimal.Zero
	for _, a := range e.accounts {
		if a.Type == model.AccountTypeCreditCard {
			if a.Balance.IsNegative() {
				cardDebt = cardDebt.Add(a.Balance.Abs())
			}
			continue
		}
		cash = cash.Add(a.Balance)
	}

	investments := decimal.Zero
	for _, a := range e.assets {
		value := a.CurrentValue
		if value.IsZero() {
			value = a.AmountInvested
		}
		investments = investments.Add(value)
	}

	outstanding := decimal.Zero
	for _, c := range e.cards {
		outstanding = outstanding.Add(c.CurrentOutstanding)
	}

	receivables := decimal.Zero
	payables := decimal.Zero
	for _, p := range e.people {
		switch {
		case p.RunningBalance.IsPositive():
			receivables = receivables.Add(p.RunningBalance)
		case p.RunningBalance.IsNegative():
			payables = payables.Add(p.RunningBalance.Abs())
		}
	}

	assets := cash.Add(investments).Add(receivables)
	liabilities := cardDebt.Add(outstanding).Add(payables)

	return NetWorthData{
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    assets.Sub(liabilities),
		Receivables: receivables,
		Payables:    payables,
	}
}

// Monthly sums the absolute amounts of Income and Expense transactions
// dated in the given "2006-01" month.
func (e *Engine) Monthly(month string) MonthlyData {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range e.TransactionsByMonth(month) {
		switch t.MainType {
		case model.MainIncome:
			income = income.Add(t.Amount.Abs())
		case model.MainExpense:
			expense = expense.Add(t.Amount.Abs())
		}
	}
	return MonthlyData{Income: income, Expense: expense, Balance: income.Sub(expense)}
}

// MonthlyCategories maps every known category to its summed absolute
// expense for the month. Categories with no expenses report zero; expenses
// under an unknown category still show up.
func (e *Engine) MonthlyCategories(month string) map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, c := range e.Categories() {
		totals[c] = decimal.Zero
	}
	for _, t := range e.TransactionsByMonth(month) {
		if t.MainType != model.MainExpense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount.Abs())
	}
	return totals
}
