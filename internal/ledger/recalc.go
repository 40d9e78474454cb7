package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// recalcAccount derives the account balance from scratch:
// balance = openingBalance + sum of all transaction amounts on the account.
// Credit cards additionally get their outstanding recomputed. Unknown ids
// are a no-op.
func (e *Engine) recalcAccount(accountID string) {
	acct := e.findAccount(accountID)
	if acct == nil {
		return
	}

	balance := acct.OpeningBalance
	for _, t := range e.txns {
		if t.AccountID == accountID {
			balance = balance.Add(t.Amount)
		}
	}
	acct.Balance = balance

	if acct.Type == model.AccountTypeCreditCard {
		e.recalcOutstanding(accountID)
	}
}

// recalcOutstanding derives the unpaid amount on a credit card:
// expenses add their magnitude, positive payment amounts (credit-card
// payments and incoming internal transfers) subtract. Never negative.
func (e *Engine) recalcOutstanding(accountID string) {
	card := e.findCard(accountID)
	if card == nil {
		return
	}

	outstanding := decimal.Zero
	for _, t := range e.txns {
		if t.AccountID != accountID {
			continue
		}
		switch {
		case t.MainType == model.MainExpense:
			outstanding = outstanding.Add(t.Amount.Abs())
		case t.MainType == model.MainCreditCardPayment,
			t.MainType == model.MainTransfer && t.SubType == model.SubInternalTransfer:
			if t.Amount.IsPositive() {
				outstanding = outstanding.Sub(t.Amount)
			}
		}
	}
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	card.CurrentOutstanding = outstanding
}

// recalcPerson derives the running balance from every Debt/Repayment
// transfer linked to the person. Positive means the person owes the owner.
//
// Debt amounts follow cash flow: money out (negative) is a loan made, so
// the person owes more; money in (positive) is a loan taken, so the owner
// owes. Repayment amounts add directly, moving the balance back.
func (e *Engine) recalcPerson(personID string) {
	person := e.findPerson(personID)
	if person == nil {
		return
	}

	balance := decimal.Zero
	for _, t := range e.txns {
		if t.LinkedPersonID != personID || t.MainType != model.MainTransfer {
			continue
		}
		switch t.SubType {
		case model.SubDebt:
			if t.Amount.IsPositive() {
				balance = balance.Sub(t.Amount)
			} else {
				balance = balance.Add(t.Amount.Abs())
			}
		case model.SubRepayment:
			balance = balance.Add(t.Amount)
		}
	}
	person.RunningBalance = balance
}

// recalcAll rederives every account and person balance.
func (e *Engine) recalcAll() {
	for i := range e.accounts {
		e.recalcAccount(e.accounts[i].ID)
	}
	for i := range e.people {
		e.recalcPerson(e.people[i].ID)
	}
}
