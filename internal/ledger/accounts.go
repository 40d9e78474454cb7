package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// AccountInput holds the caller-supplied fields of a new account.
type AccountInput struct {
	Name           string
	Type           model.AccountType
	OpeningBalance decimal.Decimal
	Color          string
}

// CreditCardInput declares the credit-card fields of a new Credit Card
// account.
type CreditCardInput struct {
	CreditLimit        decimal.Decimal
	CurrentOutstanding decimal.Decimal
}

// AddAccount creates an account whose balance starts at its opening balance.
// A declared non-zero outstanding on a new credit card synthesizes an
// initial Expense transaction so the derived outstanding matches the
// declared value.
func (e *Engine) AddAccount(in AccountInput, cc *CreditCardInput) (model.Account, error) {
	acct := model.Account{
		ID:             id.New(),
		OwnerID:        e.user.ID,
		Name:           in.Name,
		Type:           in.Type,
		Balance:        in.OpeningBalance,
		OpeningBalance: in.OpeningBalance,
		Color:          in.Color,
	}
	e.accounts = append(e.accounts, acct)
	keys := []string{keyAccounts}

	if in.Type == model.AccountTypeCreditCard && cc != nil {
		e.cards = append(e.cards, model.CreditCardExtra{
			AccountID:          acct.ID,
			CreditLimit:        cc.CreditLimit,
			CurrentOutstanding: cc.CurrentOutstanding,
		})
		keys = append(keys, keyCards)

		if cc.CurrentOutstanding.IsPositive() {
			e.txns = append(e.txns, model.Transaction{
				ID:          id.New(),
				OwnerID:     e.user.ID,
				Date:        model.Today(),
				Amount:      cc.CurrentOutstanding.Neg(),
				AccountID:   acct.ID,
				Category:    model.CategoryOther,
				Description: "Initial credit card balance",
				MainType:    model.MainExpense,
			})
			e.recalcAccount(acct.ID)
			keys = append(keys, keyTxns)
		}
	}

	if err := e.persist(keys...); err != nil {
		return model.Account{}, err
	}
	e.notify("Account Added", fmt.Sprintf("%s has been added to your accounts.", in.Name))
	return *e.findAccount(acct.ID), nil
}

// UpdateAccount replaces the editable fields (name, color) of an existing
// account. Balances stay derived. Unknown ids are a no-op.
func (e *Engine) UpdateAccount(acct model.Account) (bool, error) {
	existing := e.findAccount(acct.ID)
	if existing == nil {
		return false, nil
	}

	existing.Name = acct.Name
	existing.Color = acct.Color

	if err := e.persist(keyAccounts); err != nil {
		return false, err
	}
	e.notify("Account Updated", fmt.Sprintf("%s has been updated.", existing.Name))
	return true, nil
}

// GetAccount returns an account by id.
func (e *Engine) GetAccount(accountID string) (model.Account, bool) {
	if a := e.findAccount(accountID); a != nil {
		return *a, true
	}
	return model.Account{}, false
}

// CreditCardInfo returns the credit-card extra for an account, if any.
func (e *Engine) CreditCardInfo(accountID string) (model.CreditCardExtra, bool) {
	if c := e.findCard(accountID); c != nil {
		return *c, true
	}
	return model.CreditCardExtra{}, false
}
