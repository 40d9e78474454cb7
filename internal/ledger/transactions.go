package ledger

import (
	"fmt"
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// TransactionInput holds the caller-supplied fields of a new transaction.
// Amount carries the magnitude for Income/Expense (the engine applies the
// sign) and the signed value for transfers, where direction matters.
type TransactionInput struct {
	Date                 model.Date
	Amount               decimal.Decimal
	AccountID            string
	Category             model.Category
	Description          string
	MainType             model.MainType
	SubType              model.SubType
	LinkedPersonID       string
	CounterpartAccountID string
	LinkedAssetID        string
}

// AddTransaction appends a transaction to the ledger and recomputes every
// balance it touches. Internal transfers and credit-card payments write a
// negative source leg and a synthesized positive mirror leg on the
// counterpart account.
//
// An unresolved account reference is a deliberate silent no-op: the ledger
// is left untouched and (nil, nil) is returned.
func (e *Engine) AddTransaction(in TransactionInput) (*model.Transaction, error) {
	if e.findAccount(in.AccountID) == nil {
		return nil, nil
	}

	amount := in.Amount
	switch in.MainType {
	case model.MainIncome:
		amount = amount.Abs()
	case model.MainExpense:
		amount = amount.Abs().Neg()
	}

	txn := model.Transaction{
		ID:                   id.New(),
		OwnerID:              e.user.ID,
		Date:                 in.Date,
		Amount:               amount,
		AccountID:            in.AccountID,
		Category:             in.Category,
		Description:          in.Description,
		MainType:             in.MainType,
		SubType:              in.SubType,
		LinkedPersonID:       in.LinkedPersonID,
		CounterpartAccountID: in.CounterpartAccountID,
		LinkedAssetID:        in.LinkedAssetID,
	}

	keys := []string{keyTxns}

	paired := in.CounterpartAccountID != "" &&
		(in.MainType == model.MainCreditCardPayment ||
			in.MainType == model.MainTransfer && in.SubType == model.SubInternalTransfer)
	linked := in.LinkedPersonID != "" &&
		in.MainType == model.MainTransfer &&
		(in.SubType == model.SubDebt || in.SubType == model.SubRepayment)

	switch {
	case paired:
		magnitude := in.Amount.Abs()
		txn.Amount = magnitude.Neg()

		mirror := txn
		mirror.ID = id.New()
		mirror.Amount = magnitude
		mirror.AccountID = in.CounterpartAccountID
		mirror.CounterpartAccountID = in.AccountID

		e.txns = append(e.txns, txn, mirror)
		e.recalcAccount(txn.AccountID)
		e.recalcAccount(mirror.AccountID)
		keys = append(keys, e.balanceKeys(txn.AccountID)...)
		keys = append(keys, e.balanceKeys(mirror.AccountID)...)

	case linked:
		e.txns = append(e.txns, txn)
		e.recalcAccount(txn.AccountID)
		e.recalcPerson(txn.LinkedPersonID)
		keys = append(keys, e.balanceKeys(txn.AccountID)...)
		keys = append(keys, keyPeople)

	default:
		e.txns = append(e.txns, txn)
		e.recalcAccount(txn.AccountID)
		keys = append(keys, e.balanceKeys(txn.AccountID)...)
	}

	if err := e.persist(keys...); err != nil {
		return nil, err
	}
	e.notify("Transaction Added",
		fmt.Sprintf("%s of %s has been recorded.", txn.MainType, txn.Amount.Abs().StringFixed(2)))

	created := *e.findTxn(txn.ID)
	return &created, nil
}

// DeleteTransaction removes a transaction and recomputes the balances it
// touched. Deleting either leg of an internal-transfer or credit-card
// payment pair removes both legs. Unknown ids are a no-op.
func (e *Engine) DeleteTransaction(txID string) (bool, error) {
	found := e.findTxn(txID)
	if found == nil {
		return false, nil
	}
	txn := *found

	pairedID := ""
	if txn.IsPaired() {
		for _, p := range e.txns {
			if p.ID != txn.ID &&
				p.MainType == txn.MainType && p.SubType == txn.SubType &&
				p.AccountID == txn.CounterpartAccountID &&
				p.CounterpartAccountID == txn.AccountID &&
				p.Date.Equal(txn.Date) {
				pairedID = p.ID
				break
			}
		}
	}

	e.txns = slices.DeleteFunc(e.txns, func(t model.Transaction) bool {
		return t.ID == txn.ID || (pairedID != "" && t.ID == pairedID)
	})

	keys := []string{keyTxns}
	e.recalcAccount(txn.AccountID)
	keys = append(keys, e.balanceKeys(txn.AccountID)...)

	switch {
	case txn.IsPaired():
		e.recalcAccount(txn.CounterpartAccountID)
		keys = append(keys, e.balanceKeys(txn.CounterpartAccountID)...)
	case txn.LinkedPersonID != "":
		e.recalcPerson(txn.LinkedPersonID)
		keys = append(keys, keyPeople)
	}

	if err := e.persist(keys...); err != nil {
		return false, err
	}
	e.notify("Transaction Deleted", "Transaction has been removed.")
	return true, nil
}

// TransactionsByMonth returns the transactions dated in the given "2006-01"
// month, in insertion order.
func (e *Engine) TransactionsByMonth(month string) []model.Transaction {
	var out []model.Transaction
	for _, t := range e.txns {
		if t.Date.MonthKey() == month {
			out = append(out, t)
		}
	}
	return out
}

// RecentTransactions returns up to limit transactions, most recent date
// first. Same-day transactions keep their insertion order.
func (e *Engine) RecentTransactions(limit int) []model.Transaction {
	out := slices.Clone(e.txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
