package model

import "github.com/shopspring/decimal"

// MainType is the primary classification of a transaction.
type MainType string

const (
	MainIncome            MainType = "Income"
	MainExpense           MainType = "Expense"
	MainTransfer          MainType = "Transfer"
	MainInvestment        MainType = "Investment"
	MainCreditCardPayment MainType = "Credit Card Payment"
)

// SubType refines Transfer and Investment transactions.
type SubType string

const (
	SubNone             SubType = ""
	SubInternalTransfer SubType = "Internal Transfer"
	SubDebt             SubType = "Debt"
	SubRepayment        SubType = "Repayment"
	SubBuy              SubType = "Buy"
	SubSell             SubType = "Sell"
)

// Transaction is a single ledger row. Rows are immutable once created; the
// only way to change history is to delete a row, which triggers a recompute
// of every balance it touched.
//
// Amounts are signed: negative amounts leave the account, positive amounts
// enter it.
type Transaction struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	AccountID   string          `json:"accountId"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	MainType    MainType        `json:"mainType"`
	SubType     SubType         `json:"subType"`

	// LinkedPersonID names the person behind a Debt or Repayment transfer.
	LinkedPersonID string `json:"linkedPersonId,omitempty"`

	// CounterpartAccountID names the other account of an internal transfer
	// or credit-card payment pair. Both legs carry it, each pointing at the
	// other leg's account.
	CounterpartAccountID string `json:"counterpartAccountId,omitempty"`

	// LinkedAssetID names the asset behind an Investment Buy/Sell.
	LinkedAssetID string `json:"linkedAssetId,omitempty"`
}

// IsPaired reports whether the transaction is one leg of a two-account pair.
func (t Transaction) IsPaired() bool { return t.CounterpartAccountID != "" }
