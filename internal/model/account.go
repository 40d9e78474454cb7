package model

import "github.com/shopspring/decimal"

// AccountType classifies money-holding accounts.
type AccountType string

const (
	AccountTypeBank       AccountType = "Bank"
	AccountTypeWallet     AccountType = "Wallet"
	AccountTypeCash       AccountType = "Cash"
	AccountTypeCreditCard AccountType = "Credit Card"
)

// Account is a holding of money with a balance derived from the ledger:
// balance = openingBalance + sum of all transaction amounts on the account.
type Account struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"ownerId"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	Balance        decimal.Decimal `json:"balance"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // fixed at creation
	Color          string          `json:"color,omitempty"`
}

// CreditCardExtra carries the credit-card fields for an account of type
// Credit Card (1:1 by account id). CurrentOutstanding is derived and never
// negative.
type CreditCardExtra struct {
	AccountID          string          `json:"accountId"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	CurrentOutstanding decimal.Decimal `json:"currentOutstanding"`
}
