package model

import "github.com/shopspring/decimal"

// Person is a contact the owner lends to or borrows from. RunningBalance is
// derived from Debt/Repayment transfers linked to the person: positive means
// the person owes the owner, negative means the owner owes the person.
type Person struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"ownerId"`
	Name           string          `json:"name"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Phone          string          `json:"phone,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}
