package model

import "github.com/shopspring/decimal"

// AssetCategory classifies investments.
type AssetCategory string

const (
	AssetMutualFunds    AssetCategory = "Mutual Funds"
	AssetStocks         AssetCategory = "Stocks"
	AssetCryptocurrency AssetCategory = "Cryptocurrency"
	AssetGold           AssetCategory = "Gold"
	AssetRealEstate     AssetCategory = "Real Estate"
	AssetFixedDeposit   AssetCategory = "Fixed Deposit"
	AssetOther          AssetCategory = "Other"
)

// Asset is an investment holding. CurrentValue comes from external
// valuation and is never recomputed by the ledger; a zero CurrentValue
// falls back to AmountInvested in net-worth calculations.
type Asset struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"ownerId"`
	Name           string          `json:"name"`
	Category       AssetCategory   `json:"category"`
	AmountInvested decimal.Decimal `json:"amountInvested"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
}
