package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Built-in sample data, used to seed any collection whose snapshot key is
// absent on first run. Balances in the seed are nominal: the engine derives
// them from the ledger right after loading.

func seedUser() model.User {
	return model.User{
		ID:           "user1",
		Name:         "Demo User",
		Email:        "demo@example.com",
		BaseCurrency: "INR",
	}
}

func seedAccounts() []model.Account {
	return []model.Account{
		{ID: "1", OwnerID: "user1", Name: "HDFC Bank", Type: model.AccountTypeBank,
			Balance: amt(50000), OpeningBalance: amt(50000), Color: "#60a5fa"},
		{ID: "2", OwnerID: "user1", Name: "Wallet", Type: model.AccountTypeWallet,
			Balance: amt(2000), OpeningBalance: amt(2000), Color: "#34d399"},
		{ID: "3", OwnerID: "user1", Name: "Cash", Type: model.AccountTypeCash,
			Balance: amt(5000), OpeningBalance: amt(5000), Color: "#fbbf24"},
		{ID: "4", OwnerID: "user1", Name: "ICICI Credit Card", Type: model.AccountTypeCreditCard,
			Balance: amt(-15000), OpeningBalance: amt(0), Color: "#f87171"},
	}
}

func seedCreditCardExtras() []model.CreditCardExtra {
	return []model.CreditCardExtra{
		{AccountID: "4", CreditLimit: amt(100000), CurrentOutstanding: amt(15000)},
	}
}

func seedPeople() []model.Person {
	return []model.Person{
		{ID: "1", OwnerID: "user1", Name: "John", RunningBalance: amt(1000)},
		{ID: "2", OwnerID: "user1", Name: "Sarah", RunningBalance: amt(-500)},
		{ID: "3", OwnerID: "user1", Name: "Credit Card Company", RunningBalance: amt(0)},
	}
}

func seedAssets() []model.Asset {
	return []model.Asset{
		{ID: "1", OwnerID: "user1", Name: "Mutual Fund Portfolio", Category: model.AssetMutualFunds,
			AmountInvested: amt(30000), CurrentValue: amt(32000)},
		{ID: "2", OwnerID: "user1", Name: "Bitcoin", Category: model.AssetCryptocurrency,
			AmountInvested: amt(10000), CurrentValue: amt(12000)},
	}
}

func seedTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", OwnerID: "user1", Date: day(2023, time.May, 1), Amount: amt(25000),
			AccountID: "1", Category: "Salary", Description: "Monthly Salary",
			MainType: model.MainIncome},
		{ID: "2", OwnerID: "user1", Date: day(2023, time.May, 5), Amount: amt(-5000),
			AccountID: "1", Category: "Food", Description: "Groceries",
			MainType: model.MainExpense},
		{ID: "3", OwnerID: "user1", Date: day(2023, time.May, 10), Amount: amt(-2000),
			AccountID: "1", Category: model.CategoryOther, Description: "Transfer to wallet",
			MainType: model.MainTransfer, SubType: model.SubInternalTransfer,
			CounterpartAccountID: "2"},
		{ID: "4", OwnerID: "user1", Date: day(2023, time.May, 10), Amount: amt(2000),
			AccountID: "2", Category: model.CategoryOther, Description: "Transfer from bank",
			MainType: model.MainTransfer, SubType: model.SubInternalTransfer,
			CounterpartAccountID: "1"},
		{ID: "5", OwnerID: "user1", Date: day(2023, time.May, 15), Amount: amt(-1000),
			AccountID: "1", Category: model.CategoryOther, Description: "Lent money to John",
			MainType: model.MainTransfer, SubType: model.SubDebt,
			LinkedPersonID: "1"},
		{ID: "6", OwnerID: "user1", Date: day(2023, time.May, 18), Amount: amt(500),
			AccountID: "1", Category: model.CategoryOther, Description: "Borrowed from Sarah",
			MainType: model.MainTransfer, SubType: model.SubDebt,
			LinkedPersonID: "2"},
		{ID: "7", OwnerID: "user1", Date: day(2023, time.May, 20), Amount: amt(-15000),
			AccountID: "4", Category: "Shopping", Description: "Purchase with credit card",
			MainType: model.MainExpense},
	}
}

func amt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func day(year int, month time.Month, d int) model.Date { return model.NewDate(year, month, d) }
