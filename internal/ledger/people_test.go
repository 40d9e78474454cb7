package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func TestRecalcPerson_DebtSigns(t *testing.T) {
	eng, _ := newEmptyEngine(t)
	acct, err := eng.AddAccount(AccountInput{Name: "Bank", Type: model.AccountTypeBank,
		OpeningBalance: amt(10000)}, nil)
	require.NoError(t, err)
	person, err := eng.AddPerson(PersonInput{Name: "Alice"})
	require.NoError(t, err)

	// Money in from Alice: the owner borrowed, so the balance goes negative.
	_, err = eng.AddTransaction(TransactionInput{
		Date: day(2024, time.June, 1), Amount: amt(300), AccountID: acct.ID,
		MainType: model.MainTransfer, SubType: model.SubDebt, LinkedPersonID: person.ID,
	})
	require.NoError(t, err)
	assert.True(t, eng.PersonBalance(person.ID).Equal(amt(-300)))

	// Money out to Alice: a loan made, the balance moves back up.
	_, err = eng.AddTransaction(TransactionInput{
		Date: day(2024, time.June, 5), Amount: amt(-200), AccountID: acct.ID,
		MainType: model.MainTransfer, SubType: model.SubDebt, LinkedPersonID: person.ID,
	})
	require.NoError(t, err)
	assert.True(t, eng.PersonBalance(person.ID).Equal(amt(-100)))
}

func TestRecalcPerson_RepaymentAddsDirectly(t *testing.T) {
	eng, _ := newEmptyEngine(t)
	acct, err := eng.AddAccount(AccountInput{Name: "Bank", Type: model.AccountTypeBank,
		OpeningBalance: amt(10000)}, nil)
	require.NoError(t, err)
	person, err := eng.AddPerson(PersonInput{Name: "Bob"})
	require.NoError(t, err)

	// Lend 1000, then receive 400 back.
	_, err = eng.AddTransaction(TransactionInput{
		Date: day(2024, time.June, 1), Amount: amt(-1000), AccountID: acct.ID,
		MainType: model.MainTransfer, SubType: model.SubDebt, LinkedPersonID: person.ID,
	})
	require.NoError(t, err)
	assert.True(t, eng.PersonBalance(person.ID).Equal(amt(1000)))

	_, err = eng.AddTransaction(TransactionInput{
		Date: day(2024, time.June, 10), Amount: amt(-400), AccountID: acct.ID,
		MainType: model.MainTransfer, SubType: model.SubRepayment, LinkedPersonID: person.ID,
	})
	require.NoError(t, err)
	assert.True(t, eng.PersonBalance(person.ID).Equal(amt(600)))
}

func TestRecalcPerson_DeleteRestoresBalance(t *testing.T) {
	eng, _ := newEmptyEngine(t)
	acct, err := eng.AddAccount(AccountInput{Name: "Bank", Type: model.AccountTypeBank,
		OpeningBalance: amt(10000)}, nil)
	require.NoError(t, err)
	person, err := eng.AddPerson(PersonInput{Name: "Carol"})
	require.NoError(t, err)

	loan, err := eng.AddTransaction(TransactionInput{
		Date: day(2024, time.June, 1), Amount: amt(-750), AccountID: acct.ID,
		MainType: model.MainTransfer, SubType: model.SubDebt, LinkedPersonID: person.ID,
	})
	require.NoError(t, err)
	require.True(t, eng.PersonBalance(person.ID).Equal(amt(750)))

	deleted, err := eng.DeleteTransaction(loan.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, eng.PersonBalance(person.ID).IsZero())

	got, _ := eng.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(amt(10000)))
}

func TestPersonBalance_Unknown(t *testing.T) {
	eng, _ := newTestEngine(t)
	assert.True(t, eng.PersonBalance("missing").IsZero())
}

func TestSummaries_SplitBySign(t *testing.T) {
	eng, _ := newTestEngine(t)

	receivable := eng.ReceivableSummary()
	assert.True(t, receivable.Total.Equal(amt(1000)))
	assert.Equal(t, 1, receivable.Count)

	payable := eng.PayableSummary()
	assert.True(t, payable.Total.Equal(amt(500)))
	assert.Equal(t, 1, payable.Count)
}

func TestUpdatePerson(t *testing.T) {
	eng, _ := newTestEngine(t)

	john := eng.People()[0]
	john.Name = "John Smith"
	john.Phone = "555-1234"
	updated, err := eng.UpdatePerson(john)
	require.NoError(t, err)
	assert.True(t, updated)

	got := eng.People()[0]
	assert.Equal(t, "John Smith", got.Name)
	assert.Equal(t, "555-1234", got.Phone)
	assert.True(t, got.RunningBalance.Equal(amt(1000)), "running balance stays derived")

	updated, err = eng.UpdatePerson(model.Person{ID: "missing", Name: "Nobody"})
	require.NoError(t, err)
	assert.False(t, updated)
}
