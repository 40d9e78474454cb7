package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/notify"
	"github.com/tally-dev/tally/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newTestEngine(t *testing.T) (*Engine, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	eng, err := New(newTestStore(t), rec)
	require.NoError(t, err)
	return eng, rec
}

// newEmptyEngine returns an engine with the sample data cleared out, for
// tests that build their own fixtures.
func newEmptyEngine(t *testing.T) (*Engine, *notify.Recorder) {
	t.Helper()
	eng, rec := newTestEngine(t)
	require.NoError(t, eng.Reset())
	rec.Notifications = nil
	return eng, rec
}

func TestNew_SeedsSampleData(t *testing.T) {
	eng, _ := newTestEngine(t)

	assert.Equal(t, "Demo User", eng.User().Name)
	assert.Len(t, eng.Accounts(), 4)
	assert.Len(t, eng.People(), 3)
	assert.Len(t, eng.Assets(), 2)
	assert.Len(t, eng.Transactions(), 7)
}

func TestNew_DerivesBalancesFromLedger(t *testing.T) {
	eng, _ := newTestEngine(t)

	// Bank: 50000 opening + 25000 - 5000 - 2000 - 1000 + 500.
	bank, ok := eng.GetAccount("1")
	require.True(t, ok)
	assert.True(t, bank.Balance.Equal(amt(67500)), "bank balance %s", bank.Balance)

	wallet, ok := eng.GetAccount("2")
	require.True(t, ok)
	assert.True(t, wallet.Balance.Equal(amt(4000)))

	cash, ok := eng.GetAccount("3")
	require.True(t, ok)
	assert.True(t, cash.Balance.Equal(amt(5000)))

	card, ok := eng.GetAccount("4")
	require.True(t, ok)
	assert.True(t, card.Balance.Equal(amt(-15000)))

	extra, ok := eng.CreditCardInfo("4")
	require.True(t, ok)
	assert.True(t, extra.CurrentOutstanding.Equal(amt(15000)))

	assert.True(t, eng.PersonBalance("1").Equal(amt(1000)), "John is owed 1000")
	assert.True(t, eng.PersonBalance("2").Equal(amt(-500)), "Sarah is owed -500")
}

func TestNew_PersistedStateWinsOverSeed(t *testing.T) {
	st := newTestStore(t)

	first, err := New(st, nil)
	require.NoError(t, err)
	acct, err := first.AddAccount(AccountInput{Name: "Savings", Type: model.AccountTypeBank,
		OpeningBalance: amt(7000)}, nil)
	require.NoError(t, err)

	second, err := New(st, nil)
	require.NoError(t, err)
	require.Len(t, second.Accounts(), 5)

	got, ok := second.GetAccount(acct.ID)
	require.True(t, ok)
	assert.Equal(t, "Savings", got.Name)
	assert.True(t, got.Balance.Equal(amt(7000)))
}

func TestReset_ClearsCollectionsAndSnapshots(t *testing.T) {
	st := newTestStore(t)
	eng, err := New(st, nil)
	require.NoError(t, err)

	require.NoError(t, eng.Reset())
	assert.Empty(t, eng.Accounts())
	assert.Empty(t, eng.People())
	assert.Empty(t, eng.Assets())
	assert.Empty(t, eng.Transactions())
	assert.Empty(t, eng.CustomCategories())

	// The keys must still exist, holding empty collections.
	var txns []model.Transaction
	found, err := st.Read("transactions", &txns)
	require.NoError(t, err)
	assert.True(t, found, "transactions snapshot should be written, not deleted")
	assert.Empty(t, txns)
}

func TestReset_SurvivesRestart(t *testing.T) {
	st := newTestStore(t)
	eng, err := New(st, nil)
	require.NoError(t, err)
	require.NoError(t, eng.Reset())

	// A fresh engine on the same store must see the cleared state, not the
	// sample data.
	reopened, err := New(st, nil)
	require.NoError(t, err)
	assert.Empty(t, reopened.Accounts())
	assert.Empty(t, reopened.People())
	assert.Empty(t, reopened.Assets())
	assert.Empty(t, reopened.Transactions())
	assert.Equal(t, "Demo User", reopened.User().Name)
}
