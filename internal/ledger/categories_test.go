package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/notify"
)

func TestAddCategory(t *testing.T) {
	eng, _ := newTestEngine(t)

	added, err := eng.AddCategory("Subscriptions")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Contains(t, eng.CustomCategories(), model.Category("Subscriptions"))
	assert.Contains(t, eng.Categories(), model.Category("Subscriptions"))
}

func TestAddCategory_RejectsDuplicates(t *testing.T) {
	eng, rec := newTestEngine(t)

	// Duplicate of a default.
	added, err := eng.AddCategory("Food")
	require.NoError(t, err)
	assert.False(t, added)
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.VariantDestructive, last.Variant)

	// Duplicate of an existing custom.
	_, err = eng.AddCategory("Subscriptions")
	require.NoError(t, err)
	added, err = eng.AddCategory("Subscriptions")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, eng.CustomCategories(), 1)
}

func TestRemoveCategory(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.AddCategory("Subscriptions")
	require.NoError(t, err)

	removed, err := eng.RemoveCategory("Subscriptions")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, eng.CustomCategories())
}

func TestRemoveCategory_RejectsInUse(t *testing.T) {
	eng, rec := newTestEngine(t)

	_, err := eng.AddCategory("Subscriptions")
	require.NoError(t, err)
	_, err = eng.AddTransaction(TransactionInput{
		Date: day(2024, time.July, 1), Amount: amt(99), AccountID: "1",
		Category: "Subscriptions", MainType: model.MainExpense,
	})
	require.NoError(t, err)

	removed, err := eng.RemoveCategory("Subscriptions")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Contains(t, eng.CustomCategories(), model.Category("Subscriptions"))

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.VariantDestructive, last.Variant)
}

func TestRemoveCategory_RejectsDefaults(t *testing.T) {
	eng, rec := newTestEngine(t)

	// "Travel" is a default with no seed transactions.
	removed, err := eng.RemoveCategory("Travel")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Contains(t, eng.Categories(), model.Category("Travel"))

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.VariantDestructive, last.Variant)
}

func TestRemoveCategory_UnknownCustomIsSilent(t *testing.T) {
	eng, rec := newTestEngine(t)
	rec.Notifications = nil

	removed, err := eng.RemoveCategory("Nonexistent")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Empty(t, rec.Notifications)
}
