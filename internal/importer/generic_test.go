package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func TestGenericParser_Parse(t *testing.T) {
	input := `date,description,amount,category
2024-03-01,Grocery store,-54.20,Food
2024-03-02,Salary,2500.00,Salary
`
	p := &GenericParser{}
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Grocery store", rows[0].Description)
	assert.True(t, rows[0].Amount.IsNegative())
	assert.Equal(t, model.Category("Food"), rows[0].Category)
	assert.Equal(t, "2024-03-01", rows[0].Date.String())

	assert.True(t, rows[1].Amount.IsPositive())
	assert.Equal(t, model.Category("Salary"), rows[1].Category)
}

func TestGenericParser_CategoryOptional(t *testing.T) {
	input := `date,description,amount
2024-03-01,ATM withdrawal,-200
`
	p := &GenericParser{}
	rows, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.CategoryOther, rows[0].Category)
}

func TestGenericParser_HeaderOnly(t *testing.T) {
	p := &GenericParser{}
	rows, err := p.Parse(strings.NewReader("date,description,amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGenericParser_BadAmount(t *testing.T) {
	input := `date,description,amount
2024-03-01,Broken,not-a-number
`
	p := &GenericParser{}
	_, err := p.Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.NotNil(t, r.Get("generic"))
	assert.NotNil(t, r.Get("GENERIC"), "format lookup is case-insensitive")
	assert.Nil(t, r.Get("unknown"))
	assert.Contains(t, r.Formats(), "generic")
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&GenericParser{})
	assert.Panics(t, func() { r.Register(&GenericParser{}) })
}
