package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCategories(t *testing.T) {
	defaults := DefaultCategories()
	assert.Len(t, defaults, 15)
	assert.Equal(t, CategoryOther, defaults[len(defaults)-1])

	// Callers get a copy.
	defaults[0] = "Mutated"
	assert.True(t, IsDefaultCategory("Food"))
}

func TestIsDefaultCategory(t *testing.T) {
	assert.True(t, IsDefaultCategory("Food"))
	assert.True(t, IsDefaultCategory(CategoryOther))
	assert.False(t, IsDefaultCategory("Subscriptions"))
	assert.False(t, IsDefaultCategory("food"), "matching is case-sensitive")
}
