package model

// Category labels a transaction for reporting. The default set is closed;
// users may add custom categories on top of it.
type Category string

const CategoryOther Category = "Other"

var defaultCategories = []Category{
	"Food",
	"Transportation",
	"Utilities",
	"Entertainment",
	"Travel",
	"Shopping",
	"Health",
	"Education",
	"Gift",
	"Investment",
	"Salary",
	"Business",
	"Interest",
	"Rent",
	CategoryOther,
}

// DefaultCategories returns a copy of the built-in category set.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// IsDefaultCategory reports whether c is one of the protected built-ins.
func IsDefaultCategory(c Category) bool {
	for _, d := range defaultCategories {
		if d == c {
			return true
		}
	}
	return false
}
