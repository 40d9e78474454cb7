package ledger

import (
	"fmt"
	"slices"

	"github.com/tally-dev/tally/internal/model"
)

// Categories returns the default set followed by the custom categories.
func (e *Engine) Categories() []model.Category {
	return append(model.DefaultCategories(), e.categories...)
}

// CustomCategories returns only the user-added categories.
func (e *Engine) CustomCategories() []model.Category {
	return slices.Clone(e.categories)
}

// AddCategory adds a custom category. Duplicates of a default or existing
// custom category are rejected with a notification; the collection is left
// unchanged and no error is raised.
func (e *Engine) AddCategory(c model.Category) (bool, error) {
	if model.IsDefaultCategory(c) || slices.Contains(e.categories, c) {
		e.reject("Category Exists", fmt.Sprintf("The category %s already exists.", c))
		return false, nil
	}

	e.categories = append(e.categories, c)
	if err := e.persist(keyCategories); err != nil {
		return false, err
	}
	e.notify("Category Added", fmt.Sprintf("%s has been added to your custom categories.", c))
	return true, nil
}

// RemoveCategory removes a custom category. Categories referenced by any
// transaction or belonging to the default set are rejected with a
// notification.
func (e *Engine) RemoveCategory(c model.Category) (bool, error) {
	for _, t := range e.txns {
		if t.Category == c {
			e.reject("Cannot Remove Category",
				fmt.Sprintf("The category %s is in use by transactions and cannot be removed.", c))
			return false, nil
		}
	}
	if model.IsDefaultCategory(c) {
		e.reject("Cannot Remove Default Category",
			fmt.Sprintf("The category %s is a default category and cannot be removed.", c))
		return false, nil
	}
	if !slices.Contains(e.categories, c) {
		return false, nil
	}

	e.categories = slices.DeleteFunc(e.categories, func(x model.Category) bool { return x == c })
	if err := e.persist(keyCategories); err != nil {
		return false, err
	}
	e.notify("Category Removed", fmt.Sprintf("%s has been removed from your custom categories.", c))
	return true, nil
}
