package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// PersonInput holds the caller-supplied fields of a new person.
type PersonInput struct {
	Name  string
	Phone string
	Notes string
}

// AddPerson creates a contact with a zero running balance.
func (e *Engine) AddPerson(in PersonInput) (model.Person, error) {
	person := model.Person{
		ID:      id.New(),
		OwnerID: e.user.ID,
		Name:    in.Name,
		Phone:   in.Phone,
		Notes:   in.Notes,
	}
	e.people = append(e.people, person)

	if err := e.persist(keyPeople); err != nil {
		return model.Person{}, err
	}
	e.notify("Person Added", fmt.Sprintf("%s has been added to your contacts.", in.Name))
	return person, nil
}

// UpdatePerson replaces the editable fields (name, phone, notes) of an
// existing person. The running balance stays derived. Unknown ids are a
// no-op.
func (e *Engine) UpdatePerson(p model.Person) (bool, error) {
	existing := e.findPerson(p.ID)
	if existing == nil {
		return false, nil
	}

	existing.Name = p.Name
	existing.Phone = p.Phone
	existing.Notes = p.Notes

	if err := e.persist(keyPeople); err != nil {
		return false, err
	}
	e.notify("Person Updated", fmt.Sprintf("%s has been updated.", existing.Name))
	return true, nil
}

// PersonBalance returns the running balance for a person, zero if unknown.
func (e *Engine) PersonBalance(personID string) decimal.Decimal {
	if p := e.findPerson(personID); p != nil {
		return p.RunningBalance
	}
	return decimal.Zero
}

// Summary totals one side of the person ledger.
type Summary struct {
	Total decimal.Decimal
	Count int
}

// ReceivableSummary totals the people who owe the owner.
func (e *Engine) ReceivableSummary() Summary {
	var s Summary
	s.Total = decimal.Zero
	for _, p := range e.people {
		if p.RunningBalance.IsPositive() {
			s.Total = s.Total.Add(p.RunningBalance)
			s.Count++
		}
	}
	return s
}

// PayableSummary totals the people the owner owes.
func (e *Engine) PayableSummary() Summary {
	var s Summary
	s.Total = decimal.Zero
	for _, p := range e.people {
		if p.RunningBalance.IsNegative() {
			s.Total = s.Total.Add(p.RunningBalance.Abs())
			s.Count++
		}
	}
	return s
}
