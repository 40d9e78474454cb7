// Package ledger implements the balance-recalculation and derived-metrics
// engine. The engine exclusively owns the entity collections; every change
// goes through its operations, and every derived value (account balances,
// credit-card outstanding, person running balances) is recomputed from the
// transaction ledger rather than adjusted incrementally.
package ledger

import (
	"fmt"
	"slices"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/notify"
	"github.com/tally-dev/tally/internal/store"
)

// Snapshot keys in the backing store, one per collection.
const (
	keyUser       = "user"
	keyAccounts   = "accounts"
	keyCards      = "creditCardExtras"
	keyPeople     = "people"
	keyAssets     = "assets"
	keyTxns       = "transactions"
	keyCategories = "customCategories"
)

// Engine owns the entity collections and keeps derived balances consistent
// with the transaction ledger. It is single-writer and not safe for
// concurrent use.
type Engine struct {
	store    store.Store
	notifier notify.Notifier

	user       model.User
	accounts   []model.Account
	cards      []model.CreditCardExtra
	people     []model.Person
	assets     []model.Asset
	txns       []model.Transaction
	categories []model.Category // custom categories only
}

// New loads every collection from the store, seeding any absent key with the
// built-in sample data, then derives all balances from the ledger.
func New(st store.Store, n notify.Notifier) (*Engine, error) {
	if n == nil {
		n = notify.Discard{}
	}
	e := &Engine{store: st, notifier: n}
	if err := e.load(); err != nil {
		return nil, err
	}
	e.recalcAll()
	return e, nil
}

func (e *Engine) load() error {
	loads := []struct {
		key  string
		dst  any
		seed func()
	}{
		{keyUser, &e.user, func() { e.user = seedUser() }},
		{keyAccounts, &e.accounts, func() { e.accounts = seedAccounts() }},
		{keyCards, &e.cards, func() { e.cards = seedCreditCardExtras() }},
		{keyPeople, &e.people, func() { e.people = seedPeople() }},
		{keyAssets, &e.assets, func() { e.assets = seedAssets() }},
		{keyTxns, &e.txns, func() { e.txns = seedTransactions() }},
		{keyCategories, &e.categories, func() { e.categories = nil }},
	}
	for _, l := range loads {
		found, err := e.store.Read(l.key, l.dst)
		if err != nil {
			return err
		}
		if !found {
			l.seed()
		}
	}
	return nil
}

// persist writes the named collections back to the store, skipping
// duplicates.
func (e *Engine) persist(keys ...string) error {
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}
		seen[key] = true

		var v any
		switch key {
		case keyUser:
			v = e.user
		case keyAccounts:
			v = e.accounts
		case keyCards:
			v = e.cards
		case keyPeople:
			v = e.people
		case keyAssets:
			v = e.assets
		case keyTxns:
			v = e.txns
		case keyCategories:
			v = e.categories
		default:
			return fmt.Errorf("unknown snapshot key %q", key)
		}
		if err := e.store.Write(key, v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) notify(title, description string) {
	e.notifier.Notify(notify.Notification{Title: title, Description: description})
}

func (e *Engine) reject(title, description string) {
	e.notifier.Notify(notify.Notification{
		Title:       title,
		Description: description,
		Variant:     notify.VariantDestructive,
	})
}

// Reset clears every collection, keeping only the user. Empty snapshots are
// written back for every key: an absent key would re-seed the sample data on
// the next load.
func (e *Engine) Reset() error {
	e.user = seedUser()
	e.accounts = []model.Account{}
	e.cards = []model.CreditCardExtra{}
	e.people = []model.Person{}
	e.assets = []model.Asset{}
	e.txns = []model.Transaction{}
	e.categories = []model.Category{}

	if err := e.persist(keyUser, keyAccounts, keyCards, keyPeople, keyAssets, keyTxns, keyCategories); err != nil {
		return err
	}

	e.notify("Data Reset", "All financial data has been cleared.")
	return nil
}

// User returns the synthetic current user.
func (e *Engine) User() model.User { return e.user }

// Accounts returns a read-only view of the account collection.
func (e *Engine) Accounts() []model.Account { return slices.Clone(e.accounts) }

// People returns a read-only view of the person collection.
func (e *Engine) People() []model.Person { return slices.Clone(e.people) }

// Assets returns a read-only view of the asset collection.
func (e *Engine) Assets() []model.Asset { return slices.Clone(e.assets) }

// Transactions returns a read-only view of the ledger in insertion order.
func (e *Engine) Transactions() []model.Transaction { return slices.Clone(e.txns) }

// CreditCardExtras returns a read-only view of the credit-card collection.
func (e *Engine) CreditCardExtras() []model.CreditCardExtra { return slices.Clone(e.cards) }

func (e *Engine) findAccount(id string) *model.Account {
	for i := range e.accounts {
		if e.accounts[i].ID == id {
			return &e.accounts[i]
		}
	}
	return nil
}

func (e *Engine) findCard(accountID string) *model.CreditCardExtra {
	for i := range e.cards {
		if e.cards[i].AccountID == accountID {
			return &e.cards[i]
		}
	}
	return nil
}

func (e *Engine) findPerson(id string) *model.Person {
	for i := range e.people {
		if e.people[i].ID == id {
			return &e.people[i]
		}
	}
	return nil
}

func (e *Engine) findTxn(id string) *model.Transaction {
	for i := range e.txns {
		if e.txns[i].ID == id {
			return &e.txns[i]
		}
	}
	return nil
}

// balanceKeys returns the snapshot keys touched by recalculating accountID.
func (e *Engine) balanceKeys(accountID string) []string {
	keys := []string{keyAccounts}
	if a := e.findAccount(accountID); a != nil && a.Type == model.AccountTypeCreditCard {
		keys = append(keys, keyCards)
	}
	return keys
}
