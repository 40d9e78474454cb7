// Package id assigns entity identity. Ids are opaque; the ledger only ever
// compares them for equality.
package id

import "github.com/google/uuid"

// New returns a fresh entity id.
func New() string {
	return uuid.NewString()
}
