// Package store provides the durable key-value snapshot store behind the
// ledger. Each key holds one serialized entity collection; every mutation
// writes the whole affected collection back. There is no schema versioning.
package store

// Store is a durable key-value snapshot store.
type Store interface {
	// Read unmarshals the snapshot under key into v. The bool reports
	// whether the key was present.
	Read(key string, v any) (bool, error)
	// Write replaces the snapshot under key.
	Write(key string, v any) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}
