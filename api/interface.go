package api

// Index bare minimum interface for an ordered key-value index.
type Index interface {
	// ID is same as the name supplied while creating the index.
	ID() string

	// Count return the number of entries in the index.
	Count() int64

	// IsEmpty return true if the index has no entries.
	IsEmpty() bool

	// Get value for key, if present.
	Get(key []byte) (value []byte, err error)

	// Contains return true if key is present in the index.
	Contains(key []byte) bool

	// Upsert insert or update key with value.
	Upsert(key, value []byte) error

	// Delete key from the index, absent key is a no-op.
	Delete(key []byte) error

	// Destroy release all resources held by the index.
	Destroy() error
}
