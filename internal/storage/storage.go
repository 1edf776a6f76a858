package storage

// Storage is a small keyed blob store used for conversation snapshots.
// Get returns ErrNotFound-free semantics: a missing key is reported via
// the error, and callers are expected to treat any failure as "no data".
// Implementations must be safe for concurrent use.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Clear(key string) error
}
