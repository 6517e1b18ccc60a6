package storage

// Store is the key-value persistence boundary. Values are JSON-encoded on
// write and decoded on read; an unparseable stored value is reported as
// absent rather than an error, so callers always fall back to defaults.
// No component outside this package touches raw persistence.
type Store interface {
	// Get decodes the value under key into v. The bool reports presence;
	// a missing key or a corrupt value both yield (false, nil).
	Get(key string, v any) (bool, error)
	// Set encodes v and overwrites any existing value under key.
	Set(key string, v any) error
	// Remove deletes the value under key; removing a missing key is a no-op.
	Remove(key string) error
}
