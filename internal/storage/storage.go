// Package storage provides the key-value persistence adapter backing swipe
// history and applications. Implementations never surface errors to callers:
// reads that fail leave the destination at its default, writes are
// best-effort. A lost record is recoverable by redoing the action, so a
// storage fault must not break the interaction loop.
package storage

// Store is a string-keyed store of JSON-serializable values.
type Store interface {
	// Get unmarshals the value at key into dest and reports whether a
	// valid entry was found. On a miss, corrupt data or backend failure
	// dest is left untouched, so callers pre-fill it with the default.
	Get(key string, dest any) bool

	// Set stores value under key, replacing any previous value.
	Set(key string, value any)

	// Remove deletes the entry at key, if any.
	Remove(key string)
}
