package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueRepository is the flat, namespace-free key-value backend. Callers
// are responsible for prefixing keys to avoid collisions.
type KeyValueRepository interface {
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error
	// Get returns the value stored under key or [ErrRecordNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Delete removes key. A missing key is not an error.
	Delete(ctx context.Context, key string) error
	// ListKeys returns all keys in ascending order.
	ListKeys(ctx context.Context) ([]string, error)
	// ListKeysWithPrefix returns the keys starting with prefix in ascending
	// order. The comparison is case-sensitive.
	ListKeysWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// DocumentFileStorage is the directory-scoped raw byte store that keeps a
// redundant copy of every document's ciphertext.
type DocumentFileStorage interface {
	// Init creates the documents directory if it does not exist.
	Init(ctx context.Context) error
	// Write atomically replaces the file called name with data.
	Write(ctx context.Context, name string, data []byte) error
	// Read returns the content of name or [ErrRecordNotFound].
	Read(ctx context.Context, name string) ([]byte, error)
	// Delete removes name. A missing file is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all stored documents in ascending order.
	List(ctx context.Context) ([]string, error)
}
