package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates no value is stored under the requested key.
var ErrNotFound = errors.New("not found")

// CredentialKey is the fixed key the operator credential is persisted under.
const CredentialKey = "admin_token"

// CredentialStore persists opaque operator credentials by key.
type CredentialStore interface {
	// GetCredential returns the stored value or ErrNotFound.
	GetCredential(ctx context.Context, key string) (string, error)
	// PutCredential stores or replaces the value for key.
	PutCredential(ctx context.Context, key, value string) error
	// DeleteCredential removes key; deleting an absent key is not an error.
	DeleteCredential(ctx context.Context, key string) error
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	CredentialStore
	Close() error
}
