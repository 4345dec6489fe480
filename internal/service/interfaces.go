package service

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

// CredentialService guards the single master password of the vault.
type CredentialService interface {
	// BootstrapOrVerify stores a verifier for password if the vault has
	// none yet and reports true. Otherwise it reports whether password
	// matches the stored verifier. A mismatch is not an error; storage
	// failures are returned wrapping ErrIOFailure.
	BootstrapOrVerify(ctx context.Context, password string) (bool, error)
}

// VaultService stores documents and notes encrypted with the active session
// key. Every method fails with ErrNoActiveSession before touching a backend
// when no session is active.
type VaultService interface {
	// SaveDocument encrypts payload and writes it to both backends. A
	// failure on either backend is returned as *PersistError.
	SaveDocument(ctx context.Context, name string, payload []byte, mediaType string) error
	// GetDocument returns the decrypted document, reading the key-value
	// backend first and the file backend as a fallback.
	GetDocument(ctx context.Context, name string) (models.Document, error)
	// ListDocuments returns the sorted union of document names in both
	// backends.
	ListDocuments(ctx context.Context) ([]string, error)
	// ListDocumentEntries reports which backends hold each document.
	ListDocumentEntries(ctx context.Context) ([]models.DocumentEntry, error)
	// DeleteDocument removes name from both backends. Idempotent.
	DeleteDocument(ctx context.Context, name string) error

	SaveNote(ctx context.Context, title, content string) error
	GetNote(ctx context.Context, title string) (string, error)
	ListNotes(ctx context.Context) ([]string, error)
	DeleteNote(ctx context.Context, title string) error
}

// KeySource hands out the current session key. The returned slice belongs
// to the caller.
type KeySource interface {
	Current() ([]byte, bool)
}
