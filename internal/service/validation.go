package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-vault/internal/store"
)

// validateDocumentName accepts names that are valid file names and do not
// collide with the credential entry or the note namespace.
func validateDocumentName(name string) error {
	if err := store.ValidateName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	if name == CredentialKey {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	if strings.HasPrefix(name, NotePrefix) {
		return fmt.Errorf("%w: %q uses the note prefix", ErrInvalidName, name)
	}
	return nil
}

func validateNoteTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: empty note title", ErrInvalidName)
	}
	return nil
}
