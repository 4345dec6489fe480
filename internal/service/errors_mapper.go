// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

// mapStoreError translates a backend error into a service error kind.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrInvalidName):
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	return fmt.Errorf("%w: %w", ErrIOFailure, err)
}

// mapCipherError translates a decryption error into a service error kind.
func mapCipherError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, crypto.ErrMalformedCiphertext), errors.Is(err, crypto.ErrAuthentication):
		return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	return err
}
