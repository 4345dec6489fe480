// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/internal/service"
)

// Client is the lifecycle contract the command line drives.
type Client interface {
	// Start triggers storage initialization without waiting for it.
	Start(ctx context.Context)

	// Unlock verifies password, or sets it on first use, and activates the
	// session. A mismatch yields ErrWrongPassword.
	Unlock(ctx context.Context, password string) error

	// Lock discards the session key.
	Lock()

	// Unlocked reports whether a session is active.
	Unlocked() bool

	// Vault returns the document and note operations.
	Vault() service.VaultService

	// Close locks the vault and releases storage resources.
	Close() error
}

var _ Client = (*App)(nil)
