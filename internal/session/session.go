// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the symmetric key of the single active vault
// session. The key lives in process memory only and is never persisted.
package session

import (
	"sync"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
)

// Manager derives, holds and discards the session key.
//
// Activation and clearing are serialized against every read: a caller of
// Current observes either no key or one complete key.
type Manager struct {
	keyChain crypto.KeyChainService

	mu  sync.RWMutex
	key []byte
}

// NewManager returns a Manager with no active session.
func NewManager(keyChain crypto.KeyChainService) *Manager {
	return &Manager{keyChain: keyChain}
}

// Activate derives the session key from a password that the credential
// store has already verified and makes it current. A previously active key
// is wiped first.
func (m *Manager) Activate(verifiedPassword string) {
	key := m.keyChain.DeriveSessionKey(verifiedPassword)

	m.mu.Lock()
	defer m.mu.Unlock()

	wipe(m.key)
	m.key = key
}

// Current returns a copy of the active key, or false when no session is
// active.
func (m *Manager) Current() ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.key == nil {
		return nil, false
	}
	return append([]byte(nil), m.key...), true
}

// Active reports whether a session key is held.
func (m *Manager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.key != nil
}

// Clear wipes and discards the session key (logout).
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	wipe(m.key)
	m.key = nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
