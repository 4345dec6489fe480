// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the vault runtime.
//
// It wires configuration, storage backends, key derivation, the session
// key manager and the vault services into a single [App] whose lifecycle
// is Start, Unlock, Lock and Close.
package client
