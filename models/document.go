// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultMediaType is reported for documents recovered from the file backend,
// which keeps no media type next to the ciphertext.
const DefaultMediaType = "application/octet-stream"

// Document is a named, decrypted vault document.
type Document struct {
	// Name uniquely identifies the document among all documents.
	Name string `json:"name"`

	// MediaType describes the payload, e.g. "image/png".
	MediaType string `json:"media_type"`

	// Payload is the plaintext content. In practice it is usually a
	// self-describing string such as a data URL.
	Payload []byte `json:"payload"`
}

// DocumentEnvelope is the structured record stored in the key-value backend
// for every document.
type DocumentEnvelope struct {
	// Ciphertext is the base64 (standard encoding) of the encrypted payload.
	Ciphertext string `json:"ciphertext"`

	// MediaType is kept in clear text next to the ciphertext.
	MediaType string `json:"mediaType"`
}

// DocumentEntry describes where replicas of a document currently live.
type DocumentEntry struct {
	Name         string `json:"name"`
	InKeyValue   bool   `json:"in_key_value"`
	InFileSystem bool   `json:"in_file_system"`
}

// Diverged reports whether only one of the backends holds the document.
func (e DocumentEntry) Diverged() bool {
	return e.InKeyValue != e.InFileSystem
}
