// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// NewCipher returns the cipher registered under name.
func NewCipher(name string) (Cipher, error) {
	switch name {
	case "", "ctr":
		return NewCTRCipher(), nil
	case "gcm":
		return NewGCMCipher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
}

// ctrCipher is AES-256 in CTR mode with a random IV prefix:
// blob = iv (16 bytes) ‖ ciphertext.
type ctrCipher struct{}

// NewCTRCipher returns an unauthenticated AES-256-CTR [Cipher]. Decrypting
// with a wrong key returns garbage of the same length instead of an error.
func NewCTRCipher() Cipher {
	return ctrCipher{}
}

func (ctrCipher) Name() string { return "ctr" }

func (ctrCipher) Encrypt(key, plaintext []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, aes.BlockSize+len(plaintext))
	iv := blob[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	cipher.NewCTR(block, iv).XORKeyStream(blob[aes.BlockSize:], plaintext)

	return blob, nil
}

func (ctrCipher) Decrypt(key, blob []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if len(blob) < aes.BlockSize {
		return nil, ErrMalformedCiphertext
	}

	iv, ciphertext := blob[:aes.BlockSize], blob[aes.BlockSize:]
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)

	return plaintext, nil
}

// gcmCipher is AES-256-GCM with a random nonce prefix:
// blob = nonce (12 bytes) ‖ ciphertext ‖ tag.
type gcmCipher struct{}

// NewGCMCipher returns an authenticated AES-256-GCM [Cipher]. Decrypting
// with a wrong key fails with [ErrAuthentication].
func NewGCMCipher() Cipher {
	return gcmCipher{}
}

func (gcmCipher) Name() string { return "gcm" }

func (gcmCipher) Encrypt(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Decrypt can split it out.
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (gcmCipher) Decrypt(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, ErrMalformedCiphertext
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return plaintext, nil
}

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != keyLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return block, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
