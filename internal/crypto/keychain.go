// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength = 16
	keyLength  = 32

	legacyVerifierLength = sha256.Size * 2
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop) and lowered
	// in tests.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	keySalt []byte
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// keySalt domain-separates the session key derivation.
func NewKeyChainService(keySalt string) KeyChainService {
	return NewKeyChainServiceWithParams(keySalt, 1, 64*1024, 4)
}

// NewKeyChainServiceWithParams constructs a [KeyChainService] with explicit
// Argon2id costs. memory is expressed in KiB.
func NewKeyChainServiceWithParams(keySalt string, time, memory uint32, threads uint8) KeyChainService {
	return &keyChainService{
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		argonKeyLen:  keyLength,
		keySalt:      []byte(keySalt),
	}
}

// HashPassword implements [KeyChainService]. The verifier is encoded as
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// with salt and hash in unpadded standard base64, so that the parameters
// used at bootstrap travel with the verifier.
func (k *keyChainService) HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		k.argonMemory,
		k.argonTime,
		k.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword implements [KeyChainService]. Comparison is constant-time.
func (k *keyChainService) VerifyPassword(password, verifier string) (bool, error) {
	if !strings.HasPrefix(verifier, "$") {
		return verifyLegacy(password, verifier)
	}

	parts := strings.Split(verifier, "$")
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedVerifier
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedVerifier
	}

	var (
		memory, time uint32
		threads      uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil ||
		time == 0 || threads == 0 {
		return false, ErrMalformedVerifier
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedVerifier
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, ErrMalformedVerifier
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// verifyLegacy checks hex-encoded SHA-256 verifiers written by earlier
// releases of the vault.
func verifyLegacy(password, verifier string) (bool, error) {
	if len(verifier) != legacyVerifierLength {
		return false, ErrMalformedVerifier
	}
	want, err := hex.DecodeString(strings.ToLower(verifier))
	if err != nil {
		return false, ErrMalformedVerifier
	}

	got := sha256.Sum256([]byte(password))

	return subtle.ConstantTimeCompare(got[:], want) == 1, nil
}

// DeriveSessionKey implements [KeyChainService]. It derives a 256-bit key
// from password and the configured key salt using Argon2id. The result
// exists only in memory and is never persisted.
func (k *keyChainService) DeriveSessionKey(password string) []byte {
	return argon2.IDKey(
		[]byte(password),
		k.keySalt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}
