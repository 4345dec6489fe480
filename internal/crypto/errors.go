package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not 32 bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrMalformedCiphertext is returned when a blob is too short to hold
	// the IV or nonce prefix.
	ErrMalformedCiphertext = errors.New("ciphertext too short")

	// ErrAuthentication is returned by the GCM cipher when the tag does not
	// verify, which almost always means a wrong key.
	ErrAuthentication = errors.New("ciphertext authentication failed")

	// ErrMalformedVerifier is returned when a stored password verifier
	// cannot be parsed.
	ErrMalformedVerifier = errors.New("malformed password verifier")

	// ErrUnknownCipher is returned by [NewCipher] for unsupported names.
	ErrUnknownCipher = errors.New("unknown cipher")
)
