package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService derives every secret the vault needs from the master
// password. It knows nothing about storage; its only job is to turn a
// password into a verifier and a session key.
//
// Scheme:
//
//	Verifier   = Argon2id(password, randomSalt)        stored once
//	SessionKey = Argon2id(password, keySalt)           memory only
type KeyChainService interface {
	// HashPassword returns a self-describing verifier string for password
	// with a freshly generated random salt. Two calls with the same
	// password yield different verifiers.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches the verifier produced
	// by HashPassword. Legacy 64-character hex SHA-256 verifiers are also
	// accepted. A malformed verifier yields ErrMalformedVerifier.
	VerifyPassword(password, verifier string) (bool, error)

	// DeriveSessionKey derives the 32-byte symmetric session key from
	// password. The derivation is deterministic for a given key salt.
	DeriveSessionKey(password string) []byte
}

// Cipher encrypts and decrypts vault payloads with a session key.
type Cipher interface {
	// Name returns the configuration name of the cipher ("ctr", "gcm").
	Name() string

	// Encrypt returns a self-contained ciphertext blob for plaintext.
	Encrypt(key, plaintext []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Whether a wrong key is detected depends on
	// the implementation; see [NewCTRCipher] and [NewGCMCipher].
	Decrypt(key, ciphertext []byte) ([]byte, error)
}
