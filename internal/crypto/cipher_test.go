package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKey  = bytes.Repeat([]byte{0x2A}, 32)
	otherKey = bytes.Repeat([]byte{0x17}, 32)
)

func TestNewCipher(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr error
	}{
		{name: "", want: "ctr"},
		{name: "ctr", want: "ctr"},
		{name: "gcm", want: "gcm"},
		{name: "des", wantErr: ErrUnknownCipher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCipher(tt.name)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}
}

func TestCiphers_RoundTrip(t *testing.T) {
	plaintexts := [][]byte{
		[]byte("data:image/png;base64,iVBORw0KGgo="),
		{},
		bytes.Repeat([]byte{0x00, 0xFF}, 4096),
	}

	for _, c := range []Cipher{NewCTRCipher(), NewGCMCipher()} {
		for _, pt := range plaintexts {
			blob, err := c.Encrypt(testKey, pt)
			require.NoError(t, err, c.Name())

			got, err := c.Decrypt(testKey, blob)
			require.NoError(t, err, c.Name())
			assert.Equal(t, len(pt), len(got), c.Name())
			assert.True(t, bytes.Equal(pt, got), c.Name())
		}
	}
}

func TestCiphers_RandomPrefix(t *testing.T) {
	for _, c := range []Cipher{NewCTRCipher(), NewGCMCipher()} {
		b1, err := c.Encrypt(testKey, []byte("same"))
		require.NoError(t, err)
		b2, err := c.Encrypt(testKey, []byte("same"))
		require.NoError(t, err)

		assert.NotEqual(t, b1, b2, "%s: expected different blobs for two encryptions", c.Name())
	}
}

func TestCTRCipher_WrongKeyYieldsGarbage(t *testing.T) {
	c := NewCTRCipher()
	pt := []byte("buy milk")

	blob, err := c.Encrypt(testKey, pt)
	require.NoError(t, err)

	got, err := c.Decrypt(otherKey, blob)
	require.NoError(t, err)
	assert.Len(t, got, len(pt))
	assert.NotEqual(t, pt, got)
}

func TestGCMCipher_WrongKeyFails(t *testing.T) {
	c := NewGCMCipher()

	blob, err := c.Encrypt(testKey, []byte("buy milk"))
	require.NoError(t, err)

	_, err = c.Decrypt(otherKey, blob)
	assert.True(t, errors.Is(err, ErrAuthentication), "got %v", err)
}

func TestCiphers_MalformedCiphertext(t *testing.T) {
	for _, c := range []Cipher{NewCTRCipher(), NewGCMCipher()} {
		_, err := c.Decrypt(testKey, []byte{0x01, 0x02})
		assert.ErrorIs(t, err, ErrMalformedCiphertext, c.Name())
	}
}

func TestCiphers_InvalidKeyLength(t *testing.T) {
	for _, c := range []Cipher{NewCTRCipher(), NewGCMCipher()} {
		_, err := c.Encrypt([]byte("short"), []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidKeyLength, c.Name())

		_, err = c.Decrypt(make([]byte, 16), make([]byte, 64))
		assert.ErrorIs(t, err, ErrInvalidKeyLength, c.Name())
	}
}
