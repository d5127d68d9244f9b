package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/nacl/box"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, 32)

	pub, err := EncryptionPublicKey(secret)
	require.NoError(t, err)

	envelope, err := Encrypt(pub, "hello keyring", EncryptionVersion)
	require.NoError(t, err)
	assert.Equal(t, EncryptionVersion, envelope.Version)

	plaintext, err := Decrypt(*envelope, secret)
	require.NoError(t, err)
	assert.Equal(t, "hello keyring", plaintext)
}

func TestEncryptionPublicKeyMatchesNaClBox(t *testing.T) {
	// A box keypair's public key must be reproducible from its secret key
	pub, priv, err := box.GenerateKey(bytes.NewReader(bytes.Repeat([]byte{7}, 32)))
	require.NoError(t, err)

	got, err := EncryptionPublicKey(priv[:])
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(pub[:]), got)
}

func TestDecryptWrongKey(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	other := bytes.Repeat([]byte{0x02}, 32)

	pub, err := EncryptionPublicKey(secret)
	require.NoError(t, err)
	envelope, err := Encrypt(pub, "secret", EncryptionVersion)
	require.NoError(t, err)

	_, err = Decrypt(*envelope, other)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestUnsupportedVersion(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	pub, err := EncryptionPublicKey(secret)
	require.NoError(t, err)

	_, err = Encrypt(pub, "x", "x25519-aes")
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	envelope, err := Encrypt(pub, "x", EncryptionVersion)
	require.NoError(t, err)
	envelope.Version = "x25519-aes"
	_, err = Decrypt(*envelope, secret)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecryptMalformedEnvelope(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	pub, err := EncryptionPublicKey(secret)
	require.NoError(t, err)
	envelope, err := Encrypt(pub, "x", EncryptionVersion)
	require.NoError(t, err)

	badNonce := *envelope
	badNonce.Nonce = base64.StdEncoding.EncodeToString([]byte("short"))
	_, err = Decrypt(badNonce, secret)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	badCipher := *envelope
	badCipher.Ciphertext = "%%%"
	_, err = Decrypt(badCipher, secret)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptionPublicKeyInvalidLength(t *testing.T) {
	_, err := EncryptionPublicKey([]byte{1, 2, 3})
	assert.Error(t, err)
}
