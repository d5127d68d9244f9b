package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/AlexZinkM/local-keyring/internal/model"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// EncryptionVersion is the only EIP-1024 scheme supported
const EncryptionVersion = "x25519-xsalsa20-poly1305"

var (
	ErrUnsupportedVersion = errors.New("encryption type/version not supported")
	ErrDecryptionFailed   = errors.New("decryption failed")
)

// EncryptionPublicKey returns the base64 X25519 public key for a 32 byte secret.
// The secret is used as a NaCl box secret key as is.
func EncryptionPublicKey(secret []byte) (string, error) {
	if len(secret) != curve25519.ScalarSize {
		return "", fmt.Errorf("invalid secret length %d", len(secret))
	}
	pub, err := curve25519.X25519(secret, curve25519.Basepoint)
	if err != nil {
		return "", fmt.Errorf("failed to derive encryption public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(pub), nil
}

// Encrypt seals message for the holder of publicKey (base64) using a fresh ephemeral keypair
func Encrypt(publicKey string, message string, version string) (*model.EncryptedData, error) {
	if version != EncryptionVersion {
		return nil, ErrUnsupportedVersion
	}

	var peer [32]byte
	if err := decodeFixed(publicKey, peer[:], "public key"); err != nil {
		return nil, err
	}

	ephemPub, ephemPriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ephemeral key: %w", err)
	}
	defer clear(ephemPriv[:])

	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := box.Seal(nil, []byte(message), &nonce, &peer, ephemPriv)

	return &model.EncryptedData{
		Version:        EncryptionVersion,
		Nonce:          base64.StdEncoding.EncodeToString(nonce[:]),
		EphemPublicKey: base64.StdEncoding.EncodeToString(ephemPub[:]),
		Ciphertext:     base64.StdEncoding.EncodeToString(sealed),
	}, nil
}

// Decrypt opens an envelope produced by Encrypt with the receiver's 32 byte secret
func Decrypt(data model.EncryptedData, secret []byte) (string, error) {
	if data.Version != EncryptionVersion {
		return "", ErrUnsupportedVersion
	}
	if len(secret) != 32 {
		return "", fmt.Errorf("invalid secret length %d", len(secret))
	}

	var nonce [24]byte
	if err := decodeFixed(data.Nonce, nonce[:], "nonce"); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	var ephemPub [32]byte
	if err := decodeFixed(data.EphemPublicKey, ephemPub[:], "ephemeral public key"); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(data.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode ciphertext: %w", ErrDecryptionFailed, err)
	}

	var priv [32]byte
	copy(priv[:], secret)
	defer clear(priv[:])

	plaintext, ok := box.Open(nil, ciphertext, &nonce, &ephemPub, &priv)
	if !ok || !utf8.Valid(plaintext) {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}

func decodeFixed(s string, dst []byte, what string) error {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", what, err)
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("invalid %s length %d", what, len(raw))
	}
	copy(dst, raw)
	return nil
}
