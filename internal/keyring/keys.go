package keyring

import (
	"crypto/ecdsa"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// SecretSize is the length of a raw secp256k1 private key
const SecretSize = 32

// GenerateValidSecret draws 32 byte candidates from r until one lies in [1, N-1]
// of secp256k1. Invalid draws are discarded and redrawn.
func GenerateValidSecret(r io.Reader) ([]byte, error) {
	for {
		secret := make([]byte, SecretSize)
		if _, err := io.ReadFull(r, secret); err != nil {
			return nil, errors.Wrap(err, "failed to read random bytes")
		}
		if IsValidSecret(secret) {
			return secret, nil
		}
		clear(secret)
	}
}

// IsValidSecret reports whether secret is a usable secp256k1 private key
func IsValidSecret(secret []byte) bool {
	if len(secret) != SecretSize {
		return false
	}
	k := new(big.Int).SetBytes(secret)
	return k.Sign() > 0 && k.Cmp(btcec.S256().N) < 0
}

// DeriveAppKey derives the origin-scoped secret keccak256(secret || origin).
// The same pair always yields the same key.
func DeriveAppKey(secret []byte, origin string) ([]byte, error) {
	if origin == "" {
		return nil, ErrInvalidOrigin
	}
	buf := make([]byte, 0, len(secret)+len(origin))
	buf = append(buf, secret...)
	buf = append(buf, origin...)
	defer clear(buf)

	appKey := crypto.Keccak256(buf)
	if !IsValidSecret(appKey) {
		clear(appKey)
		return nil, errors.Wrap(ErrInvalidPrivateKey, "derived app key")
	}
	return appKey, nil
}

func toPrivateKey(secret []byte) (*ecdsa.PrivateKey, error) {
	if !IsValidSecret(secret) {
		return nil, ErrInvalidPrivateKey
	}
	key, err := crypto.ToECDSA(secret)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}
	return key, nil
}

// deriveAppPrivateKey applies DeriveAppKey to a stored key
func deriveAppPrivateKey(key *ecdsa.PrivateKey, origin string) (*ecdsa.PrivateKey, error) {
	secret := crypto.FromECDSA(key)
	defer clear(secret)

	appSecret, err := DeriveAppKey(secret, origin)
	if err != nil {
		return nil, err
	}
	defer clear(appSecret)

	return toPrivateKey(appSecret)
}
