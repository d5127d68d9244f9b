package keyring

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidSecret(t *testing.T) {
	order := math.PaddedBigBytes(btcec.S256().N, 32)
	belowOrder := math.PaddedBigBytes(new(big.Int).Sub(btcec.S256().N, big.NewInt(1)), 32)

	tests := []struct {
		name   string
		secret []byte
		valid  bool
	}{
		{name: "One", secret: math.PaddedBigBytes(big.NewInt(1), 32), valid: true},
		{name: "Repeated 0x01", secret: bytes.Repeat([]byte{1}, 32), valid: true},
		{name: "Order minus one", secret: belowOrder, valid: true},
		{name: "Zero", secret: make([]byte, 32), valid: false},
		{name: "Order", secret: order, valid: false},
		{name: "All ones", secret: bytes.Repeat([]byte{0xff}, 32), valid: false},
		{name: "Short", secret: []byte{1, 2, 3}, valid: false},
		{name: "Long", secret: bytes.Repeat([]byte{1}, 33), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidSecret(tt.secret))
		})
	}
}

func TestGenerateValidSecretRedrawsInvalidCandidates(t *testing.T) {
	var stream []byte
	stream = append(stream, make([]byte, 32)...)                          // zero
	stream = append(stream, math.PaddedBigBytes(btcec.S256().N, 32)...) // curve order
	stream = append(stream, bytes.Repeat([]byte{0xff}, 32)...)          // above order
	stream = append(stream, bytes.Repeat([]byte{0x01}, 32)...)          // valid

	secret, err := GenerateValidSecret(bytes.NewReader(stream))
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0x01}, 32), secret)
}

func TestGenerateValidSecretShortRead(t *testing.T) {
	_, err := GenerateValidSecret(bytes.NewReader(make([]byte, 40)))
	assert.Error(t, err)
}

func TestDeriveAppKey(t *testing.T) {
	base := bytes.Repeat([]byte{0x01}, 32)

	appKey, err := DeriveAppKey(base, "example.com")
	require.NoError(t, err)
	assert.Equal(t, testAppKeyExampleCom, hex.EncodeToString(appKey))

	again, err := DeriveAppKey(base, "example.com")
	require.NoError(t, err)
	assert.Equal(t, appKey, again, "derivation must be deterministic")

	other, err := DeriveAppKey(base, "other.org")
	require.NoError(t, err)
	assert.Equal(t, testAppKeyOtherOrg, hex.EncodeToString(other))
	assert.NotEqual(t, appKey, other)

	assert.Equal(t, bytes.Repeat([]byte{0x01}, 32), base, "base secret must not be modified")
}

func TestDeriveAppKeyEmptyOrigin(t *testing.T) {
	_, err := DeriveAppKey(bytes.Repeat([]byte{0x01}, 32), "")
	assert.ErrorIs(t, err, ErrInvalidOrigin)
}
