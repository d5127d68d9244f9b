package common

import (
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestAdd0xStrip0x(t *testing.T) {
	assert.Equal(t, "0xabcd", Add0x("abcd"))
	assert.Equal(t, "0xabcd", Add0x("0xabcd"))
	assert.Equal(t, "0xabcd", Add0x("0Xabcd"))
	assert.Equal(t, "abcd", Strip0x("0xabcd"))
	assert.Equal(t, "abcd", Strip0x("0Xabcd"))
	assert.Equal(t, "abcd", Strip0x("abcd"))
	assert.Equal(t, "", Strip0x("0x"))
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Checksum",
			input:    "0x252f4a2eDf7917c4fb04cf9402Fb5724A8B5085f",
			expected: "0x252f4a2edf7917c4fb04cf9402fb5724a8b5085f",
		},
		{
			name:     "Upper without prefix",
			input:    "252F4A2EDF7917C4FB04CF9402FB5724A8B5085F",
			expected: "0x252f4a2edf7917c4fb04cf9402fb5724a8b5085f",
		},
		{
			name:     "Surrounding spaces",
			input:    "  0x252f4a2edf7917c4fb04cf9402fb5724a8b5085f ",
			expected: "0x252f4a2edf7917c4fb04cf9402fb5724a8b5085f",
		},
		{
			name:    "Too short",
			input:   "0x1234",
			wantErr: true,
		},
		{
			name:    "Not hex",
			input:   "0xzz2f4a2edf7917c4fb04cf9402fb5724a8b5085f",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAddress(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestAddressHex(t *testing.T) {
	addr := ethcommon.HexToAddress("0x252f4a2eDf7917c4fb04cf9402Fb5724A8B5085f")
	assert.Equal(t, "0x252f4a2edf7917c4fb04cf9402fb5724a8b5085f", AddressHex(addr))
}
