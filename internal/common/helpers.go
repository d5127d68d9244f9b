package common

import (
	"fmt"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Add0x prefixes s with 0x unless it already carries 0x or 0X
func Add0x(s string) string {
	if Has0x(s) {
		return "0x" + s[2:]
	}
	return "0x" + s
}

// Strip0x removes a leading 0x or 0X
func Strip0x(s string) string {
	if Has0x(s) {
		return s[2:]
	}
	return s
}

// Has0x reports whether s starts with 0x or 0X
func Has0x(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// NormalizeAddress converts an address to its comparison form: lowercase, 0x-prefixed.
// Example: NormalizeAddress("252F4A2EDF7917C4FB04CF9402FB5724A8B5085F") = "0x252f4a2edf7917c4fb04cf9402fb5724a8b5085f"
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !ethcommon.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address '%s'", address)
	}
	return strings.ToLower(Add0x(address)), nil
}

// AddressHex formats an address the way the keyring reports it (lowercase, 0x-prefixed)
func AddressHex(address ethcommon.Address) string {
	return strings.ToLower(address.Hex())
}
