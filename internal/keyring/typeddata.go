package keyring

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/AlexZinkM/local-keyring/internal/common"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"
)

// TypedDataVersion selects the typed data hashing scheme
type TypedDataVersion string

const (
	// V1 is the legacy array-of-fields format
	V1 TypedDataVersion = "V1"
	// V3 is EIP-712 without arrays
	V3 TypedDataVersion = "V3"
	// V4 is EIP-712 with arrays and recursive structs
	V4 TypedDataVersion = "V4"
)

// ParseTypedDataVersion maps a version string to a TypedDataVersion.
// Names are matched exactly; anything else yields V1 and ok=false.
func ParseTypedDataVersion(version string) (TypedDataVersion, bool) {
	switch TypedDataVersion(version) {
	case V1, V3, V4:
		return TypedDataVersion(version), true
	default:
		return V1, false
	}
}

// TypedDataHash returns the 32 byte digest that is signed for data under version
func TypedDataHash(data []byte, version TypedDataVersion) ([]byte, error) {
	switch version {
	case V3, V4:
		return eip712Hash(data, version)
	default:
		return legacyTypedDataHash(data)
	}
}

func eip712Hash(data []byte, version TypedDataVersion) ([]byte, error) {
	var typedData apitypes.TypedData
	if err := json.Unmarshal(data, &typedData); err != nil {
		return nil, errors.Wrapf(ErrInvalidTypedData, "%s: %v", version, err)
	}

	if version == V3 {
		for typeName, fields := range typedData.Types {
			for _, field := range fields {
				if strings.HasSuffix(field.Type, "]") {
					return nil, errors.Wrapf(ErrInvalidTypedData, "arrays are not supported by V3 (%s.%s), use V4", typeName, field.Name)
				}
			}
		}
	}

	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTypedData, "%s: %v", version, err)
	}
	return hash, nil
}

// legacyField is one entry of V1 typed data
type legacyField struct {
	Type  string      `json:"type"`
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// legacyTypedDataHash computes
// keccak256(keccak256(pack("type name"...)) || keccak256(pack(values...)))
// with Solidity tight packing.
func legacyTypedDataHash(data []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var fields []legacyField
	if err := decoder.Decode(&fields); err != nil {
		return nil, errors.Wrapf(ErrInvalidTypedData, "V1: %v", err)
	}
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrInvalidTypedData, "V1: expect argument to be non-empty array")
	}

	var schema, values []byte
	for i, field := range fields {
		if field.Name == "" {
			return nil, errors.Wrapf(ErrInvalidTypedData, "V1: field %d has no name", i)
		}
		schema = append(schema, field.Type+" "+field.Name...)

		packed, err := packLegacyValue(field.Type, field.Value)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidTypedData, "V1: field %q: %v", field.Name, err)
		}
		values = append(values, packed...)
	}

	return crypto.Keccak256(crypto.Keccak256(schema), crypto.Keccak256(values)), nil
}

// packLegacyValue encodes a single value the way Solidity's abi.encodePacked does
func packLegacyValue(typ string, value interface{}) ([]byte, error) {
	switch {
	case typ == "string":
		s, ok := value.(string)
		if !ok {
			return nil, errors.Errorf("expected string, got %T", value)
		}
		return []byte(s), nil

	case typ == "bytes":
		// 0x-prefixed strings are hex, anything else is UTF-8 text
		if str, ok := value.(string); ok && !common.Has0x(str) {
			return []byte(str), nil
		}
		return decodeHexValue(value)

	case typ == "bool":
		b, ok := value.(bool)
		if !ok {
			return nil, errors.Errorf("expected bool, got %T", value)
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case typ == "address":
		s, ok := value.(string)
		if !ok || !ethcommon.IsHexAddress(s) {
			return nil, errors.Errorf("invalid address %v", value)
		}
		return ethcommon.HexToAddress(s).Bytes(), nil

	case strings.HasPrefix(typ, "uint"):
		size, err := integerSize(typ, "uint")
		if err != nil {
			return nil, err
		}
		n, err := parseLegacyInteger(value)
		if err != nil {
			return nil, err
		}
		if n.Sign() < 0 || n.BitLen() > size {
			return nil, errors.Errorf("%s overflows %s", n, typ)
		}
		return math.PaddedBigBytes(n, size/8), nil

	case strings.HasPrefix(typ, "int"):
		size, err := integerSize(typ, "int")
		if err != nil {
			return nil, err
		}
		n, err := parseLegacyInteger(value)
		if err != nil {
			return nil, err
		}
		limit := new(big.Int).Lsh(big.NewInt(1), uint(size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, errors.Errorf("%s overflows %s", n, typ)
		}
		word := math.U256Bytes(new(big.Int).Set(n))
		return word[32-size/8:], nil

	case strings.HasPrefix(typ, "bytes"):
		size, err := strconv.Atoi(strings.TrimPrefix(typ, "bytes"))
		if err != nil || size < 1 || size > 32 {
			return nil, errors.Errorf("unsupported type %s", typ)
		}
		raw, err := decodeHexValue(value)
		if err != nil {
			return nil, err
		}
		if len(raw) > size {
			return nil, errors.Errorf("%d bytes overflow %s", len(raw), typ)
		}
		return ethcommon.RightPadBytes(raw, size), nil
	}

	return nil, errors.Errorf("unsupported type %s", typ)
}

// integerSize parses the bit size of uintN/intN; a bare uint/int is 256 bits
func integerSize(typ, prefix string) (int, error) {
	suffix := strings.TrimPrefix(typ, prefix)
	if suffix == "" {
		return 256, nil
	}
	size, err := strconv.Atoi(suffix)
	if err != nil || size < 8 || size > 256 || size%8 != 0 {
		return 0, errors.Errorf("unsupported type %s", typ)
	}
	return size, nil
}

// parseLegacyInteger accepts JSON numbers, decimal strings and 0x hex strings
func parseLegacyInteger(value interface{}) (*big.Int, error) {
	var s string
	switch v := value.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return nil, errors.Errorf("expected integer, got %T", value)
	}

	n, ok := math.ParseBig256(s)
	if ok {
		return n, nil
	}
	// ParseBig256 does not take a sign
	if strings.HasPrefix(s, "-") {
		if n, ok := math.ParseBig256(s[1:]); ok {
			return n.Neg(n), nil
		}
	}
	return nil, errors.Errorf("invalid integer %q", s)
}

func decodeHexValue(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.Errorf("expected hex string, got %T", value)
	}
	raw, err := hexutil.Decode(common.Add0x(s))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return raw, nil
}
