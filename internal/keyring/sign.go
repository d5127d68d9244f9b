package keyring

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/AlexZinkM/local-keyring/internal/common"
	localcrypto "github.com/AlexZinkM/local-keyring/internal/crypto"
	"github.com/AlexZinkM/local-keyring/internal/model"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// SignTransaction signs tx with the resolved key and returns the signed copy; tx is not modified.
// When chainID is nil a typed transaction is signed for its own chain id and a legacy
// transaction is signed without replay protection.
func (k *Keyring) SignTransaction(address string, tx *types.Transaction, chainID *big.Int, opts Options) (*types.Transaction, error) {
	if tx == nil {
		return nil, errors.New("transaction is nil")
	}
	if chainID == nil && tx.Type() != types.LegacyTxType {
		chainID = tx.ChainId()
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	key, _, err := k.resolve(address, opts.WithAppKeyOrigin)
	if err != nil {
		return nil, err
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}
	return signed, nil
}

// SignMessage signs a raw 32 byte digest (eth_sign). data is hex, 0x prefix optional.
func (k *Keyring) SignMessage(address string, data string, opts Options) (string, error) {
	digest, err := hexutil.Decode(common.Add0x(data))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidMessage, "data is not hex: %v", err)
	}
	if len(digest) != 32 {
		return "", errors.Wrapf(ErrInvalidMessage, "data must be 32 bytes, got %d", len(digest))
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	key, _, err := k.resolve(address, opts.WithAppKeyOrigin)
	if err != nil {
		return "", err
	}
	return signDigest(digest, key)
}

// SignPersonalMessage signs data with the "\x19Ethereum Signed Message:\n" prefix.
// 0x-prefixed hex is decoded, anything else is signed as its UTF-8 bytes.
func (k *Keyring) SignPersonalMessage(address string, data string, opts Options) (string, error) {
	message := personalMessageBytes(data)

	k.mu.RLock()
	defer k.mu.RUnlock()

	key, _, err := k.resolve(address, opts.WithAppKeyOrigin)
	if err != nil {
		return "", err
	}
	return signDigest(accounts.TextHash(message), key)
}

func personalMessageBytes(data string) []byte {
	if common.Has0x(data) {
		if decoded, err := hexutil.Decode(common.Add0x(data)); err == nil {
			return decoded
		}
	}
	return []byte(data)
}

// SignTypedData signs typed data under the version named by opts.Version.
// An empty or unrecognized version falls back to V1 without failing, for compatibility
// with callers that never sent one. This can hide a caller bug, so the fallback is logged.
func (k *Keyring) SignTypedData(address string, data []byte, opts Options) (string, error) {
	version, ok := ParseTypedDataVersion(opts.Version)
	if !ok && opts.Version != "" {
		k.logger.Warn().Str("version", opts.Version).Msg("Unrecognized typed data version, falling back to V1")
	}

	digest, err := TypedDataHash(data, version)
	if err != nil {
		return "", err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	key, _, err := k.resolve(address, opts.WithAppKeyOrigin)
	if err != nil {
		return "", err
	}
	return signDigest(digest, key)
}

// GetEncryptionPublicKey returns the base64 EIP-1024 public key of the resolved key
func (k *Keyring) GetEncryptionPublicKey(address string, opts Options) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	key, _, err := k.resolve(address, opts.WithAppKeyOrigin)
	if err != nil {
		return "", err
	}
	secret := crypto.FromECDSA(key)
	defer clear(secret)

	return localcrypto.EncryptionPublicKey(secret)
}

// DecryptMessage opens an EIP-1024 envelope. It always uses the stored key for address,
// never an app key: there is no origin at decrypt time.
func (k *Keyring) DecryptMessage(address string, data model.EncryptedData) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	w, err := k.find(address)
	if err != nil {
		return "", err
	}
	secret := crypto.FromECDSA(w.privateKey)
	defer clear(secret)

	return localcrypto.Decrypt(data, secret)
}

// signDigest returns 0x || r || s || v with v in {27, 28}
func signDigest(digest []byte, key *ecdsa.PrivateKey) (string, error) {
	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign")
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}
