// Package keyring holds raw secp256k1 keys in memory and signs on their behalf.
//
// Each stored key can also act through origin-scoped app keys, derived on demand as
// keccak256(secret || origin). App keys are never stored; they exist for the duration
// of a single call. Raw secrets leave the keyring only through ExportAccount and Serialize.
package keyring

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"
	"sync"

	"github.com/AlexZinkM/local-keyring/internal/common"
	"github.com/AlexZinkM/local-keyring/internal/model"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Type is the keyring type reported to callers and stored in the keystore
const Type = "Smart Contract Account"

// Options is the per-call options object
type Options struct {
	// WithAppKeyOrigin selects the app key derived for this origin instead of the stored key
	WithAppKeyOrigin string `json:"withAppKeyOrigin,omitempty"`
	// Version selects the typed data scheme, see SignTypedData
	Version string `json:"version,omitempty"`
}

type wallet struct {
	privateKey *ecdsa.PrivateKey
	address    ethcommon.Address
}

// Keyring is an in-memory, origin-scoped keyring.
// Signing calls may run concurrently; mutations are serialized against everything else.
type Keyring struct {
	mu      sync.RWMutex
	wallets []wallet
	random  io.Reader
	logger  zerolog.Logger
}

// Option configures a Keyring
type Option func(*Keyring)

// WithRandom sets the secure random source used for key generation
func WithRandom(r io.Reader) Option {
	return func(k *Keyring) {
		k.random = r
	}
}

// WithLogger sets the logger. Secrets are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(k *Keyring) {
		k.logger = logger
	}
}

// New creates an empty keyring. It performs no I/O; load persisted state with Initialize.
func New(opts ...Option) *Keyring {
	k := &Keyring{
		random: rand.Reader,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Type returns the keyring type
func (k *Keyring) Type() string {
	return Type
}

// Initialize loads persisted state. It must be called before the keyring serves
// requests when state exists; any failure is returned and the keyring stays empty.
func (k *Keyring) Initialize(state []model.SerializedAccount) error {
	if err := k.Deserialize(state); err != nil {
		return err
	}
	k.logger.Info().Int("accounts", len(state)).Msg("Keyring initialized")
	return nil
}

// Serialize returns the wallet collection as (secret hex, address) pairs
func (k *Keyring) Serialize() []model.SerializedAccount {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]model.SerializedAccount, 0, len(k.wallets))
	for _, w := range k.wallets {
		secret := crypto.FromECDSA(w.privateKey)
		out = append(out, model.SerializedAccount{
			PrivateKey: hex.EncodeToString(secret),
			Address:    common.AddressHex(w.address),
		})
		clear(secret)
	}
	return out
}

// Deserialize replaces the wallet collection. Either every entry loads or the
// collection is left untouched.
func (k *Keyring) Deserialize(state []model.SerializedAccount) error {
	wallets := make([]wallet, 0, len(state))
	seen := make(map[ethcommon.Address]struct{}, len(state))

	for i, entry := range state {
		w, err := parseSerialized(entry)
		if err != nil {
			return &DeserializeError{Index: i, Err: err}
		}
		if _, dup := seen[w.address]; dup {
			return &DeserializeError{Index: i, Err: errors.Errorf("duplicate address %s", common.AddressHex(w.address))}
		}
		seen[w.address] = struct{}{}
		wallets = append(wallets, w)
	}

	k.mu.Lock()
	k.wallets = wallets
	k.mu.Unlock()
	return nil
}

func parseSerialized(entry model.SerializedAccount) (wallet, error) {
	raw, err := hex.DecodeString(common.Strip0x(strings.TrimSpace(entry.PrivateKey)))
	if err != nil {
		return wallet{}, errors.Wrap(err, "private key is not hex")
	}
	defer clear(raw)

	if len(raw) != SecretSize {
		return wallet{}, errors.Errorf("private key must be %d bytes, got %d", SecretSize, len(raw))
	}

	key, err := toPrivateKey(raw)
	if err != nil {
		return wallet{}, err
	}
	address := crypto.PubkeyToAddress(key.PublicKey)

	if entry.Address != "" {
		want, err := common.NormalizeAddress(entry.Address)
		if err != nil {
			return wallet{}, err
		}
		if want != common.AddressHex(address) {
			return wallet{}, errors.Errorf("address %s does not match private key", entry.Address)
		}
	}

	return wallet{privateKey: key, address: address}, nil
}

// AddAccounts generates n new keys and returns their addresses
func (k *Keyring) AddAccounts(n int) ([]string, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}

	newWallets := make([]wallet, 0, n)
	for i := 0; i < n; i++ {
		secret, err := GenerateValidSecret(k.random)
		if err != nil {
			return nil, err
		}
		key, err := toPrivateKey(secret)
		clear(secret)
		if err != nil {
			return nil, err
		}
		newWallets = append(newWallets, wallet{
			privateKey: key,
			address:    crypto.PubkeyToAddress(key.PublicKey),
		})
	}

	k.mu.Lock()
	k.wallets = append(k.wallets, newWallets...)
	k.mu.Unlock()

	addresses := make([]string, 0, n)
	for _, w := range newWallets {
		addresses = append(addresses, common.AddressHex(w.address))
	}
	k.logger.Debug().Strs("addresses", addresses).Msg("Accounts added")
	return addresses, nil
}

// GetAccounts returns all addresses in insertion order
func (k *Keyring) GetAccounts() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()

	addresses := make([]string, 0, len(k.wallets))
	for _, w := range k.wallets {
		addresses = append(addresses, common.AddressHex(w.address))
	}
	return addresses
}

// RemoveAccount removes the entry whose address equals address (case-insensitive)
func (k *Keyring) RemoveAccount(address string) error {
	target, err := parseAddress(address)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	for i, w := range k.wallets {
		if w.address == target {
			k.wallets = append(k.wallets[:i:i], k.wallets[i+1:]...)
			k.logger.Debug().Str("address", common.AddressHex(target)).Msg("Account removed")
			return nil
		}
	}
	return errors.Wrap(ErrAddressNotFound, common.AddressHex(target))
}

// ExportAccount returns the hex encoded secret of the resolved key
func (k *Keyring) ExportAccount(address string, opts Options) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	key, _, err := k.resolve(address, opts.WithAppKeyOrigin)
	if err != nil {
		return "", err
	}
	secret := crypto.FromECDSA(key)
	defer clear(secret)
	return hex.EncodeToString(secret), nil
}

// GetAppKeyAddress returns the address of the app key for origin without signing anything
func (k *Keyring) GetAppKeyAddress(address string, origin string) (string, error) {
	if origin == "" {
		return "", ErrInvalidOrigin
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	_, appAddress, err := k.resolve(address, origin)
	if err != nil {
		return "", err
	}
	return common.AddressHex(appAddress), nil
}

// resolve finds the key for address and, when origin is set, swaps it for the app key.
// Callers must hold k.mu.
func (k *Keyring) resolve(address string, origin string) (*ecdsa.PrivateKey, ethcommon.Address, error) {
	w, err := k.find(address)
	if err != nil {
		return nil, ethcommon.Address{}, err
	}
	if origin == "" {
		return w.privateKey, w.address, nil
	}

	appKey, err := deriveAppPrivateKey(w.privateKey, origin)
	if err != nil {
		return nil, ethcommon.Address{}, err
	}
	return appKey, crypto.PubkeyToAddress(appKey.PublicKey), nil
}

// find returns the stored wallet for address. Callers must hold k.mu.
func (k *Keyring) find(address string) (wallet, error) {
	target, err := parseAddress(address)
	if err != nil {
		return wallet{}, err
	}
	for _, w := range k.wallets {
		if w.address == target {
			return w, nil
		}
	}
	return wallet{}, errors.Wrap(ErrAddressNotFound, common.AddressHex(target))
}

func parseAddress(address string) (ethcommon.Address, error) {
	if strings.TrimSpace(address) == "" {
		return ethcommon.Address{}, ErrAddressRequired
	}
	normalized, err := common.NormalizeAddress(address)
	if err != nil {
		// An address that cannot be parsed cannot match any entry
		return ethcommon.Address{}, errors.Wrap(ErrAddressNotFound, err.Error())
	}
	return ethcommon.HexToAddress(normalized), nil
}
