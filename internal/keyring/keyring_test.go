package keyring

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/AlexZinkM/local-keyring/internal/model"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors for base secret 0x01 repeated 32 times, computed independently.
const (
	testSecret           = "0101010101010101010101010101010101010101010101010101010101010101"
	testAddress          = "0x1a642f0e3c3af545e7acbd38b07251b3990914f1"
	testAppKeyExampleCom = "f0a0808a4bbe6ea69e92ec96060ebf06cad0ca4b3cd8ad19d3276bdc48259d97"
	testAppAddrExample   = "0x14e3b4b3a41b23028f140e03caab1a5438f4aa68"
	testAppKeyOtherOrg   = "6c0b1bc70ac4864af78d3d97a5b73b23ebfb58c132c208ec017289fb90c8424f"
	testAppAddrOtherOrg  = "0x8fb374d5327e0dc4c22b14e2b0d925b9ff8cb2aa"
	// private key 1
	testSecretOne  = "0000000000000000000000000000000000000000000000000000000000000001"
	testAddressOne = "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"
	unknownAddress = "0x000000000000000000000000000000000000dead"
)

func newTestKeyring(t *testing.T) *Keyring {
	t.Helper()
	k := New()
	require.NoError(t, k.Initialize([]model.SerializedAccount{
		{PrivateKey: testSecret, Address: testAddress},
	}))
	return k
}

func TestNewIsEmpty(t *testing.T) {
	k := New()
	assert.Equal(t, Type, k.Type())
	assert.Empty(t, k.GetAccounts())
	assert.Empty(t, k.Serialize())
}

func TestInitializeDerivesAddress(t *testing.T) {
	k := New()
	require.NoError(t, k.Initialize([]model.SerializedAccount{
		{PrivateKey: "0x" + testSecretOne},
		{PrivateKey: testSecret, Address: strings.ToUpper(testAddress[2:])},
	}))
	assert.Equal(t, []string{testAddressOne, testAddress}, k.GetAccounts())
}

func TestSerializeRoundTrip(t *testing.T) {
	k := New()
	_, err := k.AddAccounts(3)
	require.NoError(t, err)

	state := k.Serialize()
	require.Len(t, state, 3)

	restored := New()
	require.NoError(t, restored.Initialize(state))
	assert.Equal(t, k.GetAccounts(), restored.GetAccounts())
	assert.Equal(t, state, restored.Serialize())

	for _, entry := range state {
		assert.Len(t, entry.PrivateKey, 64)
		assert.True(t, strings.HasPrefix(entry.Address, "0x"))
		assert.Equal(t, strings.ToLower(entry.Address), entry.Address)
	}
}

func TestDeserializeFailures(t *testing.T) {
	tests := []struct {
		name  string
		state []model.SerializedAccount
		is    error
	}{
		{
			name:  "Not hex",
			state: []model.SerializedAccount{{PrivateKey: "zz"}},
		},
		{
			name:  "Short key",
			state: []model.SerializedAccount{{PrivateKey: "0102"}},
		},
		{
			name:  "Zero key",
			state: []model.SerializedAccount{{PrivateKey: strings.Repeat("0", 64)}},
			is:    ErrInvalidPrivateKey,
		},
		{
			name:  "Key above curve order",
			state: []model.SerializedAccount{{PrivateKey: strings.Repeat("f", 64)}},
			is:    ErrInvalidPrivateKey,
		},
		{
			name:  "Address mismatch",
			state: []model.SerializedAccount{{PrivateKey: testSecret, Address: testAddressOne}},
		},
		{
			name:  "Malformed address",
			state: []model.SerializedAccount{{PrivateKey: testSecret, Address: "0x1234"}},
		},
		{
			name: "Duplicate",
			state: []model.SerializedAccount{
				{PrivateKey: testSecret},
				{PrivateKey: "0x" + testSecret},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newTestKeyring(t)
			err := k.Deserialize(tt.state)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDeserialization)
			var deserializeErr *DeserializeError
			require.ErrorAs(t, err, &deserializeErr)
			assert.Equal(t, len(tt.state)-1, deserializeErr.Index)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			// all-or-nothing: previous state survives
			assert.Equal(t, []string{testAddress}, k.GetAccounts())
		})
	}
}

func TestInitializeFailureLeavesKeyringEmpty(t *testing.T) {
	k := New()
	err := k.Initialize([]model.SerializedAccount{
		{PrivateKey: testSecret},
		{PrivateKey: "bad"},
	})
	assert.ErrorIs(t, err, ErrDeserialization)
	assert.Empty(t, k.GetAccounts())
}

func TestAddAccounts(t *testing.T) {
	k := newTestKeyring(t)

	addresses, err := k.AddAccounts(4)
	require.NoError(t, err)
	require.Len(t, addresses, 4)

	accounts := k.GetAccounts()
	require.Len(t, accounts, 5)
	assert.Equal(t, testAddress, accounts[0])
	assert.Equal(t, addresses, accounts[1:])

	seen := map[string]bool{}
	for _, state := range k.Serialize() {
		secret, err := crypto.ToECDSA(mustDecodeHex(t, state.PrivateKey))
		require.NoError(t, err)
		assert.Equal(t, state.Address, strings.ToLower(crypto.PubkeyToAddress(secret.PublicKey).Hex()))
		assert.False(t, seen[state.Address])
		seen[state.Address] = true
	}

	none, err := k.AddAccounts(0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = k.AddAccounts(-1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestAddAccountsUsesRandomSource(t *testing.T) {
	stream := append(make([]byte, 32), bytes.Repeat([]byte{0x01}, 32)...)
	k := New(WithRandom(bytes.NewReader(stream)))

	addresses, err := k.AddAccounts(1)
	require.NoError(t, err)
	assert.Equal(t, []string{testAddress}, addresses)

	_, err = k.AddAccounts(1)
	assert.Error(t, err, "exhausted random source must fail")
	assert.Len(t, k.GetAccounts(), 1)
}

func TestRemoveAccount(t *testing.T) {
	k := New()
	require.NoError(t, k.Initialize([]model.SerializedAccount{
		{PrivateKey: testSecretOne},
		{PrivateKey: testSecret},
	}))

	require.NoError(t, k.RemoveAccount(strings.ToUpper(testAddress)))
	assert.Equal(t, []string{testAddressOne}, k.GetAccounts())

	err := k.RemoveAccount(testAddress)
	assert.ErrorIs(t, err, ErrAddressNotFound)
	assert.Equal(t, []string{testAddressOne}, k.GetAccounts())

	// a prefix of a stored address is not a match
	err = k.RemoveAccount(testAddressOne[:20])
	assert.ErrorIs(t, err, ErrAddressNotFound)
	assert.Len(t, k.GetAccounts(), 1)

	assert.ErrorIs(t, k.RemoveAccount(""), ErrAddressRequired)
}

func TestExportAccount(t *testing.T) {
	k := newTestKeyring(t)

	secret, err := k.ExportAccount(testAddress, Options{})
	require.NoError(t, err)
	assert.Equal(t, testSecret, secret)

	appSecret, err := k.ExportAccount(testAddress, Options{WithAppKeyOrigin: "example.com"})
	require.NoError(t, err)
	assert.Equal(t, testAppKeyExampleCom, appSecret)

	// derived keys are not stored
	assert.Equal(t, []string{testAddress}, k.GetAccounts())
}

func TestGetAppKeyAddress(t *testing.T) {
	k := newTestKeyring(t)

	addr, err := k.GetAppKeyAddress(testAddress, "example.com")
	require.NoError(t, err)
	assert.Equal(t, testAppAddrExample, addr)

	again, err := k.GetAppKeyAddress(strings.ToUpper(testAddress[2:]), "example.com")
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	other, err := k.GetAppKeyAddress(testAddress, "other.org")
	require.NoError(t, err)
	assert.Equal(t, testAppAddrOtherOrg, other)

	_, err = k.GetAppKeyAddress(testAddress, "")
	assert.ErrorIs(t, err, ErrInvalidOrigin)
}

func TestUnknownAddressFailsEverywhere(t *testing.T) {
	k := newTestKeyring(t)
	opts := Options{}
	digest := "0x" + strings.Repeat("ab", 32)

	operations := map[string]func(address string) error{
		"ExportAccount": func(a string) error { _, err := k.ExportAccount(a, opts); return err },
		"GetAppKeyAddress": func(a string) error {
			_, err := k.GetAppKeyAddress(a, "example.com")
			return err
		},
		"SignMessage":         func(a string) error { _, err := k.SignMessage(a, digest, opts); return err },
		"SignPersonalMessage": func(a string) error { _, err := k.SignPersonalMessage(a, "0x68656c6c6f", opts); return err },
		"SignTypedData": func(a string) error {
			_, err := k.SignTypedData(a, []byte(legacyTypedData), opts)
			return err
		},
		"SignTransaction": func(a string) error {
			_, err := k.SignTransaction(a, newLegacyTx(), nil, opts)
			return err
		},
		"GetEncryptionPublicKey": func(a string) error { _, err := k.GetEncryptionPublicKey(a, opts); return err },
		"DecryptMessage": func(a string) error {
			_, err := k.DecryptMessage(a, model.EncryptedData{})
			return err
		},
		"RemoveAccount": func(a string) error { return k.RemoveAccount(a) },
	}

	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op(unknownAddress), ErrAddressNotFound)
			assert.ErrorIs(t, op("not-an-address"), ErrAddressNotFound)
			assert.ErrorIs(t, op(""), ErrAddressRequired)
		})
	}
}

func TestConcurrentSigningAndMutation(t *testing.T) {
	k := newTestKeyring(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := k.SignPersonalMessage(testAddress, "0x68656c6c6f", Options{WithAppKeyOrigin: "example.com"})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			addresses, err := k.AddAccounts(1)
			assert.NoError(t, err)
			assert.NoError(t, k.RemoveAccount(addresses[0]))
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{testAddress}, k.GetAccounts())
}
