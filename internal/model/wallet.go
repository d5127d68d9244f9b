package model

// KeystoreFile represents .kst file structure
type KeystoreFile struct {
	Network    string   `json:"network"`
	Addresses  []string `json:"addresses"`
	Salt       string   `json:"salt"`
	Nonce      string   `json:"nonce"`
	CipherText string   `json:"cipherText"`
}

// KeyringData represents decrypted keystore contents
type KeyringData struct {
	Type      string              `json:"type"`
	Accounts  []SerializedAccount `json:"accounts"`
	UpdatedAt string              `json:"updatedAt"`
}

// SerializedAccount is one persisted keyring entry.
// PrivateKey is 64 hex characters without 0x prefix, Address is lowercase 0x-prefixed hex.
type SerializedAccount struct {
	PrivateKey string `json:"privateKey"`
	Address    string `json:"address"`
}
