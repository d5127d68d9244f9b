package handler

import (
	"time"

	"github.com/AlexZinkM/local-keyring/internal/config"
	"github.com/AlexZinkM/local-keyring/internal/crypto"
	"github.com/AlexZinkM/local-keyring/internal/keyring"
	"github.com/AlexZinkM/local-keyring/internal/model"
)

// AccountStore persists the serialized keyring
type AccountStore interface {
	Save(accounts []model.SerializedAccount) error
}

// KeystoreStore writes the keyring to the encrypted .kst file named in config
type KeystoreStore struct {
	filePath string
	network  string
}

// NewKeystoreStore creates a KeystoreStore with config values
func NewKeystoreStore() *KeystoreStore {
	return &KeystoreStore{
		filePath: config.GetKeystoreFilePath(),
		network:  config.GetNetwork(),
	}
}

// Save encrypts accounts with the in-memory password and replaces the keystore file
func (s *KeystoreStore) Save(accounts []model.SerializedAccount) error {
	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := config.GetKeystorePasswordBytes()
	if err != nil {
		return err
	}
	defer clear(passwordBytes)

	return crypto.EncryptKeyring(s.filePath, s.network, &model.KeyringData{
		Type:      keyring.Type,
		Accounts:  accounts,
		UpdatedAt: time.Now().Format(time.RFC3339),
	}, passwordBytes)
}
