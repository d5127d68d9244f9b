package crypto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/local-keyring/internal/model"

	"golang.org/x/crypto/scrypt"
)

// InvalidPasswordError is returned when the keystore cannot be opened with the given password
type InvalidPasswordError struct {
	Message string
}

func (e *InvalidPasswordError) Error() string {
	return e.Message
}

// IsInvalidPasswordError checks if error is InvalidPasswordError
func IsInvalidPasswordError(err error) bool {
	var target *InvalidPasswordError
	return errors.As(err, &target)
}

// DecryptKeyring reads and decrypts a .kst file.
// A missing file yields an error matching os.ErrNotExist.
// password must be []byte for security (caller should zero it after use)
func DecryptKeyring(filePath string, password []byte) (*model.KeystoreFile, *model.KeyringData, error) {
	keystoreFile, err := readKeystoreFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(keystoreFile.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(keystoreFile.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(keystoreFile.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	if len(nonce) != aesGCM.NonceSize() {
		return nil, nil, fmt.Errorf("invalid nonce length %d", len(nonce))
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, &InvalidPasswordError{Message: "invalid password"}
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var keyringData model.KeyringData
	if err := json.Unmarshal(plaintext, &keyringData); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal keyring data: %w", err)
	}

	return keystoreFile, &keyringData, nil
}

// ReadKeystoreAddresses reads only the addresses from a .kst file (without decryption)
func ReadKeystoreAddresses(filePath string) ([]string, error) {
	keystoreFile, err := readKeystoreFile(filePath)
	if err != nil {
		return nil, err
	}
	return keystoreFile.Addresses, nil
}

func readKeystoreFile(filePath string) (*model.KeystoreFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("keystore file does not exist: %w", os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	var keystoreFile model.KeystoreFile
	if err := json.Unmarshal(fileData, &keystoreFile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keystore file: %w", err)
	}

	return &keystoreFile, nil
}
