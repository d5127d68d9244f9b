// Re-encrypts the keystore under a new password with a fresh salt and nonce.
// Usage: KEYSTORE_FILE_PATH=./keyring.kst go run ./cmd/rotate_password
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/AlexZinkM/local-keyring/internal/config"
	"github.com/AlexZinkM/local-keyring/internal/crypto"
	"github.com/AlexZinkM/local-keyring/internal/keyring"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}
	filePath := config.GetKeystoreFilePath()

	addresses, err := crypto.ReadKeystoreAddresses(filePath)
	if err != nil {
		return err
	}
	fmt.Printf("Keystore %s holds %d account(s):\n", filePath, len(addresses))
	for _, address := range addresses {
		fmt.Println("  " + address)
	}

	oldPassword, err := config.ReadPassword("Current keystore password: ")
	if err != nil {
		return err
	}
	defer clear(oldPassword)

	file, data, err := crypto.DecryptKeyring(filePath, oldPassword)
	if err != nil {
		return fmt.Errorf("decrypt failed: %w", err)
	}

	// Loading into a keyring validates every entry before anything is rewritten
	if err := keyring.New().Initialize(data.Accounts); err != nil {
		return fmt.Errorf("keystore content is invalid: %w", err)
	}

	newPassword, err := config.ReadPassword("New keystore password: ")
	if err != nil {
		return err
	}
	defer clear(newPassword)

	confirm, err := config.ReadPassword("Repeat new keystore password: ")
	if err != nil {
		return err
	}
	defer clear(confirm)

	if !bytes.Equal(newPassword, confirm) {
		return fmt.Errorf("passwords do not match")
	}

	if err := crypto.EncryptKeyring(filePath, file.Network, data, newPassword); err != nil {
		return fmt.Errorf("encrypt failed: %w", err)
	}
	fmt.Printf("Keystore re-encrypted: %d account(s)\n", len(data.Accounts))
	return nil
}
