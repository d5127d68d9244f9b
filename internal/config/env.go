package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetKeystorePasswordBytes()
type Config struct {
	Port                    string `envconfig:"PORT" default:"8080"`
	KeystoreFilePath        string `envconfig:"KEYSTORE_FILE_PATH" required:"true"`
	Network                 string `envconfig:"NETWORK" default:"ethereum"`
	ChainID                 int64  `envconfig:"CHAIN_ID" default:"1"`
	LogLevel                string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty               bool   `envconfig:"LOG_PRETTY" default:"false"`
	RequireOriginPermission bool   `envconfig:"REQUIRE_ORIGIN_PERMISSION" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.KeystoreFilePath == "" {
		return errors.New("KEYSTORE_FILE_PATH must not be empty")
	}
	if c.ChainID <= 0 {
		return fmt.Errorf("CHAIN_ID must be positive, got %d", c.ChainID)
	}
	cfg = c
	return nil
}

// Set replaces the global configuration instance (used by tests and tools).
func Set(c *Config) {
	cfg = c
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetKeystoreFilePath returns path to .kst file from configuration
func GetKeystoreFilePath() string {
	return Get().KeystoreFilePath
}

// GetNetwork returns the network name written into the keystore file
func GetNetwork() string {
	return Get().Network
}

// GetChainID returns the default chain id for transaction signing
func GetChainID() int64 {
	return Get().ChainID
}

// GetLogLevel returns the zerolog level name
func GetLogLevel() string {
	return Get().LogLevel
}

// GetLogPretty reports whether logs go to a human readable console writer
func GetLogPretty() bool {
	return Get().LogPretty
}

// GetRequireOriginPermission reports whether app key requests need a permitted origin
func GetRequireOriginPermission() bool {
	return Get().RequireOriginPermission
}

var passwordBytes []byte

// PromptForPassword prompts the user for the keystore password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := ReadPassword("Enter keystore password: ")
	if err != nil {
		return err
	}
	SetPassword(raw)
	clear(raw)
	return nil
}

// ReadPassword reads a non-empty password from the terminal without echo.
// Caller must zero the returned slice after use.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// SetPassword stores a copy of password in memory
func SetPassword(password []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(password))
	copy(passwordBytes, password)
}

// GetKeystorePasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetKeystorePasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
