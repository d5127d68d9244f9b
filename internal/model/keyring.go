package model

import "encoding/json"

// KeyringOptions mirrors the per-call options object of the keyring.
type KeyringOptions struct {
	WithAppKeyOrigin string `json:"withAppKeyOrigin,omitempty"`
	Version          string `json:"version,omitempty"`
}

// AddressRequest represents request for POST /keyring/accounts/remove and /keyring/export
type AddressRequest struct {
	Address string `json:"address" binding:"required"`
	KeyringOptions
}

// AppKeyAddressRequest represents request for POST /keyring/app-key-address
type AppKeyAddressRequest struct {
	Address string `json:"address" binding:"required"`
	Origin  string `json:"origin" binding:"required"`
}

// SignTransactionRequest represents request for POST /keyring/sign/transaction.
// Transaction is the hex encoded unsigned transaction (RLP for legacy, typed envelope otherwise).
type SignTransactionRequest struct {
	Address     string `json:"address" binding:"required"`
	Transaction string `json:"transaction" binding:"required"`
	ChainID     *int64 `json:"chainId,omitempty"`
	KeyringOptions
}

// SignTransactionResponse represents response for POST /keyring/sign/transaction
type SignTransactionResponse struct {
	Transaction string `json:"transaction"`
	Hash        string `json:"hash"`
}

// SignMessageRequest represents request for POST /keyring/sign/message and /keyring/sign/personal
type SignMessageRequest struct {
	Address string `json:"address" binding:"required"`
	Data    string `json:"data" binding:"required"`
	KeyringOptions
}

// SignTypedDataRequest represents request for POST /keyring/sign/typed-data
type SignTypedDataRequest struct {
	Address   string          `json:"address" binding:"required"`
	TypedData json.RawMessage `json:"typedData" binding:"required" swaggertype:"object"`
	KeyringOptions
}

// SignatureResponse represents a 65 byte r||s||v signature in hex
type SignatureResponse struct {
	Signature string `json:"signature"`
}

// AddressResponse represents a single address result
type AddressResponse struct {
	Address string `json:"address"`
}

// ExportResponse represents response for POST /keyring/export
type ExportResponse struct {
	PrivateKey string `json:"privateKey"`
}

// EncryptionPublicKeyResponse represents response for POST /keyring/encryption-public-key
type EncryptionPublicKeyResponse struct {
	PublicKey string `json:"publicKey"`
}

// EncryptedData is an EIP-1024 envelope. Binary fields are base64.
type EncryptedData struct {
	Version        string `json:"version"`
	Nonce          string `json:"nonce"`
	EphemPublicKey string `json:"ephemPublicKey"`
	Ciphertext     string `json:"ciphertext"`
}

// DecryptRequest represents request for POST /keyring/decrypt
type DecryptRequest struct {
	Address       string        `json:"address" binding:"required"`
	EncryptedData EncryptedData `json:"encryptedData" binding:"required"`
}

// DecryptResponse represents response for POST /keyring/decrypt
type DecryptResponse struct {
	Message string `json:"message"`
}
