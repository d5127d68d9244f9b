package handler

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"

	"github.com/AlexZinkM/local-keyring/internal/common"
	"github.com/AlexZinkM/local-keyring/internal/config"
	"github.com/AlexZinkM/local-keyring/internal/keyring"
	"github.com/AlexZinkM/local-keyring/internal/model"
	"github.com/AlexZinkM/local-keyring/internal/permission"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

const maxAccountsPerRequest = 100

// KeyringHandler serves keyring operations over HTTP
type KeyringHandler struct {
	keyring                 *keyring.Keyring
	permissions             *permission.Registry
	store                   AccountStore
	chainID                 *big.Int
	requireOriginPermission bool

	// persistMu serializes mutate+save so a failed save can be rolled back
	persistMu sync.Mutex
}

// NewKeyringHandler creates a new KeyringHandler with config values
func NewKeyringHandler(kr *keyring.Keyring, permissions *permission.Registry, store AccountStore) *KeyringHandler {
	return &KeyringHandler{
		keyring:                 kr,
		permissions:             permissions,
		store:                   store,
		chainID:                 big.NewInt(config.GetChainID()),
		requireOriginPermission: config.GetRequireOriginPermission(),
	}
}

// Accounts handles GET and POST /keyring/accounts
// @Summary      List or add accounts
// @Description  GET lists keyring addresses. POST generates new accounts, persists the keystore and returns addresses with QR codes
// @Tags         keyring
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddAccountsRequest  false  "Number of accounts (POST, default 1)"
// @Success      200      {object}  model.AccountsResponse
// @Success      201      {object}  model.AddAccountsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /keyring/accounts [get]
// @Router       /keyring/accounts [post]
func (h *KeyringHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, model.AccountsResponse{
			Type:     h.keyring.Type(),
			Accounts: h.keyring.GetAccounts(),
		})
	case http.MethodPost:
		h.addAccounts(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
			Error: "Method not allowed. Should be GET or POST",
			Code:  model.CodeMethodNotAllowed,
		})
	}
}

func (h *KeyringHandler) addAccounts(w http.ResponseWriter, r *http.Request) {
	var req model.AddAccountsRequest
	if r.ContentLength != 0 {
		if !decodeBody(w, r, &req) {
			return
		}
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
	}
	if count < 1 || count > maxAccountsPerRequest {
		writeBadRequest(w, fmt.Sprintf("count must be between 1 and %d", maxAccountsPerRequest))
		return
	}

	var addresses []string
	err := h.mutate(func() error {
		var err error
		addresses, err = h.keyring.AddAccounts(count)
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	accounts := make([]model.AccountAddress, 0, len(addresses))
	for _, address := range addresses {
		qrCode, err := generateQRCode(address)
		if err != nil {
			writeError(w, r, err)
			return
		}
		accounts = append(accounts, model.AccountAddress{Address: address, QR: qrCode})
	}

	log.Info().Int("count", len(addresses)).Msg("Accounts added")
	writeJSON(w, http.StatusCreated, model.AddAccountsResponse{
		Success:  true,
		Message:  "Accounts generated successfully",
		Accounts: accounts,
	})
}

// RemoveAccount handles POST /keyring/accounts/remove
// @Summary      Remove account
// @Description  Removes the account with the given address and persists the keystore
// @Tags         keyring
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddressRequest  true  "Account address"
// @Success      200      {object}  model.AccountsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /keyring/accounts/remove [post]
func (h *KeyringHandler) RemoveAccount(w http.ResponseWriter, r *http.Request) {
	var req model.AddressRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.mutate(func() error { return h.keyring.RemoveAccount(req.Address) }); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("address", req.Address).Msg("Account removed")
	writeJSON(w, http.StatusOK, model.AccountsResponse{
		Type:     h.keyring.Type(),
		Accounts: h.keyring.GetAccounts(),
	})
}

// mutate applies fn and persists the keyring, restoring the previous state if saving fails
func (h *KeyringHandler) mutate(fn func() error) error {
	h.persistMu.Lock()
	defer h.persistMu.Unlock()

	before := h.keyring.Serialize()
	if err := fn(); err != nil {
		return err
	}
	if err := h.store.Save(h.keyring.Serialize()); err != nil {
		if restoreErr := h.keyring.Deserialize(before); restoreErr != nil {
			log.Error().Err(restoreErr).Msg("Failed to restore keyring after save failure")
		}
		return fmt.Errorf("failed to persist keyring: %w", err)
	}
	return nil
}

// Export handles POST /keyring/export
// @Summary      Export private key
// @Description  Returns the hex private key of the account, or of its app key when withAppKeyOrigin is set
// @Tags         keyring
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddressRequest  true  "Account address and options"
// @Success      200      {object}  model.ExportResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /keyring/export [post]
func (h *KeyringHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req model.AddressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.checkOrigin(req.Address, req.WithAppKeyOrigin); err != nil {
		writeError(w, r, err)
		return
	}

	privateKey, err := h.keyring.ExportAccount(req.Address, toOptions(req.KeyringOptions))
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Warn().Str("address", req.Address).Bool("appKey", req.WithAppKeyOrigin != "").Msg("Private key exported")
	writeJSON(w, http.StatusOK, model.ExportResponse{PrivateKey: privateKey})
}

// AppKeyAddress handles POST /keyring/app-key-address
// @Summary      App key address
// @Description  Returns the address of the app key derived for origin
// @Tags         keyring
// @Accept       json
// @Produce      json
// @Param        request  body      model.AppKeyAddressRequest  true  "Account address and origin"
// @Success      200      {object}  model.AddressResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /keyring/app-key-address [post]
func (h *KeyringHandler) AppKeyAddress(w http.ResponseWriter, r *http.Request) {
	var req model.AppKeyAddressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.checkOrigin(req.Address, req.Origin); err != nil {
		writeError(w, r, err)
		return
	}

	address, err := h.keyring.GetAppKeyAddress(req.Address, req.Origin)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AddressResponse{Address: address})
}

// SignTransaction handles POST /keyring/sign/transaction
// @Summary      Sign transaction
// @Description  Signs a hex encoded unsigned transaction (legacy RLP or typed envelope)
// @Tags         signing
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignTransactionRequest  true  "Transaction"
// @Success      200      {object}  model.SignTransactionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /keyring/sign/transaction [post]
func (h *KeyringHandler) SignTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.SignTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.checkOrigin(req.Address, req.WithAppKeyOrigin); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := hexutil.Decode(common.Add0x(req.Transaction))
	if err != nil {
		writeBadRequest(w, "invalid transaction hex: "+err.Error())
		return
	}
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		writeBadRequest(w, "invalid transaction: "+err.Error())
		return
	}

	var chainID *big.Int
	switch {
	case req.ChainID != nil:
		chainID = big.NewInt(*req.ChainID)
	case tx.Type() == types.LegacyTxType:
		chainID = h.chainID
	}

	signed, err := h.keyring.SignTransaction(req.Address, tx, chainID, toOptions(req.KeyringOptions))
	if err != nil {
		writeError(w, r, err)
		return
	}

	encoded, err := signed.MarshalBinary()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SignTransactionResponse{
		Transaction: hexutil.Encode(encoded),
		Hash:        signed.Hash().Hex(),
	})
}

// SignMessage handles POST /keyring/sign/message
// @Summary      eth_sign
// @Description  Signs a 32 byte hex digest without prefix
// @Tags         signing
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignMessageRequest  true  "Digest"
// @Success      200      {object}  model.SignatureResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /keyring/sign/message [post]
func (h *KeyringHandler) SignMessage(w http.ResponseWriter, r *http.Request) {
	h.signMessage(w, r, h.keyring.SignMessage)
}

// SignPersonal handles POST /keyring/sign/personal
// @Summary      personal_sign
// @Description  Signs a message with the Ethereum signed message prefix
// @Tags         signing
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignMessageRequest  true  "Message (0x hex or text)"
// @Success      200      {object}  model.SignatureResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /keyring/sign/personal [post]
func (h *KeyringHandler) SignPersonal(w http.ResponseWriter, r *http.Request) {
	h.signMessage(w, r, h.keyring.SignPersonalMessage)
}

func (h *KeyringHandler) signMessage(w http.ResponseWriter, r *http.Request, sign func(string, string, keyring.Options) (string, error)) {
	var req model.SignMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.checkOrigin(req.Address, req.WithAppKeyOrigin); err != nil {
		writeError(w, r, err)
		return
	}

	signature, err := sign(req.Address, req.Data, toOptions(req.KeyringOptions))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SignatureResponse{Signature: signature})
}

// SignTypedData handles POST /keyring/sign/typed-data
// @Summary      Sign typed data
// @Description  Signs typed data under version V1, V3 or V4. Unrecognized versions are treated as V1
// @Tags         signing
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignTypedDataRequest  true  "Typed data"
// @Success      200      {object}  model.SignatureResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /keyring/sign/typed-data [post]
func (h *KeyringHandler) SignTypedData(w http.ResponseWriter, r *http.Request) {
	var req model.SignTypedDataRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.TypedData) == 0 {
		writeBadRequest(w, "typedData is required")
		return
	}
	if err := h.checkOrigin(req.Address, req.WithAppKeyOrigin); err != nil {
		writeError(w, r, err)
		return
	}

	signature, err := h.keyring.SignTypedData(req.Address, typedDataBytes(req.TypedData), toOptions(req.KeyringOptions))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SignatureResponse{Signature: signature})
}

// typedDataBytes unwraps typed data that was sent as a JSON string
func typedDataBytes(raw json.RawMessage) []byte {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []byte(s)
	}
	return raw
}

// EncryptionPublicKey handles POST /keyring/encryption-public-key
// @Summary      Encryption public key
// @Description  Returns the base64 x25519 public key used for eth_decrypt envelopes
// @Tags         encryption
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddressRequest  true  "Account address and options"
// @Success      200      {object}  model.EncryptionPublicKeyResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /keyring/encryption-public-key [post]
func (h *KeyringHandler) EncryptionPublicKey(w http.ResponseWriter, r *http.Request) {
	var req model.AddressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.checkOrigin(req.Address, req.WithAppKeyOrigin); err != nil {
		writeError(w, r, err)
		return
	}

	publicKey, err := h.keyring.GetEncryptionPublicKey(req.Address, toOptions(req.KeyringOptions))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.EncryptionPublicKeyResponse{PublicKey: publicKey})
}

// Decrypt handles POST /keyring/decrypt
// @Summary      eth_decrypt
// @Description  Decrypts an x25519-xsalsa20-poly1305 envelope with the account key
// @Tags         encryption
// @Accept       json
// @Produce      json
// @Param        request  body      model.DecryptRequest  true  "Envelope"
// @Success      200      {object}  model.DecryptResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /keyring/decrypt [post]
func (h *KeyringHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	var req model.DecryptRequest
	if !decodeBody(w, r, &req) {
		return
	}

	message, err := h.keyring.DecryptMessage(req.Address, req.EncryptedData)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.DecryptResponse{Message: message})
}

// checkOrigin enforces the origin's CAIP-25 account list when app keys are gated
func (h *KeyringHandler) checkOrigin(address, origin string) error {
	if origin == "" || !h.requireOriginPermission {
		return nil
	}
	normalized, err := common.NormalizeAddress(address)
	if err != nil {
		// let the keyring report the unknown address
		return nil
	}
	if !h.permissions.IsAccountPermitted(origin, normalized) {
		return errOriginNotPermitted
	}
	return nil
}

func toOptions(opts model.KeyringOptions) keyring.Options {
	return keyring.Options{
		WithAppKeyOrigin: opts.WithAppKeyOrigin,
		Version:          opts.Version,
	}
}
