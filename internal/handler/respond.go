package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/local-keyring/internal/crypto"
	"github.com/AlexZinkM/local-keyring/internal/keyring"
	"github.com/AlexZinkM/local-keyring/internal/model"
	"github.com/AlexZinkM/local-keyring/internal/permission"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes bounds request bodies; typed data is the largest payload
const maxBodyBytes = 1 << 20

var errOriginNotPermitted = errors.New("origin is not permitted to use this account")

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: message, Code: model.CodeBadRequest})
}

// writeError maps domain errors to HTTP status codes
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, model.CodeInternal

	switch {
	case errors.Is(err, keyring.ErrAddressNotFound):
		status, code = http.StatusNotFound, model.CodeAddressNotFound
	case errors.Is(err, keyring.ErrInvalidOrigin), errors.Is(err, permission.ErrInvalidOrigin):
		status, code = http.StatusBadRequest, model.CodeInvalidOrigin
	case errors.Is(err, keyring.ErrAddressRequired),
		errors.Is(err, keyring.ErrInvalidMessage),
		errors.Is(err, keyring.ErrInvalidTypedData),
		errors.Is(err, keyring.ErrInvalidCount),
		errors.Is(err, types.ErrInvalidChainId),
		errors.Is(err, permission.ErrInvalidParams):
		status, code = http.StatusBadRequest, model.CodeBadRequest
	case errors.Is(err, crypto.ErrDecryptionFailed), errors.Is(err, crypto.ErrUnsupportedVersion):
		status, code = http.StatusBadRequest, model.CodeDecryptionFailed
	case errors.Is(err, permission.ErrPermissionConflict):
		status, code = http.StatusForbidden, model.CodePermissionConflict
	case errors.Is(err, errOriginNotPermitted):
		status, code = http.StatusForbidden, model.CodeOriginNotPermitted
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

// decodeBody decodes a JSON request body, rejecting unknown methods first
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
			Error: "Method not allowed. Should be POST",
			Code:  model.CodeMethodNotAllowed,
		})
		return false
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		writeBadRequest(w, err.Error())
		return false
	}
	return true
}
