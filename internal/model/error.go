package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes returned in ErrorResponse.Code
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeAddressNotFound    = "ADDRESS_NOT_FOUND"
	CodeInvalidOrigin      = "INVALID_ORIGIN"
	CodeOriginNotPermitted = "ORIGIN_NOT_PERMITTED"
	CodePermissionConflict = "PERMISSION_CONFLICT"
	CodeDecryptionFailed   = "DECRYPTION_FAILED"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeInternal           = "INTERNAL"
)
