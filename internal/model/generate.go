package model

// AddAccountsRequest represents request for POST /keyring/accounts
type AddAccountsRequest struct {
	Count *int `json:"count,omitempty"`
}

// AddAccountsResponse represents response for POST /keyring/accounts
type AddAccountsResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Accounts []AccountAddress `json:"accounts"`
}

// AccountAddress is a new address with its QR code (base64 PNG)
type AccountAddress struct {
	Address string `json:"address"`
	QR      string `json:"QR"`
}

// AccountsResponse represents response for GET /keyring/accounts
type AccountsResponse struct {
	Type     string   `json:"type"`
	Accounts []string `json:"accounts"`
}
