package model

// GrantPermissionRequest represents request for POST /permissions/grant
type GrantPermissionRequest struct {
	Origin             string   `json:"origin" binding:"required"`
	Accounts           []string `json:"accounts"`
	ChainIDs           []string `json:"chainIds"`
	IsMultichainOrigin bool     `json:"isMultichainOrigin"`
	// Names lists extra caveat-free permissions to grant alongside the endowment
	Names []string `json:"names,omitempty"`
}

// RevokePermissionsRequest represents request for POST /permissions/revoke.
// Permissions is keyed by permission name, values are ignored.
type RevokePermissionsRequest struct {
	Origin      string                 `json:"origin" binding:"required"`
	Permissions map[string]interface{} `json:"permissions"`
}

// PermissionsResponse represents response for GET /permissions
type PermissionsResponse struct {
	Origin      string       `json:"origin"`
	Permissions []Permission `json:"permissions"`
}

// Permission is a granted permission with its optional CAIP-25 caveat
type Permission struct {
	Name   string        `json:"name"`
	Caveat *Caip25Caveat `json:"caveat,omitempty"`
}

// Caip25Caveat is the account/chain caveat of the CAIP-25 endowment
type Caip25Caveat struct {
	Accounts           []string `json:"accounts"`
	ChainIDs           []string `json:"chainIds"`
	IsMultichainOrigin bool     `json:"isMultichainOrigin"`
}
