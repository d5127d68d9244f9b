// Package permission tracks what each requesting origin has been granted.
package permission

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Permission names
const (
	Caip25Endowment = "endowment:caip25"
	EthAccounts     = "eth_accounts"
	PermittedChains = "endowment:permitted-chains"
)

var (
	// ErrInvalidParams is returned for an empty or unusable revoke request
	ErrInvalidParams = errors.New("invalid method parameter(s)")
	// ErrPermissionConflict is returned when a permission granted by the multichain
	// flow is modified through the legacy revoke flow
	ErrPermissionConflict = errors.New("cannot modify permission granted from multichain flow")
	// ErrInvalidOrigin is returned for an empty origin
	ErrInvalidOrigin = errors.New("origin must be a non-empty string")
)

// Caip25Caveat restricts the CAIP-25 endowment to accounts and chains
type Caip25Caveat struct {
	Accounts           []string
	ChainIDs           []string
	IsMultichainOrigin bool
}

// Permission is a single granted permission. Caveat is set only for the CAIP-25 endowment.
type Permission struct {
	Name   string
	Caveat *Caip25Caveat
}

// Registry is an in-memory, per-origin permission store
type Registry struct {
	mu          sync.RWMutex
	permissions map[string]map[string]Permission
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		permissions: make(map[string]map[string]Permission),
	}
}

// Grant grants a caveat-free permission to origin
func (r *Registry) Grant(origin string, name string) error {
	if origin == "" {
		return ErrInvalidOrigin
	}
	if name == "" || name == Caip25Endowment {
		return errors.Wrapf(ErrInvalidParams, "cannot grant %q without a caveat", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.originPermissions(origin)[name] = Permission{Name: name}
	return nil
}

// GrantCaip25 grants (or replaces) the CAIP-25 endowment of origin.
// Accounts are stored lowercase.
func (r *Registry) GrantCaip25(origin string, caveat Caip25Caveat) error {
	if origin == "" {
		return ErrInvalidOrigin
	}

	stored := &Caip25Caveat{
		Accounts:           make([]string, 0, len(caveat.Accounts)),
		ChainIDs:           append([]string(nil), caveat.ChainIDs...),
		IsMultichainOrigin: caveat.IsMultichainOrigin,
	}
	for _, account := range caveat.Accounts {
		stored.Accounts = append(stored.Accounts, strings.ToLower(account))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.originPermissions(origin)[Caip25Endowment] = Permission{Name: Caip25Endowment, Caveat: stored}
	return nil
}

// Get returns the permissions of origin sorted by name
func (r *Registry) Get(origin string) []Permission {
	r.mu.RLock()
	defer r.mu.RUnlock()

	perms := r.permissions[origin]
	out := make([]Permission, 0, len(perms))
	for _, p := range perms {
		out = append(out, copyPermission(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PermittedAccounts returns the accounts in the CAIP-25 caveat of origin
func (r *Registry) PermittedAccounts(origin string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.permissions[origin][Caip25Endowment]
	if !ok || p.Caveat == nil {
		return nil
	}
	return append([]string(nil), p.Caveat.Accounts...)
}

// IsAccountPermitted reports whether origin may act for address (case-insensitive)
func (r *Registry) IsAccountPermitted(origin string, address string) bool {
	for _, account := range r.PermittedAccounts(origin) {
		if strings.EqualFold(account, address) {
			return true
		}
	}
	return false
}

// Revoke revokes the requested permission names from origin.
//
// The CAIP-25 endowment itself cannot be named. Revoking eth_accounts or
// endowment:permitted-chains is a legacy revoke: it removes the CAIP-25 endowment
// unless that endowment came from the multichain flow, which is a conflict.
// Other names are revoked directly.
func (r *Registry) Revoke(origin string, requested map[string]interface{}) error {
	if origin == "" {
		return ErrInvalidOrigin
	}
	if len(requested) == 0 {
		return errors.Wrap(ErrInvalidParams, "no permissions requested")
	}

	var names []string
	for name := range requested {
		if name != Caip25Endowment {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return errors.Wrap(ErrInvalidParams, "no revocable permissions requested")
	}

	legacy := false
	var direct []string
	for _, name := range names {
		if name == EthAccounts || name == PermittedChains {
			legacy = true
			continue
		}
		direct = append(direct, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	perms := r.permissions[origin]

	if legacy {
		if p, ok := perms[Caip25Endowment]; ok && p.Caveat != nil && p.Caveat.IsMultichainOrigin {
			return ErrPermissionConflict
		}
	}

	for _, name := range direct {
		delete(perms, name)
	}
	if legacy {
		delete(perms, Caip25Endowment)
	}
	if len(perms) == 0 {
		delete(r.permissions, origin)
	}
	return nil
}

// originPermissions returns the permission map of origin, creating it. Callers must hold r.mu.
func (r *Registry) originPermissions(origin string) map[string]Permission {
	perms, ok := r.permissions[origin]
	if !ok {
		perms = make(map[string]Permission)
		r.permissions[origin] = perms
	}
	return perms
}

func copyPermission(p Permission) Permission {
	if p.Caveat == nil {
		return p
	}
	return Permission{
		Name: p.Name,
		Caveat: &Caip25Caveat{
			Accounts:           append([]string(nil), p.Caveat.Accounts...),
			ChainIDs:           append([]string(nil), p.Caveat.ChainIDs...),
			IsMultichainOrigin: p.Caveat.IsMultichainOrigin,
		},
	}
}
