package handler

import (
	"net/http"

	"github.com/AlexZinkM/local-keyring/internal/model"
	"github.com/AlexZinkM/local-keyring/internal/permission"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// PermissionHandler serves the per-origin permission registry
type PermissionHandler struct {
	registry *permission.Registry
}

// NewPermissionHandler creates a new PermissionHandler
func NewPermissionHandler(registry *permission.Registry) *PermissionHandler {
	return &PermissionHandler{registry: registry}
}

// Get handles GET /permissions
// @Summary      Get permissions
// @Description  Returns the permissions granted to an origin
// @Tags         permissions
// @Produce      json
// @Param        origin  query     string  true  "Requesting origin"
// @Success      200     {object}  model.PermissionsResponse
// @Failure      400     {object}  model.ErrorResponse
// @Router       /permissions [get]
func (h *PermissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
			Error: "Method not allowed. Should be GET",
			Code:  model.CodeMethodNotAllowed,
		})
		return
	}

	origin := r.URL.Query().Get("origin")
	if origin == "" {
		writeError(w, r, permission.ErrInvalidOrigin)
		return
	}
	h.respond(w, origin)
}

// Grant handles POST /permissions/grant
// @Summary      Grant permissions
// @Description  Grants (or replaces) the CAIP-25 endowment of an origin, plus optional caveat-free permissions
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        request  body      model.GrantPermissionRequest  true  "Grant"
// @Success      200      {object}  model.PermissionsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /permissions/grant [post]
func (h *PermissionHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req model.GrantPermissionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	for _, name := range req.Names {
		if name == "" || name == permission.Caip25Endowment {
			writeError(w, r, errors.Wrapf(permission.ErrInvalidParams, "cannot grant %q without a caveat", name))
			return
		}
	}

	err := h.registry.GrantCaip25(req.Origin, permission.Caip25Caveat{
		Accounts:           req.Accounts,
		ChainIDs:           req.ChainIDs,
		IsMultichainOrigin: req.IsMultichainOrigin,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	for _, name := range req.Names {
		if err := h.registry.Grant(req.Origin, name); err != nil {
			writeError(w, r, err)
			return
		}
	}

	log.Info().Str("origin", req.Origin).Int("accounts", len(req.Accounts)).Msg("Permissions granted")
	h.respond(w, req.Origin)
}

// Revoke handles POST /permissions/revoke
// @Summary      Revoke permissions
// @Description  Revokes permissions by name. eth_accounts and endowment:permitted-chains revoke the CAIP-25 endowment
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        request  body      model.RevokePermissionsRequest  true  "Revoke"
// @Success      200      {object}  model.PermissionsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Router       /permissions/revoke [post]
func (h *PermissionHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	var req model.RevokePermissionsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.registry.Revoke(req.Origin, req.Permissions); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("origin", req.Origin).Int("requested", len(req.Permissions)).Msg("Permissions revoked")
	h.respond(w, req.Origin)
}

func (h *PermissionHandler) respond(w http.ResponseWriter, origin string) {
	perms := h.registry.Get(origin)
	out := make([]model.Permission, 0, len(perms))
	for _, p := range perms {
		mp := model.Permission{Name: p.Name}
		if p.Caveat != nil {
			mp.Caveat = &model.Caip25Caveat{
				Accounts:           p.Caveat.Accounts,
				ChainIDs:           p.Caveat.ChainIDs,
				IsMultichainOrigin: p.Caveat.IsMultichainOrigin,
			}
		}
		out = append(out, mp)
	}
	writeJSON(w, http.StatusOK, model.PermissionsResponse{Origin: origin, Permissions: out})
}
