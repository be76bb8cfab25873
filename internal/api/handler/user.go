package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/snakegame-go/internal/api/middleware"
	"github.com/mcoot/snakegame-go/internal/api/request"
	"github.com/mcoot/snakegame-go/internal/api/response"
	"github.com/mcoot/snakegame-go/internal/services/account"
)

// UserHandler handles profile endpoints
type UserHandler struct {
	accounts *account.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(accounts *account.Service) *UserHandler {
	return &UserHandler{
		accounts: accounts,
	}
}

// GetMe handles GET /api/users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// UpdateMe handles PUT /api/users/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.accounts.UpdateProfile(r.Context(), user.ID, account.ProfileUpdate{
		DisplayName: req.DisplayName,
		Avatar:      req.Avatar,
		Theme:       req.ThemePreference,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(updated))
}
