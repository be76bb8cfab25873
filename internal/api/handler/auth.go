package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/snakegame-go/internal/api/request"
	"github.com/mcoot/snakegame-go/internal/api/response"
	"github.com/mcoot/snakegame-go/internal/services/account"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	accounts *account.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *account.Service) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.UserFromModel(user))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	tokenString, user, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{
		Token: tokenString,
		User:  response.UserFromModel(user),
	})
}
