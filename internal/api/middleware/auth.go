package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mcoot/snakegame-go/internal/api/apierr"
	"github.com/mcoot/snakegame-go/internal/model"
	"github.com/mcoot/snakegame-go/internal/services/account"
	"github.com/mcoot/snakegame-go/internal/services/token"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth creates authentication middleware. The bearer token is verified
// and its subject resolved against storage on every request, so a user
// deleted after issuance is rejected even with a valid signature.
func Auth(tokens *token.Service, accounts *account.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			username, err := tokens.Verify(tokenString)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			user, err := accounts.GetByUsername(r.Context(), username)
			if err != nil {
				// Only a missing user is an auth failure; anything else
				// is a storage outage and must not masquerade as 401
				if errors.Is(err, model.ErrUserNotFound) {
					apierr.WriteError(w, apierr.NewUnauthorizedError())
				} else {
					apierr.WriteError(w, apierr.NewInternalError())
				}
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUser returns the authenticated user from the request context
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// MustGetUser returns the authenticated user or panics
func MustGetUser(ctx context.Context) *model.User {
	user := GetUser(ctx)
	if user == nil {
		panic("no user in context - auth middleware not applied?")
	}
	return user
}
