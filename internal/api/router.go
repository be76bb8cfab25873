package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/snakegame-go/internal/api/handler"
	"github.com/mcoot/snakegame-go/internal/api/middleware"
	"github.com/mcoot/snakegame-go/internal/services/account"
	"github.com/mcoot/snakegame-go/internal/services/score"
	"github.com/mcoot/snakegame-go/internal/services/token"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Accounts *account.Service
	Scores   *score.Service
	Tokens   *token.Service
	CORS     middleware.CORSConfig
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.Accounts)
	userHandler := handler.NewUserHandler(cfg.Accounts)
	scoreHandler := handler.NewScoreHandler(cfg.Scores)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.Tokens, cfg.Accounts)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	corsMiddleware := middleware.CORS(cfg.CORS)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(corsMiddleware)

	// Auth routes (no auth required)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected profile routes
	users := api.PathPrefix("/users").Subrouter()
	users.Use(authMiddleware)
	users.HandleFunc("/me", userHandler.GetMe).Methods(http.MethodGet)
	users.HandleFunc("/me", userHandler.UpdateMe).Methods(http.MethodPut)

	// Leaderboard is public; submission requires auth
	api.HandleFunc("/scores", scoreHandler.Leaderboard).Methods(http.MethodGet)
	scores := api.PathPrefix("/scores").Subrouter()
	scores.Use(authMiddleware)
	scores.HandleFunc("", scoreHandler.Submit).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Preflight requests short-circuit in the CORS middleware; this
	// catch-all keeps mux from rejecting them with 405 first
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
