// Package account manages user registration, login, and profiles.
package account

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/mcoot/snakegame-go/internal/dependencies/clock"
	"github.com/mcoot/snakegame-go/internal/id"
	"github.com/mcoot/snakegame-go/internal/model"
	"github.com/mcoot/snakegame-go/internal/services/credential"
	"github.com/mcoot/snakegame-go/internal/services/token"
	"github.com/mcoot/snakegame-go/internal/storage"
)

// Errors
var (
	// ErrInvalidCredentials covers wrong password, unknown username, and
	// anything else a login oracle must not distinguish
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Validation limits
const (
	MinUsernameLength = 3
	MinPasswordLength = 8
)

// Service handles account registration, login, and profile updates
type Service struct {
	storage storage.Storage
	tokens  *token.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new account Service
func New(store storage.Storage, tokens *token.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		tokens:  tokens,
		clock:   clk,
		logger:  logger,
	}
}

// Register creates a new account. The username must be unique; racing
// duplicate registrations are resolved by the storage layer, and the loser
// gets the same model.ErrUsernameExists as a plain duplicate.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return nil, &model.ValidationError{Field: "username", Message: "username must be at least 3 characters"}
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, &model.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	if len(password) > credential.MaxInputBytes {
		return nil, &model.ValidationError{Field: "password", Message: "password must be at most 72 bytes"}
	}

	hash, err := credential.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.UserID(id.New()),
		Username:     username,
		PasswordHash: hash,
		Theme:        model.DefaultTheme,
		CreatedAt:    s.clock.Now().UTC(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("user_id", string(user.ID)))
	return user, nil
}

// Login authenticates a user and issues a bearer token with the configured
// TTL. All failures collapse into ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Burn a hash comparison so unknown usernames cost the same
			// as wrong passwords
			credential.Verify(password, credential.DummyHash)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !credential.Verify(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	bearer, err := s.tokens.Issue(user.Username, s.tokens.TTL())
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in", slog.String("user_id", string(user.ID)))
	return bearer, user, nil
}

// Get returns a user by ID
func (s *Service) Get(ctx context.Context, userID model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, userID)
}

// GetByUsername returns a user by username. The session guard uses this to
// resolve token subjects.
func (s *Service) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.storage.GetUserByUsername(ctx, username)
}

// ProfileUpdate describes a partial profile change; nil fields are untouched
type ProfileUpdate struct {
	DisplayName *string
	Avatar      *string
	Theme       *string
}

// UpdateProfile applies a partial update to a user's profile fields
func (s *Service) UpdateProfile(ctx context.Context, userID model.UserID, update ProfileUpdate) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil {
		user.DisplayName = *update.DisplayName
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Theme != nil {
		user.Theme = *update.Theme
	}

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
