package storage

import (
	"context"

	"github.com/mcoot/snakegame-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// Usernames are case-sensitive: "Alice" and "alice" are distinct accounts.
type Storage interface {
	// User operations

	// CreateUser persists a new user. The username uniqueness check and the
	// insert are a single atomic step; a duplicate username fails with
	// model.ErrUsernameExists even under concurrent registration.
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// UpdateUser rewrites an existing user's record. The username must not
	// change; callers only mutate profile fields.
	UpdateUser(ctx context.Context, user *model.User) error

	// Score operations

	// CreateScore appends a new score entry
	CreateScore(ctx context.Context, score *model.Score) error
	// TopScores returns up to limit scores ordered by points descending,
	// ties ordered by ID descending (newest submission first)
	TopScores(ctx context.Context, limit int) ([]*model.Score, error)
	CountScores(ctx context.Context) (int64, error)
}
