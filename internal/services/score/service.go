// Package score maintains the append-only score ledger and the leaderboard.
package score

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/snakegame-go/internal/dependencies/clock"
	"github.com/mcoot/snakegame-go/internal/id"
	"github.com/mcoot/snakegame-go/internal/model"
	"github.com/mcoot/snakegame-go/internal/storage"
)

// Leaderboard limits
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Service handles score submission and leaderboard queries
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new score Service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Entry is a leaderboard row: a score joined at read time with the
// submitting user's public profile fields
type Entry struct {
	Score    model.Score
	Username string
	Avatar   string
}

// Submit appends a new score for user. Negative points fail validation
// before anything reaches storage.
func (s *Service) Submit(ctx context.Context, user *model.User, points int) (*Entry, error) {
	if points < 0 {
		return nil, &model.ValidationError{Field: "score", Message: "score must be non-negative"}
	}

	score := &model.Score{
		ID:        model.ScoreID(id.New()),
		UserID:    user.ID,
		Points:    points,
		CreatedAt: s.clock.Now().UTC(),
	}

	if err := s.storage.CreateScore(ctx, score); err != nil {
		return nil, err
	}

	s.logger.Info("score submitted",
		slog.String("user_id", string(user.ID)),
		slog.Int("points", points),
	)

	return &Entry{Score: *score, Username: user.Username, Avatar: user.Avatar}, nil
}

// Leaderboard returns up to limit entries ordered by points descending,
// ties newest submission first. A non-positive limit falls back to the
// default and anything above MaxLimit is clamped.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	scores, err := s.storage.TopScores(ctx, limit)
	if err != nil {
		return nil, err
	}

	users := make(map[model.UserID]*model.User)
	entries := make([]*Entry, 0, len(scores))
	for _, sc := range scores {
		user, ok := users[sc.UserID]
		if !ok {
			user, err = s.storage.GetUser(ctx, sc.UserID)
			if err != nil {
				if errors.Is(err, model.ErrUserNotFound) {
					// Submitter removed out-of-band; skip the orphaned row
					continue
				}
				return nil, err
			}
			users[sc.UserID] = user
		}
		entries = append(entries, &Entry{Score: *sc, Username: user.Username, Avatar: user.Avatar})
	}

	return entries, nil
}
