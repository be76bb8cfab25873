package model

import "time"

// ScoreID uniquely identifies a submitted score
type ScoreID string

// Score is a single game result submitted by a user.
// Scores are append-only: they are never updated or deleted, and a user's
// later submissions do not replace earlier ones.
type Score struct {
	ID        ScoreID
	UserID    UserID
	Points    int
	CreatedAt time.Time
}
