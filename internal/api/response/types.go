package response

import (
	"time"

	"github.com/mcoot/snakegame-go/internal/model"
	"github.com/mcoot/snakegame-go/internal/services/score"
)

// User represents a user in API responses. The password hash never
// leaves the model layer.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name,omitempty"`
	Avatar          string    `json:"avatar,omitempty"`
	ThemePreference string    `json:"theme_preference"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:              string(u.ID),
		Username:        u.Username,
		DisplayName:     u.DisplayName,
		Avatar:          u.Avatar,
		ThemePreference: u.Theme,
		CreatedAt:       u.CreatedAt,
	}
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ScoreEntry represents a leaderboard entry
type ScoreEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoreEntryFromEntry converts a score.Entry to a response ScoreEntry
func ScoreEntryFromEntry(e *score.Entry) ScoreEntry {
	return ScoreEntry{
		ID:        string(e.Score.ID),
		UserID:    string(e.Score.UserID),
		Username:  e.Username,
		Avatar:    e.Avatar,
		Score:     e.Score.Points,
		CreatedAt: e.Score.CreatedAt,
	}
}

// LeaderboardResponse is the response for leaderboard queries
type LeaderboardResponse struct {
	Scores []ScoreEntry `json:"scores"`
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
