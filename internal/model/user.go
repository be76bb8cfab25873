package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// DefaultTheme is the theme assigned to accounts that have not picked one
const DefaultTheme = "neon-green"

// User represents a registered player account.
// Username is immutable after creation and unique (case-sensitive).
type User struct {
	ID           UserID
	Username     string
	PasswordHash string // bcrypt hash; the plaintext password is never stored
	DisplayName  string // optional profile field
	Avatar       string // optional profile field
	Theme        string
	CreatedAt    time.Time
}
