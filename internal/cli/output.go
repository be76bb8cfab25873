package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case ScoreEntry:
		o.printScoreEntry(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name"`
	Avatar          string    `json:"avatar"`
	ThemePreference string    `json:"theme_preference"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthResult combines user and token
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ScoreEntry response type
type ScoreEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Leaderboard response type
type Leaderboard struct {
	Scores []ScoreEntry `json:"scores"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	name := u.DisplayName
	if name == "" {
		name = u.Username
	}
	fmt.Printf("User: %s (%s)\n", name, u.ID)
	fmt.Printf("Username: %s\n", u.Username)
	if u.Avatar != "" {
		fmt.Printf("Avatar: %s\n", u.Avatar)
	}
	fmt.Printf("Theme: %s\n", u.ThemePreference)
	fmt.Printf("Joined: %s\n", u.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printScoreEntry(e ScoreEntry) {
	fmt.Printf("Score: %d by %s at %s\n", e.Score, e.Username, e.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Scores) == 0 {
		fmt.Println("No scores yet")
		return
	}
	for i, e := range l.Scores {
		fmt.Printf("%3d. %-20s %8d  %s\n", i+1, e.Username, e.Score, e.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
