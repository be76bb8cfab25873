package redis

import (
	"fmt"

	"github.com/mcoot/snakegame-go/internal/model"
)

// Key prefix for all game data
const keyPrefix = "snakegame"

// userKey returns the Redis key for a User document
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index.
// These keys are written with SETNX, which makes them the authoritative
// username uniqueness constraint.
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// scoreKey returns the Redis key for a Score document
func scoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// leaderboardKey returns the Redis key for the score-ranked ZSET
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}
