// Package id generates ULID identifiers for users and scores.
//
// ULIDs sort lexicographically by creation time, which the score ledger
// relies on for a stable leaderboard tie-break.
package id

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a new ULID string.
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
