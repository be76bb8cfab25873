package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/snakegame-go/internal/model"
	"github.com/mcoot/snakegame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]model.User
	usernameIndex map[string]model.UserID
	scores        []model.Score
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]model.User),
		usernameIndex: make(map[string]model.UserID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check-and-insert under one lock: racing duplicates cannot both pass
	if _, exists := s.usernameIndex[user.Username]; exists {
		return model.ErrUsernameExists
	}

	s.users[user.ID] = *user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *Storage) UpdateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return model.ErrUserNotFound
	}
	s.users[user.ID] = *user
	return nil
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores = append(s.scores, *score)
	return nil
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranked := make([]model.Score, len(s.scores))
	copy(ranked, s.scores)

	// Points descending; equal points ordered by ID descending, which for
	// ULIDs means the newest submission first
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].ID > ranked[j].ID
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}

	result := make([]*model.Score, len(ranked))
	for i := range ranked {
		score := ranked[i]
		result[i] = &score
	}
	return result, nil
}

func (s *Storage) CountScores(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.scores)), nil
}
