package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/snakegame-go/internal/model"
	"github.com/mcoot/snakegame-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// Users and scores are stored as JSON documents. The username index is
// written with SETNX so the store itself rejects the loser of a racing
// duplicate registration, and the leaderboard is a ZSET keyed by points.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// SETNX on the username index is the atomic check-and-insert; exactly
	// one of two racing registrations claims the name
	claimed, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), string(user.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrUsernameExists
	}

	if err := s.client.Set(ctx, userKey(user.ID), data, 0).Err(); err != nil {
		// Release the claimed name so the username is not wedged
		s.client.Del(ctx, usernameIndexKey(user.Username))
		return err
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	userID, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(userID))
}

func (s *Storage) UpdateUser(ctx context.Context, user *model.User) error {
	exists, err := s.client.Exists(ctx, userKey(user.ID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrUserNotFound
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, 0).Err()
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	// Pipeline for atomic document save + leaderboard update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, scoreKey(score.ID), data, 0)
	pipe.ZAdd(ctx, leaderboardKey(), redis.Z{
		Score:  float64(score.Points),
		Member: string(score.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]*model.Score, error) {
	if limit <= 0 {
		return []*model.Score{}, nil
	}

	// ZREVRANGE orders by points descending; equal points fall back to
	// reverse-lexicographic member order, which for ULID members is the
	// newest submission first
	ids, err := s.client.ZRevRange(ctx, leaderboardKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Score{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = scoreKey(model.ScoreID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]*model.Score, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // document removed out-of-band
		}
		var score model.Score
		if err := json.Unmarshal([]byte(val.(string)), &score); err != nil {
			continue // skip invalid data
		}
		scores = append(scores, &score)
	}

	return scores, nil
}

func (s *Storage) CountScores(ctx context.Context) (int64, error) {
	return s.client.ZCard(ctx, leaderboardKey()).Result()
}
