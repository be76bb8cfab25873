package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/snakegame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := &model.User{
		ID:           "user-1",
		Username:     "alice",
		PasswordHash: "hashed",
		Theme:        model.DefaultTheme,
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.PasswordHash, retrieved.PasswordHash)
	s.Equal(model.DefaultTheme, retrieved.Theme)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := &model.User{ID: "user-1", Username: "alice"}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)

	_, err = s.storage.GetUserByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestCreateUserDuplicateUsername() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{ID: "user-1", Username: "alice"}))

	err := s.storage.CreateUser(s.ctx, &model.User{ID: "user-2", Username: "alice"})
	s.ErrorIs(err, model.ErrUsernameExists)

	// Winner's record is intact
	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
}

func (s *StorageSuite) TestUsernamesAreCaseSensitive() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, &model.User{ID: "user-1", Username: "alice"}))
	s.NoError(s.storage.CreateUser(s.ctx, &model.User{ID: "user-2", Username: "Alice"}))
}

func (s *StorageSuite) TestUpdateUser() {
	user := &model.User{ID: "user-1", Username: "alice"}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	user.DisplayName = "Alice"
	user.Theme = "cyber-punk"
	s.Require().NoError(s.storage.UpdateUser(s.ctx, user))

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.DisplayName)
	s.Equal("cyber-punk", retrieved.Theme)
}

func (s *StorageSuite) TestUpdateUserNotFound() {
	err := s.storage.UpdateUser(s.ctx, &model.User{ID: "ghost", Username: "ghost"})
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Score tests

func (s *StorageSuite) TestCreateScoreAndTopScores() {
	scores := []model.Score{
		{ID: "0001", UserID: "user-1", Points: 100, CreatedAt: time.Now().UTC()},
		{ID: "0002", UserID: "user-2", Points: 200, CreatedAt: time.Now().UTC()},
		{ID: "0003", UserID: "user-1", Points: 150, CreatedAt: time.Now().UTC()},
	}
	for i := range scores {
		s.Require().NoError(s.storage.CreateScore(s.ctx, &scores[i]))
	}

	top, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(200, top[0].Points)
	s.Equal(150, top[1].Points)
	s.Equal(100, top[2].Points)
}

func (s *StorageSuite) TestTopScoresTiesNewestFirst() {
	s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{ID: "0001", UserID: "user-1", Points: 100}))
	s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{ID: "0002", UserID: "user-2", Points: 100}))

	top, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(model.ScoreID("0002"), top[0].ID)
	s.Equal(model.ScoreID("0001"), top[1].ID)
}

func (s *StorageSuite) TestTopScoresLimit() {
	for i := 0; i < 5; i++ {
		score := &model.Score{
			ID:     model.ScoreID(fmt.Sprintf("%04d", i)),
			UserID: "user-1",
			Points: i * 10,
		}
		s.Require().NoError(s.storage.CreateScore(s.ctx, score))
	}

	top, err := s.storage.TopScores(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(40, top[0].Points)
	s.Equal(30, top[1].Points)
}

func (s *StorageSuite) TestTopScoresEmpty() {
	top, err := s.storage.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(top)
}

func (s *StorageSuite) TestCountScores() {
	count, err := s.storage.CountScores(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(0, count)

	s.Require().NoError(s.storage.CreateScore(s.ctx, &model.Score{ID: "0001", UserID: "user-1", Points: 10}))

	count, err = s.storage.CountScores(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(1, count)
}
