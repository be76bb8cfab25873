package score

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/snakegame-go/internal/dependencies/mocks"
	"github.com/mcoot/snakegame-go/internal/id"
	"github.com/mcoot/snakegame-go/internal/model"
	"github.com/mcoot/snakegame-go/internal/storage/memory"
	"github.com/mcoot/snakegame-go/internal/testutil"
)

type ScoreServiceTestSuite struct {
	suite.Suite

	ctx     context.Context
	clock   *mocks.MockClock
	storage *memory.Storage
	service *Service
}

func TestScoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoreServiceTestSuite))
}

func (s *ScoreServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &mocks.MockClock{
		CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.storage = memory.New()
	s.service = New(s.storage, s.clock, testutil.NopLogger())
}

func (s *ScoreServiceTestSuite) createUser(username string) *model.User {
	user := &model.User{
		ID:        model.UserID(id.New()),
		Username:  username,
		Theme:     model.DefaultTheme,
		CreatedAt: s.clock.Now(),
	}
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	return user
}

func (s *ScoreServiceTestSuite) TestSubmitRecordsScore() {
	user := s.createUser("alice")

	entry, err := s.service.Submit(s.ctx, user, 150)
	s.Require().NoError(err)
	s.Require().Equal(150, entry.Score.Points)
	s.Require().Equal(user.ID, entry.Score.UserID)
	s.Require().Equal("alice", entry.Username)
	s.Require().Equal(s.clock.CurrentTime, entry.Score.CreatedAt)

	count, err := s.storage.CountScores(s.ctx)
	s.Require().NoError(err)
	s.Require().EqualValues(1, count)
}

func (s *ScoreServiceTestSuite) TestSubmitZeroIsValid() {
	user := s.createUser("alice")

	entry, err := s.service.Submit(s.ctx, user, 0)
	s.Require().NoError(err)
	s.Require().Equal(0, entry.Score.Points)
}

func (s *ScoreServiceTestSuite) TestSubmitNegativeRejected() {
	user := s.createUser("alice")

	_, err := s.service.Submit(s.ctx, user, -1)
	var verr *model.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Require().Equal("score", verr.Field)

	count, err := s.storage.CountScores(s.ctx)
	s.Require().NoError(err)
	s.Require().EqualValues(0, count)
}

func (s *ScoreServiceTestSuite) TestSubmitAppendsRatherThanReplaces() {
	user := s.createUser("alice")

	_, err := s.service.Submit(s.ctx, user, 100)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, user, 50)
	s.Require().NoError(err)

	count, err := s.storage.CountScores(s.ctx)
	s.Require().NoError(err)
	s.Require().EqualValues(2, count)
}

func (s *ScoreServiceTestSuite) TestLeaderboardOrdering() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	_, err := s.service.Submit(s.ctx, alice, 100)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, bob, 300)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, alice, 200)
	s.Require().NoError(err)

	entries, err := s.service.Leaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Require().Equal(300, entries[0].Score.Points)
	s.Require().Equal("bob", entries[0].Username)
	s.Require().Equal(200, entries[1].Score.Points)
	s.Require().Equal("alice", entries[1].Username)
	s.Require().Equal(100, entries[2].Score.Points)
}

func (s *ScoreServiceTestSuite) TestLeaderboardTiesNewestFirst() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	_, err := s.service.Submit(s.ctx, alice, 200)
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	_, err = s.service.Submit(s.ctx, bob, 200)
	s.Require().NoError(err)

	entries, err := s.service.Leaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Require().Equal("bob", entries[0].Username)
	s.Require().Equal("alice", entries[1].Username)
}

func (s *ScoreServiceTestSuite) TestLeaderboardLimitDefaultsAndClamps() {
	user := s.createUser("alice")
	for i := 0; i < 15; i++ {
		_, err := s.service.Submit(s.ctx, user, i)
		s.Require().NoError(err)
	}

	entries, err := s.service.Leaderboard(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(entries, DefaultLimit)

	entries, err = s.service.Leaderboard(s.ctx, -5)
	s.Require().NoError(err)
	s.Require().Len(entries, DefaultLimit)

	entries, err = s.service.Leaderboard(s.ctx, 1000)
	s.Require().NoError(err)
	s.Require().Len(entries, 15)
}

func (s *ScoreServiceTestSuite) TestLeaderboardEmpty() {
	entries, err := s.service.Leaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Empty(entries)
}

func (s *ScoreServiceTestSuite) TestLeaderboardIncludesAvatar() {
	user := s.createUser("alice")
	user.Avatar = "snake-red"
	s.Require().NoError(s.storage.UpdateUser(s.ctx, user))

	_, err := s.service.Submit(s.ctx, user, 10)
	s.Require().NoError(err)

	entries, err := s.service.Leaderboard(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Require().Equal("snake-red", entries[0].Avatar)
}
