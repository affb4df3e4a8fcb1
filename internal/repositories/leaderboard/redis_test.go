package leaderboard_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/leaderboard"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	repo    leaderboard.Repository
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := leaderboard.NewRedis(&leaderboard.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) ensure(userID, name string) {
	_, err := s.repo.Ensure(s.ctx, leaderboard.EnsureInput{UserID: userID, Name: name})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) record(userID string, won bool) {
	_, err := s.repo.RecordResult(s.ctx, leaderboard.RecordResultInput{UserID: userID, Won: won, Points: 10})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestEnsureCreatesEmptyEntry() {
	out, err := s.repo.Ensure(s.ctx, leaderboard.EnsureInput{UserID: "u1", Name: "Alice"})
	s.Require().NoError(err)

	s.Equal("u1", out.Entry.UserID)
	s.Equal("Alice", out.Entry.Name)
	s.Zero(out.Entry.GamesPlayed)
	s.Zero(out.Entry.GamesWon)
	s.Zero(out.Entry.Score)
	s.Equal(int64(1), out.Entry.Rank)
}

func (s *RedisRepositoryTestSuite) TestEnsureKeepsExistingRecord() {
	s.ensure("u1", "Alice")
	s.record("u1", true)

	out, err := s.repo.Ensure(s.ctx, leaderboard.EnsureInput{UserID: "u1", Name: "Renamed"})
	s.Require().NoError(err)
	s.Equal("Alice", out.Entry.Name)
	s.Equal(int64(1), out.Entry.GamesWon)
	s.Equal(int64(10), out.Entry.Score)
}

func (s *RedisRepositoryTestSuite) TestRecordResult() {
	s.ensure("u1", "Alice")

	out, err := s.repo.RecordResult(s.ctx, leaderboard.RecordResultInput{UserID: "u1", Won: true, Points: 10})
	s.Require().NoError(err)
	s.Equal(int64(1), out.Entry.GamesPlayed)
	s.Equal(int64(1), out.Entry.GamesWon)
	s.Equal(int64(10), out.Entry.Score)

	out, err = s.repo.RecordResult(s.ctx, leaderboard.RecordResultInput{UserID: "u1", Won: false, Points: 10})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Entry.GamesPlayed)
	s.Equal(int64(1), out.Entry.GamesWon)
	s.Equal(int64(10), out.Entry.Score)
}

func (s *RedisRepositoryTestSuite) TestRecordResultUnknownUser() {
	_, err := s.repo.RecordResult(s.ctx, leaderboard.RecordResultInput{UserID: "ghost", Won: true, Points: 10})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("leaderboard:user:ghost"))
}

func (s *RedisRepositoryTestSuite) TestListOrdersByScore() {
	s.ensure("u1", "Alice")
	s.ensure("u2", "Bob")
	s.ensure("u3", "Carol")

	s.record("u2", true)
	s.record("u2", true)
	s.record("u3", true)
	s.record("u1", false)

	out, err := s.repo.List(s.ctx, leaderboard.ListInput{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)

	s.Equal("u2", out.Entries[0].UserID)
	s.Equal(int64(20), out.Entries[0].Score)
	s.Equal(int64(1), out.Entries[0].Rank)
	s.Equal("u3", out.Entries[1].UserID)
	s.Equal(int64(2), out.Entries[1].Rank)
	s.Equal("u1", out.Entries[2].UserID)
	s.Equal(int64(1), out.Entries[2].GamesPlayed)
	s.Equal(int64(3), out.Entries[2].Rank)

	top, err := s.repo.List(s.ctx, leaderboard.ListInput{Limit: 1})
	s.Require().NoError(err)
	s.Len(top.Entries, 1)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, leaderboard.ListInput{Limit: 10})
	s.Require().NoError(err)
	s.Empty(out.Entries)

	_, err = s.repo.List(s.ctx, leaderboard.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetRank() {
	s.ensure("u1", "Alice")
	s.ensure("u2", "Bob")
	s.record("u2", true)

	out, err := s.repo.Get(s.ctx, leaderboard.GetInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Entry.Rank)

	_, err = s.repo.Get(s.ctx, leaderboard.GetInput{UserID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCorruptCounter() {
	s.ensure("u1", "Alice")
	s.mr.HSet("leaderboard:user:u1", "games_played", "many")

	_, err := s.repo.Get(s.ctx, leaderboard.GetInput{UserID: "u1"})
	s.True(errors.IsKind(err, errors.KindCorruptState))
}
