package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	clock   *clock.Fixed
	repo    character.Repository
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
	s.clock = clock.NewFixed(time.Unix(1700000000, 0))

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := character.NewRedis(&character.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = character.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	warrior := testutils.CreateTestWarrior("char-1")
	warrior.CreatedAt = 0

	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: warrior})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), created.Character.CreatedAt)
	s.Equal(int64(1700000000), created.Character.UpdatedAt)
	s.True(s.mr.Exists("character:char-1"))

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Equal(created.Character, got.Character)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	warrior := testutils.CreateTestWarrior("char-1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: warrior})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: warrior})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetUndecodable() {
	s.Require().NoError(s.mr.Set("character:broken", "{not json"))

	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "broken"})
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindCorruptState))
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	warrior := testutils.CreateTestWarrior("char-1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: warrior})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	warrior.Name = "Conan the Renamed"
	updated, err := s.repo.Update(s.ctx, character.UpdateInput{Character: warrior})
	s.Require().NoError(err)
	s.Equal(int64(1700000060), updated.Character.UpdatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Equal("Conan the Renamed", got.Character.Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: testutils.CreateTestWarrior("ghost")})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("character:ghost"))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: testutils.CreateTestWarrior("char-1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("character:char-1"))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetManyKeepsOrderAndReportsMissing() {
	for _, c := range []*entities.Character{
		testutils.CreateTestWarrior("a"),
		testutils.CreateTestMage("b"),
	} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetMany(s.ctx, character.GetManyInput{IDs: []string{"b", "gone", "a"}})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("b", out.Characters[0].ID)
	s.Equal("a", out.Characters[1].ID)
	s.Equal([]string{"gone"}, out.Missing)

	empty, err := s.repo.GetMany(s.ctx, character.GetManyInput{})
	s.Require().NoError(err)
	s.Empty(empty.Characters)
}

func (s *RedisRepositoryTestSuite) TestScan() {
	for _, c := range []*entities.Character{
		testutils.CreateTestWarrior("a"),
		testutils.CreateTestMage("b"),
	} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.mr.Set("character:broken", "]["))
	s.Require().NoError(s.mr.Set("inventory:a", "{}"))

	out, err := s.repo.Scan(s.ctx, character.ScanInput{BatchSize: 1})
	s.Require().NoError(err)
	s.Len(out.Characters, 2)
	s.Equal([]string{"character:broken"}, out.Undecodable)
}
