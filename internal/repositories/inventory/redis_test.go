package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/inventory"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	repo    inventory.Repository
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

	repo, err := inventory.NewRedis(&inventory.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateGetRoundTrip() {
	inv := testutils.CreateTestInventory("char-1",
		entities.Item{ID: "i1", Name: "Potion", Class: entities.ItemPotion, Value: 30},
		entities.Item{ID: "i2", Name: "Excalibur", Class: entities.ItemSword, Value: 900, Custom: true},
	)

	created, err := s.repo.Create(s.ctx, inventory.CreateInput{Inventory: inv})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), created.Inventory.UpdatedAt)

	got, err := s.repo.Get(s.ctx, inventory.GetInput{OwnerID: "char-1"})
	s.Require().NoError(err)
	s.Equal(created.Inventory, got.Inventory)
	s.Equal("i2", got.Inventory.Items[1].ID)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, inventory.CreateInput{Inventory: entities.NewInventory("char-1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, inventory.CreateInput{Inventory: entities.NewInventory("char-1")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestEmptyInventoryDecodesToEmptySlice() {
	_, err := s.repo.Create(s.ctx, inventory.CreateInput{Inventory: &entities.Inventory{OwnerID: "char-1"}})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, inventory.GetInput{OwnerID: "char-1"})
	s.Require().NoError(err)
	s.NotNil(got.Inventory.Items)
	s.Empty(got.Inventory.Items)
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, inventory.CreateInput{Inventory: entities.NewInventory("char-1")})
	s.Require().NoError(err)

	inv := testutils.CreateTestInventory("char-1",
		entities.Item{ID: "i1", Name: "Shield", Class: entities.ItemShield, Value: 5})
	_, err = s.repo.Update(s.ctx, inventory.UpdateInput{Inventory: inv})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, inventory.GetInput{OwnerID: "char-1"})
	s.Require().NoError(err)
	s.Len(got.Inventory.Items, 1)

	_, err = s.repo.Update(s.ctx, inventory.UpdateInput{Inventory: entities.NewInventory("ghost")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteAndNotFound() {
	_, err := s.repo.Create(s.ctx, inventory.CreateInput{Inventory: entities.NewInventory("char-1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{OwnerID: "char-1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("inventory:char-1"))

	_, err = s.repo.Get(s.ctx, inventory.GetInput{OwnerID: "char-1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{OwnerID: "char-1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, inventory.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, inventory.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCorruptDocument() {
	s.Require().NoError(s.mr.Set("inventory:char-1", "not-json"))

	_, err := s.repo.Get(s.ctx, inventory.GetInput{OwnerID: "char-1"})
	s.True(errors.IsKind(err, errors.KindCorruptState))
}
