package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/character"
	idgenmock "github.com/KirkDiggler/rpg-arena/internal/pkg/idgen/mock"
	characterrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/rpg-arena/internal/repositories/character/mock"
	inventoryrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/inventory"
	inventoryrepomock "github.com/KirkDiggler/rpg-arena/internal/repositories/inventory/mock"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
	userrepomock "github.com/KirkDiggler/rpg-arena/internal/repositories/user/mock"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockCharRepo      *characterrepomock.MockRepository
	mockInventoryRepo *inventoryrepomock.MockRepository
	mockUserRepo      *userrepomock.MockRepository
	mockIDGenerator   *idgenmock.MockGenerator
	orchestrator      *character.Orchestrator
	ctx               context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockInventoryRepo = inventoryrepomock.NewMockRepository(s.ctrl)
	s.mockUserRepo = userrepomock.NewMockRepository(s.ctrl)
	s.mockIDGenerator = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := character.New(&character.Config{
		CharacterRepo: s.mockCharRepo,
		InventoryRepo: s.mockInventoryRepo,
		UserRepo:      s.mockUserRepo,
		IDGenerator:   s.mockIDGenerator,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectUser(u *entities.User) {
	s.mockUserRepo.EXPECT().
		Get(s.ctx, userrepo.GetInput{ID: u.ID}).
		Return(&userrepo.GetOutput{User: u}, nil)
}

func (s *OrchestratorTestSuite) expectIDs(ids ...string) {
	for _, id := range ids {
		s.mockIDGenerator.EXPECT().Generate().Return(id)
	}
}

func (s *OrchestratorTestSuite) createInput() *character.CreateCharacterInput {
	return &character.CreateCharacterInput{
		UserID:       "u1",
		Name:         "Conan",
		Class:        "Warrior",
		StartingItem: "Potion",
	}
}

func (s *OrchestratorTestSuite) TestNewRequiresDependencies() {
	_, err := character.New(&character.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Success() {
	s.expectUser(testutils.CreateTestUser("u1", 1000, "c0"))
	s.expectIDs("char-1", "item-1")

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			s.Equal("char-1", input.Character.ID)
			s.Equal(entities.ClassWarrior, input.Character.Class)
			s.Equal(100, input.Character.Health)
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
	s.mockInventoryRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input inventoryrepo.CreateInput) (*inventoryrepo.CreateOutput, error) {
			s.Equal("char-1", input.Inventory.OwnerID)
			s.Require().Len(input.Inventory.Items, 1)
			s.Equal("item-1", input.Inventory.Items[0].ID)
			s.Equal(entities.ItemPotion, input.Inventory.Items[0].Class)
			return &inventoryrepo.CreateOutput{Inventory: input.Inventory}, nil
		})
	s.mockUserRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input userrepo.UpdateInput) (*userrepo.UpdateOutput, error) {
			s.Equal(int64(840), input.User.Credits)
			s.Equal([]string{"c0", "char-1"}, input.User.CharacterIDs)
			return &userrepo.UpdateOutput{User: input.User}, nil
		})

	out, err := s.orchestrator.CreateCharacter(s.ctx, s.createInput())
	s.Require().NoError(err)
	s.Equal(int64(160), out.Cost)
	s.Equal(int64(840), out.Credits)
	s.Equal("Conan created! Spent 160 credits.", out.Message)
	s.Equal("char-1", out.Character.ID)
	s.Len(out.Inventory.Items, 1)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_InvalidInput() {
	testCases := []struct {
		name   string
		modify func(*character.CreateCharacterInput)
		kind   errors.Kind
	}{
		{"bad class", func(in *character.CreateCharacterInput) { in.Class = "Bard" }, errors.KindInvalidClass},
		{"bad item", func(in *character.CreateCharacterInput) { in.StartingItem = "Wand" }, errors.KindInvalidClass},
		{"empty name", func(in *character.CreateCharacterInput) { in.Name = "  " }, errors.KindInvalidName},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := s.createInput()
			tc.modify(input)

			out, err := s.orchestrator.CreateCharacter(s.ctx, input)
			s.Nil(out)
			s.True(errors.IsKind(err, tc.kind))
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacter_InsufficientCredits() {
	s.expectUser(testutils.CreateTestUser("u1", 159))

	_, err := s.orchestrator.CreateCharacter(s.ctx, s.createInput())
	s.True(errors.IsKind(err, errors.KindInsufficientCredits))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_OwnershipListFull() {
	s.expectUser(testutils.CreateTestUser("u1", 100000, "a", "b", "c", "d", "e"))

	_, err := s.orchestrator.CreateCharacter(s.ctx, s.createInput())
	s.True(errors.IsResourceExhausted(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_InventoryFailureRollsBackCharacter() {
	s.expectUser(testutils.CreateTestUser("u1", 1000))
	s.expectIDs("char-1", "item-1")

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
	s.mockInventoryRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char-1"}).
		Return(&characterrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.CreateCharacter(s.ctx, s.createInput())
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter_UserUpdateFailureRollsBackEverything() {
	s.expectUser(testutils.CreateTestUser("u1", 1000))
	s.expectIDs("char-1", "item-1")

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
	s.mockInventoryRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input inventoryrepo.CreateInput) (*inventoryrepo.CreateOutput, error) {
			return &inventoryrepo.CreateOutput{Inventory: input.Inventory}, nil
		})
	s.mockUserRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))
	gomock.InOrder(
		s.mockInventoryRepo.EXPECT().
			Delete(s.ctx, inventoryrepo.DeleteInput{OwnerID: "char-1"}).
			Return(&inventoryrepo.DeleteOutput{}, nil),
		s.mockCharRepo.EXPECT().
			Delete(s.ctx, characterrepo.DeleteInput{ID: "char-1"}).
			Return(&characterrepo.DeleteOutput{}, nil),
	)

	_, err := s.orchestrator.CreateCharacter(s.ctx, s.createInput())
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestGetCharacter_NotOwned() {
	s.expectUser(testutils.CreateTestUser("u1", 0, "c1"))

	_, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{UserID: "u1", CharacterID: "c2"})
	s.True(errors.IsKind(err, errors.KindOwnershipViolation))
}

func (s *OrchestratorTestSuite) TestGetCharacter_Success() {
	warrior := testutils.CreateTestWarrior("c1")
	s.expectUser(testutils.CreateTestUser("u1", 0, "c1"))
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "c1"}).
		Return(&characterrepo.GetOutput{Character: warrior}, nil)

	out, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{UserID: "u1", CharacterID: "c1"})
	s.Require().NoError(err)
	s.Equal(warrior, out.Character)
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	warrior := testutils.CreateTestWarrior("c1")
	s.expectUser(testutils.CreateTestUser("u1", 0, "c1", "gone"))
	s.mockCharRepo.EXPECT().
		GetMany(s.ctx, characterrepo.GetManyInput{IDs: []string{"c1", "gone"}}).
		Return(&characterrepo.GetManyOutput{
			Characters: []*entities.Character{warrior},
			Missing:    []string{"gone"},
		}, nil)

	out, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal([]*entities.Character{warrior}, out.Characters)
	s.Equal([]string{"gone"}, out.Missing)
}

func (s *OrchestratorTestSuite) TestListCharacters_NoneOwned() {
	s.expectUser(testutils.CreateTestUser("u1", 0))

	out, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *OrchestratorTestSuite) TestUpdateCharacter_Rename() {
	s.expectUser(testutils.CreateTestUser("u1", 0, "c1"))
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "c1"}).
		Return(&characterrepo.GetOutput{Character: testutils.CreateTestWarrior("c1")}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			s.Equal("Thorin", input.Character.Name)
			s.Equal(entities.ClassWarrior, input.Character.Class)
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	out, err := s.orchestrator.UpdateCharacter(s.ctx, &character.UpdateCharacterInput{
		UserID:      "u1",
		CharacterID: "c1",
		Name:        " Thorin ",
		Class:       "warrior",
	})
	s.Require().NoError(err)
	s.Equal("Thorin", out.Character.Name)
}

func (s *OrchestratorTestSuite) TestUpdateCharacter_ClassChangeRejected() {
	s.expectUser(testutils.CreateTestUser("u1", 0, "c1"))
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "c1"}).
		Return(&characterrepo.GetOutput{Character: testutils.CreateTestWarrior("c1")}, nil)

	_, err := s.orchestrator.UpdateCharacter(s.ctx, &character.UpdateCharacterInput{
		UserID:      "u1",
		CharacterID: "c1",
		Name:        "Thorin",
		Class:       "Mage",
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_Refunds() {
	warrior := testutils.CreateTestWarrior("c1")
	warrior.Health = 3
	s.expectUser(testutils.CreateTestUser("u1", 500, "c0", "c1"))
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "c1"}).
		Return(&characterrepo.GetOutput{Character: warrior}, nil)
	s.mockInventoryRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{OwnerID: "c1"}).
		Return(&inventoryrepo.GetOutput{Inventory: entities.NewInventory("c1")}, nil)
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "c1"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockInventoryRepo.EXPECT().
		Delete(s.ctx, inventoryrepo.DeleteInput{OwnerID: "c1"}).
		Return(&inventoryrepo.DeleteOutput{}, nil)
	s.mockUserRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input userrepo.UpdateInput) (*userrepo.UpdateOutput, error) {
			s.Equal(int64(580), input.User.Credits)
			s.Equal([]string{"c0"}, input.User.CharacterIDs)
			return &userrepo.UpdateOutput{User: input.User}, nil
		})

	out, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{UserID: "u1", CharacterID: "c1"})
	s.Require().NoError(err)
	s.Equal(int64(80), out.Refund)
	s.Equal(int64(580), out.Credits)
	s.Equal("Character deleted! Refunded 80 credits.", out.Message)
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_UserUpdateFailureRestoresRecords() {
	warrior := testutils.CreateTestWarrior("c1")
	inv := entities.NewInventory("c1")
	s.expectUser(testutils.CreateTestUser("u1", 500, "c1"))
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "c1"}).
		Return(&characterrepo.GetOutput{Character: warrior}, nil)
	s.mockInventoryRepo.EXPECT().
		Get(s.ctx, inventoryrepo.GetInput{OwnerID: "c1"}).
		Return(&inventoryrepo.GetOutput{Inventory: inv}, nil)
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "c1"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockInventoryRepo.EXPECT().
		Delete(s.ctx, inventoryrepo.DeleteInput{OwnerID: "c1"}).
		Return(&inventoryrepo.DeleteOutput{}, nil)
	s.mockUserRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))
	s.mockCharRepo.EXPECT().
		Create(s.ctx, characterrepo.CreateInput{Character: warrior}).
		Return(&characterrepo.CreateOutput{Character: warrior}, nil)
	s.mockInventoryRepo.EXPECT().
		Create(s.ctx, inventoryrepo.CreateInput{Inventory: inv}).
		Return(&inventoryrepo.CreateOutput{Inventory: inv}, nil)

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{UserID: "u1", CharacterID: "c1"})
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_NotOwned() {
	s.expectUser(testutils.CreateTestUser("u1", 500))

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{UserID: "u1", CharacterID: "c1"})
	s.True(errors.IsKind(err, errors.KindOwnershipViolation))
}

func (s *OrchestratorTestSuite) TestGetCharacterStats() {
	s.expectUser(testutils.CreateTestUser("u1", 0, "c1", "c2", "c3"))
	s.mockCharRepo.EXPECT().
		GetMany(s.ctx, gomock.Any()).
		Return(&characterrepo.GetManyOutput{Characters: []*entities.Character{
			testutils.CreateTestMage("c1"),
			testutils.CreateTestWarrior("c2"),
			testutils.CreateTestMage("c3"),
		}}, nil)

	out, err := s.orchestrator.GetCharacterStats(s.ctx, &character.GetCharacterStatsInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(3, out.Total)
	s.Equal(2, out.ByClass[entities.ClassMage])
	s.Equal(1, out.ByClass[entities.ClassWarrior])
	s.Equal(0, out.ByClass[entities.ClassRogue])
	s.Equal(entities.ClassMage, out.MostPlayed)
	s.Equal(2, out.MostPlayedCount)
}

func (s *OrchestratorTestSuite) TestGetCharacterStats_Empty() {
	s.expectUser(testutils.CreateTestUser("u1", 0))

	out, err := s.orchestrator.GetCharacterStats(s.ctx, &character.GetCharacterStatsInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Zero(out.Total)
	s.Empty(out.MostPlayed)
}

func (s *OrchestratorTestSuite) TestListClasses() {
	out, err := s.orchestrator.ListClasses(s.ctx, &character.ListClassesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Classes, 3)

	costs := map[entities.ClassName]int64{}
	for _, info := range out.Classes {
		costs[info.Stats.Class] = info.Cost
	}
	s.Equal(int64(160), costs[entities.ClassWarrior])
	s.Equal(int64(144), costs[entities.ClassMage])
	s.Equal(int64(152), costs[entities.ClassRogue])
}
