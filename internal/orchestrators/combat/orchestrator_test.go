package combat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-arena/internal/engine/mock"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/rpg-arena/internal/pkg/idgen/mock"
	battlerepo "github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
	battlerepomock "github.com/KirkDiggler/rpg-arena/internal/repositories/battles/mock"
	characterrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/rpg-arena/internal/repositories/character/mock"
	leaderboardrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/leaderboard"
	leaderboardrepomock "github.com/KirkDiggler/rpg-arena/internal/repositories/leaderboard/mock"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
	userrepomock "github.com/KirkDiggler/rpg-arena/internal/repositories/user/mock"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockUserRepo        *userrepomock.MockRepository
	mockCharRepo        *characterrepomock.MockRepository
	mockBattleRepo      *battlerepomock.MockRepository
	mockLeaderboardRepo *leaderboardrepomock.MockRepository
	mockEngine          *enginemock.MockEngine
	mockIDGenerator     *idgenmock.MockGenerator
	orchestrator        combat.Service
	ctx                 context.Context

	warrior *entities.Character
	mage    *entities.Character
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUserRepo = userrepomock.NewMockRepository(s.ctrl)
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockBattleRepo = battlerepomock.NewMockRepository(s.ctrl)
	s.mockLeaderboardRepo = leaderboardrepomock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockIDGenerator = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := combat.NewOrchestrator(&combat.Config{
		UserRepo:        s.mockUserRepo,
		CharacterRepo:   s.mockCharRepo,
		BattleRepo:      s.mockBattleRepo,
		LeaderboardRepo: s.mockLeaderboardRepo,
		Engine:          s.mockEngine,
		IDGenerator:     s.mockIDGenerator,
		Clock:           clock.NewFixed(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator

	s.warrior = testutils.CreateTestWarrior("c1")
	s.mage = testutils.CreateTestMage("c2")
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectOwner(ids ...string) {
	s.mockUserRepo.EXPECT().
		Get(s.ctx, userrepo.GetInput{ID: testutils.TestUserID}).
		Return(&userrepo.GetOutput{User: testutils.CreateTestUser(testutils.TestUserID, 0, ids...)}, nil)
}

func (s *OrchestratorTestSuite) expectFighters() {
	s.mockCharRepo.EXPECT().
		GetMany(s.ctx, characterrepo.GetManyInput{IDs: []string{"c1", "c2"}}).
		Return(&characterrepo.GetManyOutput{Characters: []*entities.Character{s.warrior, s.mage}}, nil)
}

func (s *OrchestratorTestSuite) resolved(status entities.CombatStatus) *engine.ResolveCombatOutput {
	endWarrior := s.warrior.Clone()
	endWarrior.Health = 60
	endMage := s.mage.Clone()
	out := &engine.ResolveCombatOutput{
		Status:  status,
		Turns:   5,
		Log:     []entities.TurnEntry{{Turn: 1, ActorID: "c1", TargetID: "c2", Hit: true, Damage: 18}},
		Summary: "Stalemate",
		First:   endWarrior,
		Second:  endMage,
	}
	if status == entities.CombatWon {
		endMage.Health = 0
		out.WinnerID = "c1"
		out.LoserID = "c2"
		out.Summary = "Conan wins after 5 turns"
	}
	return out
}

func (s *OrchestratorTestSuite) startInput() *combat.StartCombatInput {
	return &combat.StartCombatInput{UserID: testutils.TestUserID, FirstID: "c1", SecondID: "c2"}
}

func (s *OrchestratorTestSuite) TestStartCombat_Win() {
	s.expectOwner("c1", "c2")
	s.expectFighters()
	s.mockEngine.EXPECT().
		ResolveCombat(s.ctx, &engine.ResolveCombatInput{First: s.warrior, Second: s.mage}).
		Return(s.resolved(entities.CombatWon), nil)
	s.mockIDGenerator.EXPECT().Generate().Return("battle-1")

	var saved *entities.BattleReport
	s.mockBattleRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *battlerepo.SaveInput) (*battlerepo.SaveOutput, error) {
			saved = input.Report
			return &battlerepo.SaveOutput{}, nil
		})
	s.mockLeaderboardRepo.EXPECT().
		RecordResult(s.ctx, leaderboardrepo.RecordResultInput{UserID: testutils.TestUserID, Won: true, Points: combat.ScorePerVictory}).
		Return(&leaderboardrepo.RecordResultOutput{Entry: &entities.LeaderboardEntry{
			UserID: testutils.TestUserID, GamesPlayed: 1, GamesWon: 1, Score: 10, Rank: 1,
		}}, nil)

	out, err := s.orchestrator.StartCombat(s.ctx, s.startInput())
	s.Require().NoError(err)

	s.Equal(saved, out.Report)
	s.Equal("battle-1", out.Report.ID)
	s.Equal(testutils.TestUserID, out.Report.UserID)
	s.Equal(entities.CombatWon, out.Report.Status)
	s.Equal("c1", out.Report.WinnerID)
	s.Equal(int64(1700000000), out.Report.CreatedAt)
	s.Equal([]entities.Participant{
		{CharacterID: "c1", Name: "Conan", Class: entities.ClassWarrior, StartHealth: 100, EndHealth: 60},
		{CharacterID: "c2", Name: "Merlin", Class: entities.ClassMage, StartHealth: 80, EndHealth: 0},
	}, out.Report.Participants)
	s.Equal(int64(10), out.Standing.Score)
	s.Equal(60, out.First.Health)
	s.Equal(100, s.warrior.Health, "loaded snapshot is not modified")
}

func (s *OrchestratorTestSuite) TestStartCombat_StalemateScoresNothing() {
	s.expectOwner("c1", "c2")
	s.expectFighters()
	s.mockEngine.EXPECT().
		ResolveCombat(s.ctx, gomock.Any()).
		Return(s.resolved(entities.CombatStalemate), nil)
	s.mockIDGenerator.EXPECT().Generate().Return("battle-1")
	s.mockBattleRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&battlerepo.SaveOutput{}, nil)
	s.mockLeaderboardRepo.EXPECT().
		RecordResult(s.ctx, leaderboardrepo.RecordResultInput{UserID: testutils.TestUserID, Won: false, Points: combat.ScorePerVictory}).
		Return(&leaderboardrepo.RecordResultOutput{Entry: &entities.LeaderboardEntry{GamesPlayed: 1}}, nil)

	out, err := s.orchestrator.StartCombat(s.ctx, s.startInput())
	s.Require().NoError(err)
	s.Empty(out.Report.WinnerID)
	s.Equal(entities.CombatStalemate, out.Report.Status)
}

func (s *OrchestratorTestSuite) TestStartCombat_CreatesMissingLeaderboardEntry() {
	s.expectOwner("c1", "c2")
	s.expectFighters()
	s.mockEngine.EXPECT().ResolveCombat(s.ctx, gomock.Any()).Return(s.resolved(entities.CombatWon), nil)
	s.mockIDGenerator.EXPECT().Generate().Return("battle-1")
	s.mockBattleRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(&battlerepo.SaveOutput{}, nil)

	record := leaderboardrepo.RecordResultInput{UserID: testutils.TestUserID, Won: true, Points: combat.ScorePerVictory}
	gomock.InOrder(
		s.mockLeaderboardRepo.EXPECT().
			RecordResult(s.ctx, record).
			Return(nil, errors.NotFound("no entry")),
		s.mockLeaderboardRepo.EXPECT().
			Ensure(s.ctx, leaderboardrepo.EnsureInput{UserID: testutils.TestUserID, Name: "Player " + testutils.TestUserID}).
			Return(&leaderboardrepo.EnsureOutput{Entry: &entities.LeaderboardEntry{}}, nil),
		s.mockLeaderboardRepo.EXPECT().
			RecordResult(s.ctx, record).
			Return(&leaderboardrepo.RecordResultOutput{Entry: &entities.LeaderboardEntry{Score: 10}}, nil),
	)

	out, err := s.orchestrator.StartCombat(s.ctx, s.startInput())
	s.Require().NoError(err)
	s.Equal(int64(10), out.Standing.Score)
}

func (s *OrchestratorTestSuite) TestStartCombat_LeaderboardFailureRecordsNothing() {
	history := battlerepo.NewInMemory()
	orchestrator, err := combat.NewOrchestrator(&combat.Config{
		UserRepo:        s.mockUserRepo,
		CharacterRepo:   s.mockCharRepo,
		BattleRepo:      history,
		LeaderboardRepo: s.mockLeaderboardRepo,
		Engine:          s.mockEngine,
		IDGenerator:     s.mockIDGenerator,
		Clock:           clock.NewFixed(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)

	s.expectOwner("c1", "c2")
	s.expectFighters()
	s.mockEngine.EXPECT().ResolveCombat(s.ctx, gomock.Any()).Return(s.resolved(entities.CombatWon), nil)
	s.mockIDGenerator.EXPECT().Generate().Return("battle-1")
	s.mockLeaderboardRepo.EXPECT().
		RecordResult(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	out, err := orchestrator.StartCombat(s.ctx, s.startInput())
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsInternal(err))

	listed, err := history.ListByUser(s.ctx, &battlerepo.ListByUserInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Empty(listed.Reports)

	_, err = history.Get(s.ctx, &battlerepo.GetInput{ID: "battle-1"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestStartCombat_SameCharacter() {
	_, err := s.orchestrator.StartCombat(s.ctx, &combat.StartCombatInput{
		UserID:   testutils.TestUserID,
		FirstID:  "c1",
		SecondID: "c1",
	})
	s.True(errors.IsKind(err, errors.KindPreconditionViolation))
}

func (s *OrchestratorTestSuite) TestStartCombat_NotOwned() {
	s.expectOwner("c1")

	_, err := s.orchestrator.StartCombat(s.ctx, s.startInput())
	s.True(errors.IsKind(err, errors.KindOwnershipViolation))
}

func (s *OrchestratorTestSuite) TestStartCombat_MissingRecord() {
	s.expectOwner("c1", "c2")
	s.mockCharRepo.EXPECT().
		GetMany(s.ctx, gomock.Any()).
		Return(&characterrepo.GetManyOutput{
			Characters: []*entities.Character{s.warrior},
			Missing:    []string{"c2"},
		}, nil)

	_, err := s.orchestrator.StartCombat(s.ctx, s.startInput())
	s.True(errors.IsKind(err, errors.KindNotFound))
}

func (s *OrchestratorTestSuite) TestStartCombat_EngineRejectsDeadFighter() {
	s.expectOwner("c1", "c2")
	s.expectFighters()
	s.mockEngine.EXPECT().
		ResolveCombat(s.ctx, gomock.Any()).
		Return(nil, errors.PreconditionViolation("Merlin has no health left"))

	_, err := s.orchestrator.StartCombat(s.ctx, s.startInput())
	s.True(errors.IsKind(err, errors.KindPreconditionViolation))
}

func (s *OrchestratorTestSuite) TestGetCombat() {
	report := &entities.BattleReport{ID: "battle-1", UserID: testutils.TestUserID}
	s.mockBattleRepo.EXPECT().
		Get(s.ctx, &battlerepo.GetInput{ID: "battle-1"}).
		Return(&battlerepo.GetOutput{Report: report}, nil)

	out, err := s.orchestrator.GetCombat(s.ctx, &combat.GetCombatInput{UserID: testutils.TestUserID, BattleID: "battle-1"})
	s.Require().NoError(err)
	s.Equal(report, out.Report)
}

func (s *OrchestratorTestSuite) TestGetCombat_OtherUsersBattle() {
	s.mockBattleRepo.EXPECT().
		Get(s.ctx, &battlerepo.GetInput{ID: "battle-1"}).
		Return(&battlerepo.GetOutput{Report: &entities.BattleReport{ID: "battle-1", UserID: "someone-else"}}, nil)

	_, err := s.orchestrator.GetCombat(s.ctx, &combat.GetCombatInput{UserID: testutils.TestUserID, BattleID: "battle-1"})
	s.True(errors.IsKind(err, errors.KindOwnershipViolation))
}

func (s *OrchestratorTestSuite) TestListCombatsDefaultsLimit() {
	s.mockBattleRepo.EXPECT().
		ListByUser(s.ctx, &battlerepo.ListByUserInput{UserID: testutils.TestUserID, Limit: combat.DefaultListLimit}).
		Return(&battlerepo.ListByUserOutput{Reports: []*entities.BattleReport{}}, nil)

	out, err := s.orchestrator.ListCombats(s.ctx, &combat.ListCombatsInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Empty(out.Reports)
}
