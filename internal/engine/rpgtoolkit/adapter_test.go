package rpgtoolkit_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// fixedRoller returns the same face for every roll of a given die size
type fixedRoller struct {
	faces map[int]int
	calls int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.calls++
	face, ok := r.faces[size]
	if !ok {
		return 0, stderrors.New("unexpected die size")
	}
	return face, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, face)
	}
	return out, nil
}

// alwaysHit lands every attack with no damage variance
func alwaysHit() *fixedRoller {
	return &fixedRoller{faces: map[int]int{100: 1, 21: 11}}
}

// alwaysMiss rolls above the highest possible hit chance
func alwaysMiss() *fixedRoller {
	return &fixedRoller{faces: map[int]int{100: 100, 21: 11}}
}

type AdapterTestSuite struct {
	suite.Suite
	ctx     context.Context
	warrior *entities.Character
	mage    *entities.Character
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.warrior = &entities.Character{
		ID: "warrior-1", Name: "Conan", Class: entities.ClassWarrior,
		Health: 100, MaxHealth: 100, Attack: 20, Defense: 10, Speed: 8,
		Special: 50, SpecialName: "stamina",
	}
	s.mage = &entities.Character{
		ID: "mage-1", Name: "Merlin", Class: entities.ClassMage,
		Health: 80, MaxHealth: 80, Attack: 15, Defense: 5, Speed: 12,
		Special: 100, SpecialName: "mana",
	}
}

func (s *AdapterTestSuite) newAdapter(roller dice.Roller, maxTurns int) *rpgtoolkit.Adapter {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: roller,
		MaxTurns:   maxTurns,
	})
	s.Require().NoError(err)
	return adapter
}

func (s *AdapterTestSuite) TestNewAdapterRequiresRoller() {
	_, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = rpgtoolkit.NewAdapter(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestWarriorBeatsMage() {
	adapter := s.newAdapter(alwaysHit(), 0)

	out, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.warrior,
		Second: s.mage,
	})
	s.Require().NoError(err)

	// warrior deals 20-5/2=18 per hit, mage deals 15-10/2=10
	s.Equal(entities.CombatWon, out.Status)
	s.Equal("warrior-1", out.WinnerID)
	s.Equal("mage-1", out.LoserID)
	s.Equal(5, out.Turns)
	s.Equal(0, out.Second.Health)
	s.Equal(60, out.First.Health)

	// four full turns plus the killing blow; the mage never retaliates on turn 5
	s.Len(out.Log, 9)
	last := out.Log[len(out.Log)-1]
	s.Equal("warrior-1", last.ActorID)
	s.Equal(5, last.Turn)
	s.Equal(0, last.TargetHealth)
	s.Equal("Conan wins after 5 turns", out.Summary)
}

func (s *AdapterTestSuite) TestLogHasOneEntryPerSurvivingActor() {
	adapter := s.newAdapter(alwaysHit(), 0)

	out, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.mage,
		Second: s.warrior,
	})
	s.Require().NoError(err)

	// the mage attacks first but still loses on turn 5, after acting in it
	s.Equal("warrior-1", out.WinnerID)
	s.Equal(5, out.Turns)
	s.Len(out.Log, 10)

	perTurn := map[int]int{}
	for _, entry := range out.Log {
		perTurn[entry.Turn]++
		s.True(entry.Hit)
		s.NotEmpty(entry.Message)
	}
	for turn := 1; turn <= 5; turn++ {
		s.Equal(2, perTurn[turn])
	}
}

func (s *AdapterTestSuite) TestDefenderKilledDoesNotRetaliate() {
	s.mage.Health = 10
	adapter := s.newAdapter(alwaysHit(), 0)

	out, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.warrior,
		Second: s.mage,
	})
	s.Require().NoError(err)

	s.Equal("warrior-1", out.WinnerID)
	s.Equal(1, out.Turns)
	s.Require().Len(out.Log, 1)
	s.Equal(100, out.First.Health, "the warrior must not take damage")
}

func (s *AdapterTestSuite) TestInputsAreNotModified() {
	adapter := s.newAdapter(alwaysHit(), 0)

	_, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.warrior,
		Second: s.mage,
	})
	s.Require().NoError(err)

	s.Equal(100, s.warrior.Health)
	s.Equal(80, s.mage.Health)
}

func (s *AdapterTestSuite) TestStalemateAtTurnCap() {
	roller := alwaysMiss()
	adapter := s.newAdapter(roller, 3)

	out, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.warrior,
		Second: s.mage,
	})
	s.Require().NoError(err)

	s.Equal(entities.CombatStalemate, out.Status)
	s.Empty(out.WinnerID)
	s.Equal(3, out.Turns)
	s.Len(out.Log, 6)
	s.Equal(6, roller.calls, "misses never roll damage")
	for _, entry := range out.Log {
		s.False(entry.Hit)
		s.Zero(entry.Damage)
	}
}

func (s *AdapterTestSuite) TestVarianceBand() {
	adapter := s.newAdapter(&fixedRoller{faces: map[int]int{100: 1, 21: 21}}, 0)

	out, err := adapter.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		Turn:     1,
		Attacker: s.warrior,
		Defender: s.mage,
	})
	s.Require().NoError(err)

	// 18 * 110 / 100 floors to 19
	s.Equal(19, out.Entry.Damage)
	s.Equal(61, s.mage.Health)
	s.Equal("Turn 1: Conan hits Merlin for 19 damage (61 HP left)", out.Entry.Message)
}

func (s *AdapterTestSuite) TestSameParticipantRejected() {
	roller := alwaysHit()
	adapter := s.newAdapter(roller, 0)

	out, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.warrior,
		Second: s.warrior.Clone(),
	})
	s.Nil(out)
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindPreconditionViolation))
	s.Zero(roller.calls, "no turn may run")
}

func (s *AdapterTestSuite) TestZeroHealthParticipantRejected() {
	s.mage.Health = 0
	adapter := s.newAdapter(alwaysHit(), 0)

	_, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.warrior,
		Second: s.mage,
	})
	s.True(errors.IsKind(err, errors.KindPreconditionViolation))
}

func (s *AdapterTestSuite) TestCorruptParticipantRejected() {
	s.mage.MaxHealth = -1
	adapter := s.newAdapter(alwaysHit(), 0)

	_, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.warrior,
		Second: s.mage,
	})
	s.True(errors.IsKind(err, errors.KindCorruptState))
	s.True(errors.IsDataLoss(err))
}

func (s *AdapterTestSuite) TestRollerFailure() {
	adapter := s.newAdapter(&fixedRoller{faces: map[int]int{}}, 0)

	_, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
		First:  s.warrior,
		Second: s.mage,
	})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *AdapterTestSuite) TestRandomCombatAlwaysHasOneWinner() {
	adapter := s.newAdapter(dice.DefaultRoller, 0)

	for i := 0; i < 200; i++ {
		out, err := adapter.ResolveCombat(s.ctx, &engine.ResolveCombatInput{
			First:  s.warrior,
			Second: s.mage,
		})
		s.Require().NoError(err)
		s.Require().Equal(entities.CombatWon, out.Status)
		s.Contains([]string{"warrior-1", "mage-1"}, out.WinnerID)
		s.NotEqual(out.WinnerID, out.LoserID)

		if out.WinnerID == "warrior-1" {
			s.Zero(out.Second.Health)
			s.Positive(out.First.Health)
			s.Len(out.Log, 2*out.Turns-1)
		} else {
			s.Zero(out.First.Health)
			s.Positive(out.Second.Health)
			s.Len(out.Log, 2*out.Turns)
		}
	}
}
