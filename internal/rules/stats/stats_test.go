package stats_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
)

type StatsTestSuite struct {
	suite.Suite
}

func TestStatsSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (s *StatsTestSuite) TestInstantiateMatchesCatalog() {
	for class, cs := range stats.Catalog() {
		s.Run(string(class), func() {
			c, err := stats.Instantiate("Hero", class)
			s.Require().NoError(err)

			s.Equal(class, c.Class)
			s.Equal(cs.BaseHealth, c.Health)
			s.Equal(cs.BaseHealth, c.MaxHealth)
			s.Equal(cs.BaseAttack, c.Attack)
			s.Equal(cs.BaseDefense, c.Defense)
			s.Equal(cs.BaseSpeed, c.Speed)
			s.Equal(cs.SpecialBase, c.Special)
			s.Equal(cs.SpecialName, c.SpecialName)
			s.NoError(c.Validate())
		})
	}
}

func (s *StatsTestSuite) TestInstantiateUnknownClass() {
	_, err := stats.Instantiate("Hero", "Bard")
	s.Require().Error(err)
	s.True(errors.IsKind(err, errors.KindInvalidClass))
}

func (s *StatsTestSuite) TestInstantiateInvalidName() {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", strings.Repeat("a", stats.MaxNameLength+1)},
		{"markup", "<script>"},
		{"punctuation", "Conan!"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := stats.Instantiate(tc.input, entities.ClassWarrior)
			s.Require().Error(err)
			s.True(errors.IsKind(err, errors.KindInvalidName))
		})
	}
}

func (s *StatsTestSuite) TestValidateNameNormalizes() {
	// "e" followed by a combining acute accent composes to a single rune
	name, err := stats.ValidateName("  Jose\u0301 O'Brien-Smith_2 ")
	s.Require().NoError(err)
	s.Equal("Jos\u00e9 O'Brien-Smith_2", name)

	exact := strings.Repeat("é", stats.MaxNameLength)
	_, err = stats.ValidateName(exact)
	s.NoError(err)
}

func (s *StatsTestSuite) TestParseClass() {
	class, err := stats.ParseClass(" warrior ")
	s.Require().NoError(err)
	s.Equal(entities.ClassWarrior, class)

	_, err = stats.ParseClass("paladin")
	s.True(errors.IsKind(err, errors.KindInvalidClass))
}

func (s *StatsTestSuite) TestCostForClass() {
	testCases := []struct {
		class entities.ClassName
		cost  int64
	}{
		{entities.ClassWarrior, 160},
		{entities.ClassMage, 144},
		{entities.ClassRogue, 152},
	}

	for _, tc := range testCases {
		s.Run(string(tc.class), func() {
			cost, err := stats.CostForClass(tc.class)
			s.Require().NoError(err)
			s.Equal(tc.cost, cost)
		})
	}
}

func (s *StatsTestSuite) TestComputeCostIsStable() {
	warrior, err := stats.Instantiate("Conan", entities.ClassWarrior)
	s.Require().NoError(err)

	first, err := stats.ComputeCost(warrior)
	s.Require().NoError(err)
	for i := 0; i < 10; i++ {
		again, err := stats.ComputeCost(warrior)
		s.Require().NoError(err)
		s.Equal(first, again)
	}
}

func (s *StatsTestSuite) TestComputeCostIgnoresRuntimeFields() {
	warrior, err := stats.Instantiate("Conan", entities.ClassWarrior)
	s.Require().NoError(err)
	base, err := stats.ComputeCost(warrior)
	s.Require().NoError(err)

	warrior.Health = 3
	warrior.Attack += 15
	warrior.Defense += 5

	after, err := stats.ComputeCost(warrior)
	s.Require().NoError(err)
	s.Equal(base, after)
}

func (s *StatsTestSuite) TestCatalogIsACopy() {
	c := stats.Catalog()
	delete(c, entities.ClassMage)

	_, err := stats.Lookup(entities.ClassMage)
	s.NoError(err)
}
