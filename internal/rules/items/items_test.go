package items_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/rules/items"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
)

type ItemsTestSuite struct {
	suite.Suite
	target *entities.Character
}

func TestItemsSuite(t *testing.T) {
	suite.Run(t, new(ItemsTestSuite))
}

func (s *ItemsTestSuite) SetupTest() {
	target, err := stats.Instantiate("Merlin", entities.ClassMage)
	s.Require().NoError(err)
	target.ID = "mage-1"
	s.target = target
}

func (s *ItemsTestSuite) TestInstantiateStock() {
	for class, def := range items.Catalog() {
		s.Run(string(class), func() {
			item, err := items.Instantiate("item-1", class)
			s.Require().NoError(err)
			s.Equal("item-1", item.ID)
			s.Equal(string(class), item.Name)
			s.Equal(def.BaseMagnitude, item.Value)
			s.False(item.Custom)
		})
	}

	_, err := items.Instantiate("item-1", "Wand")
	s.True(errors.IsKind(err, errors.KindInvalidClass))
}

func (s *ItemsTestSuite) TestInstantiateCustom() {
	item, err := items.InstantiateCustom("item-1", entities.ItemSword, " Excalibur ", 1000)
	s.Require().NoError(err)
	s.Equal("Excalibur", item.Name)
	s.Equal(1000, item.Value)
	s.True(item.Custom)

	testCases := []struct {
		name  string
		item  string
		value int
		kind  errors.Kind
	}{
		{"negative value", "Dagger", -1, errors.KindInvalidValue},
		{"value above bound", "Dagger", items.MaxCustomValue + 1, errors.KindInvalidValue},
		{"empty name", "", 10, errors.KindInvalidName},
		{"long name", strings.Repeat("x", items.MaxNameLength+1), 10, errors.KindInvalidName},
		{"bad characters", "Dagger;DROP", 10, errors.KindInvalidName},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := items.InstantiateCustom("item-1", entities.ItemSword, tc.item, tc.value)
			s.Require().Error(err)
			s.True(errors.IsKind(err, tc.kind))
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ItemsTestSuite) TestParseClass() {
	class, err := items.ParseClass(" shield ")
	s.Require().NoError(err)
	s.Equal(entities.ItemShield, class)

	_, err = items.ParseClass("Wand")
	s.True(errors.IsKind(err, errors.KindInvalidClass))
}

func (s *ItemsTestSuite) TestSingleUsePolicy() {
	s.True(items.IsSingleUse(entities.ItemPotion))
	s.True(items.IsSingleUse(entities.ItemBomb))
	s.False(items.IsSingleUse(entities.ItemAmulet))
	s.False(items.IsSingleUse(entities.ItemSword))
	s.False(items.IsSingleUse(entities.ItemShield))
}

func (s *ItemsTestSuite) TestHealNeverExceedsMax() {
	s.target.Health = 70
	potion, err := items.Instantiate("p1", entities.ItemPotion)
	s.Require().NoError(err)

	effect, err := items.ApplyEffect(potion, s.target)
	s.Require().NoError(err)
	s.Equal(80, s.target.Health)
	s.Equal(10, effect.Delta())
	s.Equal("Potion restores 10 health", effect.Message)
}

func (s *ItemsTestSuite) TestDamageNeverBelowZero() {
	bomb, err := items.InstantiateCustom("b1", entities.ItemBomb, "Big Bomb", 500)
	s.Require().NoError(err)

	_, err = items.ApplyEffect(bomb, s.target)
	s.Require().NoError(err)
	s.Equal(0, s.target.Health)
}

func (s *ItemsTestSuite) TestZeroValueBombIsADud() {
	dud, err := items.InstantiateCustom("b1", entities.ItemBomb, "Dud", 0)
	s.Require().NoError(err)

	effect, err := items.ApplyEffect(dud, s.target)
	s.Require().NoError(err)
	s.Equal(80, s.target.Health)
	s.Equal(0, effect.Delta())
	s.Equal("Dud deals 0 damage", effect.Message)

	// any positive value still gets through defense
	spark, err := items.InstantiateCustom("b2", entities.ItemBomb, "Spark", 1)
	s.Require().NoError(err)
	_, err = items.ApplyEffect(spark, s.target)
	s.Require().NoError(err)
	s.Equal(79, s.target.Health)
}

func (s *ItemsTestSuite) TestDamageIsMitigatedByDefense() {
	bomb, err := items.Instantiate("b1", entities.ItemBomb)
	s.Require().NoError(err)

	// mage defense 5: 25 - 5/2 = 23
	effect, err := items.ApplyEffect(bomb, s.target)
	s.Require().NoError(err)
	s.Equal(57, s.target.Health)
	s.Equal(-23, effect.Delta())
}

func (s *ItemsTestSuite) TestBuffsArePermanent() {
	testCases := []struct {
		class entities.ItemClass
		read  func(c *entities.Character) int
		delta int
	}{
		{entities.ItemSword, func(c *entities.Character) int { return c.Attack }, 5},
		{entities.ItemShield, func(c *entities.Character) int { return c.Defense }, 5},
		{entities.ItemAmulet, func(c *entities.Character) int { return c.Special }, 10},
	}

	for _, tc := range testCases {
		s.Run(string(tc.class), func() {
			target := s.target.Clone()
			before := tc.read(target)
			item, err := items.Instantiate("x", tc.class)
			s.Require().NoError(err)

			_, err = items.ApplyEffect(item, target)
			s.Require().NoError(err)
			s.Equal(before+tc.delta, tc.read(target))
			s.Equal(s.target.Health, target.Health)
		})
	}
}

func (s *ItemsTestSuite) TestCorruptTargetIsUntouched() {
	s.target.MaxHealth = 0
	s.target.Health = 0
	potion, err := items.Instantiate("p1", entities.ItemPotion)
	s.Require().NoError(err)

	_, err = items.ApplyEffect(potion, s.target)
	s.True(errors.IsKind(err, errors.KindCorruptState))
	s.Equal(0, s.target.Health)
}
