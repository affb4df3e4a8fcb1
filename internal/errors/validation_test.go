package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorListsFieldsInOrder() {
	ve := errors.NewValidationError()
	ve.AddFieldError("value", "must be positive")
	ve.AddFieldError("name", "is required")
	ve.AddFieldErrorf("class", "unknown class %q", "Bard")

	s.True(ve.HasErrors())
	s.Equal(`validation failed: class: unknown class "Bard"; name: is required; value: must be positive`, ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidationBuilderKind() {
	err := errors.NewValidationBuilder().
		Kind(errors.KindInvalidName).
		RequiredField("name").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.True(errors.IsKind(err, errors.KindInvalidName))
}

func (s *ValidationTestSuite) TestValidationBuilderKindChangesCode() {
	err := errors.NewValidationBuilder().
		Kind(errors.KindCorruptState).
		Field("max_health", "must be positive").
		Build()

	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Merlin", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMaxLengthCountsRunes() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "Éowyn", 5, vb)
	errors.ValidateMaxLength("title", "a very long title", 5, vb)

	err := vb.Build()
	s.Require().Error(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.NotContains(fields, "name")
	s.Contains(fields["title"][0], "must be no more than 5 characters")
}

func (s *ValidationTestSuite) TestValidateRangeAndEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("value", 1001, 0, 1000, vb)
	errors.ValidateRange("power", 10, 0, 1000, vb)
	errors.ValidateEnum("class", "Bard", []string{"Mage", "Warrior", "Rogue"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(fields["value"][0], "must be between 0 and 1000")
	s.Contains(fields["class"][0], "must be one of: Mage, Warrior, Rogue")
	s.NotContains(fields, "power")
}
