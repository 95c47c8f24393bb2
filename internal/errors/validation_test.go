package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/coc-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("owner_id", "is required")
	ve.AddFieldError("era", "is invalid")
	ve.AddFieldErrorf("age", "must be at least %d", 15)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "owner_id: is required")
	s.Assert().Contains(ve.Error(), "era: is invalid")
	s.Assert().Contains(ve.Error(), "age: must be at least 15")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("owner_id", "is required").
		Fieldf("age", "must be between %d and %d", 15, 90).
		RequiredField("skill_id").
		InvalidField("pool", "not a valid pool")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidationErrorIsOrdered() {
	ve := errors.NewValidationError()
	ve.AddFieldError("skill_id", "is required")
	ve.AddFieldError("age", "must be between 15 and 90")
	ve.AddFieldError("era", "is invalid")

	s.Assert().Equal(
		"validation failed: age: must be between 15 and 90; era: is invalid; skill_id: is required",
		ve.Error())
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "this is a very long investigator name", 20, vb)
	errors.ValidateMaxLength("era", "1920s", 5, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["name"][0], "must be no more than 20 characters")
	s.Assert().NotContains(validationErrors, "era")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("age", 95, 15, 90, vb)
	errors.ValidateRange("str", 50, 1, 99, vb)
	errors.ValidateRange("credit_rating", 0, 30, 70, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["age"][0], "must be between 15 and 90")
	s.Assert().Contains(validationErrors["credit_rating"][0], "must be between 30 and 70")
	s.Assert().NotContains(validationErrors, "str")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedEras := []string{"1920s", "modern", "darkAges"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("era", "1890s", allowedEras, vb)
	errors.ValidateEnum("default_era", "modern", allowedEras, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["era"][0], "must be one of: 1920s, modern, darkAges")
	s.Assert().NotContains(validationErrors, "default_era")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	// Simulate validating an investigator creation request
	type InvestigatorInput struct {
		OwnerID         string
		Era             string
		Age             int
		Characteristics map[string]int
	}

	input := InvestigatorInput{
		OwnerID: "",
		Era:     "1890s",
		Age:     12,
		Characteristics: map[string]int{
			"str": 120,
			"dex": 60,
			"edu": 75,
		},
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("owner_id", input.OwnerID, vb)

	allowedEras := []string{"1920s", "modern", "darkAges"}
	errors.ValidateEnum("era", input.Era, allowedEras, vb)

	errors.ValidateRange("age", input.Age, 15, 90, vb)

	for name, value := range input.Characteristics {
		errors.ValidateRange(name, value, 1, 99, vb)
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "owner_id")
	s.Assert().Contains(validationErrors, "era")
	s.Assert().Contains(validationErrors, "age")
	s.Assert().Contains(validationErrors, "str")
	s.Assert().NotContains(validationErrors, "edu")
}
