package validation_test

import (
	"testing"

	"go-mentorship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type submitForm struct {
	Subject     string `validate:"required"`
	SessionType string `validate:"required,oneof=career-advice other"`
	Bio         string `validate:"max=5"`
}

func TestFormatValidationErrors(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(submitForm{Bio: "too long for five"})
	messages := validation.FormatValidationErrors(err)

	assert.Equal(t, []string{
		"Subject is required",
		"Session Type is required",
		"Bio must be at most 5 characters",
	}, messages)
}

func TestFormatValidationErrorsOneOf(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(submitForm{Subject: "x", SessionType: "invalid"})
	messages := validation.FormatValidationErrors(err)

	assert.Equal(t, []string{"Session Type must be one of: career-advice, other"}, messages)
}

func TestCustomValidators(t *testing.T) {
	validate := validator.New()
	validation.RegisterValidators(validate)

	type profileForm struct {
		Department   string `validate:"required,department"`
		Availability string `validate:"omitempty,availability"`
	}

	assert.NoError(t, validate.Struct(profileForm{Department: "Design"}))
	assert.NoError(t, validate.Struct(profileForm{Department: "Design", Availability: "Flexible"}))

	err := validate.Struct(profileForm{Department: "Astrology"})
	messages := validation.FormatValidationErrors(err)
	assert.Equal(t, []string{"Department is not a known department"}, messages)
}
