package validation

import (
	"github.com/go-playground/validator/v10"

	"go-mentorship-backend/internal/domain"
)

// RegisterValidators installs the closed-set validators used by profile and
// request payloads. Must run once on the shared validator instance before
// any usecase validates a struct.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("department", validDepartment)
	_ = v.RegisterValidation("availability", validAvailability)
}

func validDepartment(fl validator.FieldLevel) bool {
	return domain.ValidDepartment(fl.Field().String())
}

func validAvailability(fl validator.FieldLevel) bool {
	return domain.ValidAvailability(fl.Field().String())
}
