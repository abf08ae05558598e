package validator

import (
	"github.com/go-playground/validator/v10"

	"novanest_backend/internal/models"
)

// registerCustomRules wires platform-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	// platformrole: entrepreneur | investor | mentor
	_ = v.RegisterValidation("platformrole", func(fl validator.FieldLevel) bool {
		return models.ValidRole(models.UserRole(fl.Field().String()))
	})
}
