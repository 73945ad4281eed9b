package utils

import (
	"brokerage-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("coverage", validateCoverage)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCoverage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, option := range constvars.LeadCoverageOptions {
		if value == option {
			return true
		}
	}
	return false
}
