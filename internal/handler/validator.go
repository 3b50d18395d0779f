package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Domje/Arc-Looterputer/internal/info"
	"github.com/Domje/Arc-Looterputer/internal/locale"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("lang", validateLanguage)
	_ = v.RegisterValidation("platform", validatePlatform)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "lang":
			errs[field] = "Invalid language code"
		case "platform":
			errs[field] = "Invalid platform"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateLanguage accepts empty values and BCP 47 language tags
func validateLanguage(fl validator.FieldLevel) bool {
	lang := fl.Field().String()
	if lang == "" {
		return true
	}
	return locale.IsValidTag(lang)
}

// validatePlatform accepts empty values and the info formatter platforms
func validatePlatform(fl validator.FieldLevel) bool {
	platform := fl.Field().String()
	if platform == "" {
		return true
	}
	return info.IsValidPlatform(platform)
}
