// Package validation is the single source of truth for field rules shared by
// every form in the system. Handlers validate request DTOs through it and the
// seeder reuses it, so the server and any client generated from it cannot
// drift apart.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/admitdesk/api/model"
	"github.com/go-playground/validator/v10"
)

var (
	// MobileRegex enforces the 10-digit mobile number rule used for both
	// users and admissions.
	MobileRegex = regexp.MustCompile(`^\d{10}$`)

	// EmailRegex is a simple email validation regex
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// PasswordMinLength is the minimum password length
	PasswordMinLength = 8
)

// Validator wraps the go-playground validator with domain tags registered.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with the custom tags
// (mobile, course, batch) used across admission and user forms.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return MobileRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("course", func(fl validator.FieldLevel) bool {
		return contains(model.Courses, fl.Field().String())
	})
	_ = v.RegisterValidation("batch", func(fl validator.FieldLevel) bool {
		return contains(model.Batches, fl.Field().String())
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// FormatValidationErrors converts validation errors to a user-friendly format
func FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "required":
				errors[field] = fmt.Sprintf("%s is required", e.Field())
			case "email":
				errors[field] = "Invalid email format"
			case "mobile":
				errors[field] = fmt.Sprintf("%s must be a valid 10-digit mobile number", e.Field())
			case "course":
				errors[field] = fmt.Sprintf("%s must be one of the offered courses", e.Field())
			case "batch":
				errors[field] = fmt.Sprintf("%s must be a valid batch time slot", e.Field())
			case "oneof":
				errors[field] = fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
			case "min":
				errors[field] = fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
			case "max":
				errors[field] = fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
			default:
				errors[field] = fmt.Sprintf("%s is invalid", e.Field())
			}
		}
	}

	return errors
}

// ValidateEmail checks if an email is valid
func ValidateEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return EmailRegex.MatchString(email)
}

// ValidateMobile checks the 10-digit mobile number rule
func ValidateMobile(mobile string) bool {
	return MobileRegex.MatchString(mobile)
}

// ValidatePassword checks if a password meets minimum requirements
func ValidatePassword(password string) (bool, []string) {
	errors := []string{}

	if len(password) < PasswordMinLength {
		errors = append(errors, fmt.Sprintf("Password must be at least %d characters", PasswordMinLength))
	}

	return len(errors) == 0, errors
}

// SanitizeString trims whitespace and collapses inner runs of spaces.
func SanitizeString(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}
