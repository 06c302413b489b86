// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/legacyvault/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength validates password meets minimum security requirements.
// Unlike most rules it reports every failed requirement, not only the first.
type PasswordStrength struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireNumber  bool
	RequireSpecial bool
}

// DefaultPasswordStrength is the policy applied when keys are generated or rotated.
var DefaultPasswordStrength = PasswordStrength{
	MinLength:      12,
	RequireUpper:   true,
	RequireLower:   true,
	RequireNumber:  true,
	RequireSpecial: true,
}

// Violations returns a human readable message for each unmet requirement.
// An empty result means the password satisfies the policy.
func (p PasswordStrength) Violations(s string) []string {
	var violations []string

	if utf8.RuneCountInString(s) < p.MinLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if p.RequireUpper && !hasUpper {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if p.RequireLower && !hasLower {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if p.RequireNumber && !hasNumber {
		violations = append(violations, "password must contain at least one number")
	}
	if p.RequireSpecial && !hasSpecial {
		violations = append(violations, "password must contain at least one special character")
	}

	return violations
}

// Validate implements validation.Rule.
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	violations := p.Violations(s)
	if len(violations) == 0 {
		return nil
	}

	return validation.NewError("validation_password_strength", strings.Join(violations, "; "))
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
