package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordStrength(t *testing.T) {
	rule := DefaultPasswordStrength

	tests := []struct {
		name      string
		password  string
		shouldErr bool
		errMsg    string
	}{
		{
			name:      "valid password",
			password:  "Sup3rStrongP@ssw0rd!",
			shouldErr: false,
		},
		{
			name:      "too short",
			password:  "Short1!abc",
			shouldErr: true,
			errMsg:    "at least 12 characters",
		},
		{
			name:      "missing uppercase",
			password:  "securepass123!",
			shouldErr: true,
			errMsg:    "uppercase letter",
		},
		{
			name:      "missing lowercase",
			password:  "SECUREPASS123!",
			shouldErr: true,
			errMsg:    "lowercase letter",
		},
		{
			name:      "missing number",
			password:  "SecurePassword!",
			shouldErr: true,
			errMsg:    "number",
		},
		{
			name:      "missing special char",
			password:  "SecurePass1234",
			shouldErr: true,
			errMsg:    "special character",
		},
		{
			name:      "empty password",
			password:  "",
			shouldErr: true,
			errMsg:    "at least 12 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.password)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordStrength_Violations(t *testing.T) {
	t.Run("reports every failed requirement", func(t *testing.T) {
		violations := DefaultPasswordStrength.Violations("short1!")

		assert.Equal(t, []string{
			"password must be at least 12 characters long",
			"password must contain at least one uppercase letter",
		}, violations)
	})

	t.Run("strong password has no violations", func(t *testing.T) {
		assert.Empty(t, DefaultPasswordStrength.Violations("Sup3rStrongP@ssw0rd!"))
	})

	t.Run("empty password fails all requirements", func(t *testing.T) {
		assert.Len(t, DefaultPasswordStrength.Violations(""), 5)
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		rule := PasswordStrength{MinLength: 4}
		assert.Empty(t, rule.Violations("ñççñ"))
		assert.Len(t, rule.Violations("ñçñ"), 1)
	})
}

func TestPasswordStrength_NonString(t *testing.T) {
	err := DefaultPasswordStrength.Validate(123)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")
}

func TestPasswordStrength_CustomRequirements(t *testing.T) {
	rule := PasswordStrength{MinLength: 10}

	assert.NoError(t, rule.Validate("tencharact"))
	assert.Error(t, rule.Validate("short"))
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid string",
			input:     "validstring",
			shouldErr: false,
		},
		{
			name:      "only spaces",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "only tabs",
			input:     "\t\t",
			shouldErr: true,
		},
		{
			name:      "mixed whitespace",
			input:     " \t\n ",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	result := WrapValidationError(assert.AnError)
	assert.Error(t, result)
	assert.Contains(t, result.Error(), "invalid input")
}
