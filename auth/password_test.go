package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      []string
	}{
		{"compliant", "Passw0rd", nil},
		{"compliant long", "aVeryLong4ndStrongOne", nil},
		{"too short", "Pa0s", []string{RuleMin}},
		{"no uppercase", "password1", []string{RuleUppercase}},
		{"no lowercase", "PASSWORD1", []string{RuleLowercase}},
		{"no digit", "Passwords", []string{RuleDigits}},
		{"has spaces", "Pass w0rd", []string{RuleSpaces}},
		{"empty", "", []string{RuleMin, RuleUppercase, RuleLowercase, RuleDigits}},
		{"everything wrong", "  ", []string{RuleMin, RuleUppercase, RuleLowercase, RuleDigits, RuleSpaces}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.candidate))
		})
	}
}

func TestValidatePassword_Deterministic(t *testing.T) {
	first := ValidatePassword("weak")
	second := ValidatePassword("weak")
	assert.Equal(t, first, second)
}
