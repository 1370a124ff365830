package auth

import (
	"unicode"
	"unicode/utf8"
)

// Password policy rule names, reported to the client on violation.
const (
	RuleMin       = "min"       // at least 8 characters
	RuleUppercase = "uppercase" // at least one uppercase letter
	RuleLowercase = "lowercase" // at least one lowercase letter
	RuleDigits    = "digits"    // at least one digit
	RuleSpaces    = "spaces"    // no whitespace
)

// ValidatePassword checks a candidate password against the fixed signup
// policy and returns the names of every violated rule. An empty slice
// means the password is acceptable.
func ValidatePassword(candidate string) []string {
	var hasUpper, hasLower, hasDigit, hasSpace bool
	for _, r := range candidate {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsSpace(r):
			hasSpace = true
		}
	}

	var violations []string
	if utf8.RuneCountInString(candidate) < 8 {
		violations = append(violations, RuleMin)
	}
	if !hasUpper {
		violations = append(violations, RuleUppercase)
	}
	if !hasLower {
		violations = append(violations, RuleLowercase)
	}
	if !hasDigit {
		violations = append(violations, RuleDigits)
	}
	if hasSpace {
		violations = append(violations, RuleSpaces)
	}
	return violations
}
