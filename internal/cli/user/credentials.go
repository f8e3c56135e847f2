package user

import (
	"strings"
)

// Credentials are the user credentials
type Credentials struct {
	Email    string
	Password string
}

// RedactedPassword returns the user's password with sensitive information redacted
func (creds Credentials) RedactedPassword() string {
	return Redact(creds.Password)
}

// Redact replaces every character of s with an asterisk
func Redact(s string) string {
	return strings.Repeat("*", len(s))
}
