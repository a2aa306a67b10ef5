package domain

import (
	"net/mail"
	"strings"
)

// ValidateEmail checks that an invite address is syntactically well-formed.
// Validation happens before any network call; a failing address never reaches
// the store.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at < 1 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}
