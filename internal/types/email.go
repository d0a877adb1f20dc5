package types

import "strings"

// ValidateEmail enforces the dataset's structural contract: non-empty local
// part, one @, non-empty domain, a dot, and a TLD of at least two
// characters.
func ValidateEmail(s string) error {
	at := strings.IndexByte(s, '@')
	if at <= 0 {
		return ErrInvalidEmail
	}
	domain := s[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	if dot <= 0 {
		return ErrInvalidEmail
	}
	if len(domain)-dot-1 < 2 {
		return ErrInvalidEmail
	}
	return nil
}
