package types

// Sex of a user.
type Sex byte

const (
	SexFemale Sex = 'F'
	SexMale   Sex = 'M'
)

// ParseSex accepts exactly "F" or "M".
func ParseSex(s string) (Sex, error) {
	if s == "F" {
		return SexFemale, nil
	}
	if s == "M" {
		return SexMale, nil
	}
	return 0, ErrInvalidSex
}

func (s Sex) String() string { return string(byte(s)) }

// AccountStatus of a user.
type AccountStatus byte

const (
	StatusActive AccountStatus = iota
	StatusInactive
)

// ParseAccountStatus accepts "active" or "inactive", case-insensitively.
func ParseAccountStatus(s string) (AccountStatus, error) {
	if equalFold(s, "active") {
		return StatusActive, nil
	}
	if equalFold(s, "inactive") {
		return StatusInactive, nil
	}
	return 0, ErrInvalidAccountStatus
}

func (s AccountStatus) String() string {
	if s == StatusActive {
		return "active"
	}
	return "inactive"
}

// ParseBreakfast reads the includes_breakfast column. The empty string and
// the false forms map to false; digits are accepted only as bare 0/1, word
// forms case-insensitively.
func ParseBreakfast(s string) (bool, error) {
	switch {
	case s == "" || s == "0":
		return false, nil
	case s == "1":
		return true, nil
	case equalFold(s, "f") || equalFold(s, "false"):
		return false, nil
	case equalFold(s, "t") || equalFold(s, "true"):
		return true, nil
	}
	return false, ErrInvalidBreakfast
}

// FormatBreakfast prints the canonical output form.
func FormatBreakfast(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// CountryCode packs two ASCII letters.
type CountryCode uint16

// ParseCountry validates a two-letter country code.
func ParseCountry(s string) (CountryCode, error) {
	if len(s) != 2 || !isLetter(s[0]) || !isLetter(s[1]) {
		return 0, ErrInvalidCountry
	}
	return CountryCode(uint16(s[0])<<8 | uint16(s[1])), nil
}

func (c CountryCode) String() string {
	return string([]byte{byte(c >> 8), byte(c)})
}

// ParseRating reads an optional 1..5 rating; the empty string means absent
// and is returned as 0.
func ParseRating(s string) (int8, error) {
	if s == "" {
		return 0, nil
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
		return int8(s[0] - '0'), nil
	}
	return 0, ErrInvalidRating
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// equalFold is an ASCII-only case-insensitive compare; the enum vocabulary
// never leaves ASCII.
func equalFold(s, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}
