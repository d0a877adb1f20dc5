package types

// ParseCount reads a non-negative decimal integer with no sign or spaces.
func ParseCount(s string) (int, error) {
	if s == "" {
		return 0, ErrInvalidNumber
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrInvalidNumber
		}
		n = n*10 + int(c-'0')
		if n < 0 {
			return 0, ErrInvalidNumber
		}
	}
	return n, nil
}

// ParsePositive reads a strictly positive decimal integer.
func ParsePositive(s string) (int, error) {
	n, err := ParseCount(s)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrInvalidNumber
	}
	return n, nil
}
