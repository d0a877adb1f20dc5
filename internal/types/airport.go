// Package types holds the primitive value types of the travel domain:
// packed airport codes, the simplified calendar, flight and reservation
// identifiers, and the small field enums.
package types

// AirportCode packs three ASCII letters into the low 24 bits of a uint32.
// Parsing is case-insensitive; the stored and printed form is uppercase.
type AirportCode uint32

// ParseAirport validates and packs a three-letter code.
func ParseAirport(s string) (AirportCode, error) {
	if len(s) != 3 {
		return 0, ErrInvalidAirport
	}
	var code AirportCode
	for i := 0; i < 3; i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return 0, ErrInvalidAirport
		}
		code = code<<8 | AirportCode(c)
	}
	return code, nil
}

func (c AirportCode) String() string {
	return string([]byte{byte(c >> 16), byte(c >> 8), byte(c)})
}
