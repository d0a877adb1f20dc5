package types

import (
	"errors"
	"fmt"
	"math"
)

const (
	flightIDDigits      = 10
	reservationIDPrefix = "Book"
)

// FlightID is the numeric value of a 10-digit flight identifier.
type FlightID uint32

// ParseFlightID accepts exactly ten decimal digits. Non-digit input is
// reported with ErrNotNumeric in the chain so callers can diagnose it apart
// from plain shape errors.
func ParseFlightID(s string) (FlightID, error) {
	if len(s) != flightIDDigits {
		return 0, ErrInvalidFlightID
	}
	value, err := parseID(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFlightID, err)
	}
	return FlightID(value), nil
}

func (id FlightID) String() string {
	return fmt.Sprintf("%010d", uint32(id))
}

// ReservationID is the numeric tail of a "Book" + 10 digit identifier.
type ReservationID uint32

// ParseReservationID accepts the Book prefix followed by exactly ten digits.
func ParseReservationID(s string) (ReservationID, error) {
	if len(s) != len(reservationIDPrefix)+flightIDDigits || s[:len(reservationIDPrefix)] != reservationIDPrefix {
		return 0, ErrInvalidReservationID
	}
	value, err := parseID(s[len(reservationIDPrefix):])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidReservationID, err)
	}
	return ReservationID(value), nil
}

func (id ReservationID) String() string {
	return fmt.Sprintf("%s%010d", reservationIDPrefix, uint32(id))
}

var errIDRange = errors.New("identifier out of range")

func parseID(digits string) (uint64, error) {
	var value uint64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, ErrNotNumeric
		}
		value = value*10 + uint64(c-'0')
	}
	if value > math.MaxUint32 {
		return 0, errIDRange
	}
	return value, nil
}
