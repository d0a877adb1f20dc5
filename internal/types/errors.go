package types

import "errors"

// Validation errors for the primitive domain values.
var (
	ErrInvalidAirport       = errors.New("invalid airport code")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidClock         = errors.New("invalid clock time")
	ErrInvalidTimestamp     = errors.New("invalid timestamp")
	ErrInvalidFlightID      = errors.New("invalid flight id")
	ErrInvalidReservationID = errors.New("invalid reservation id")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidSex           = errors.New("invalid sex")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidBreakfast     = errors.New("invalid breakfast flag")
	ErrInvalidCountry       = errors.New("invalid country code")
	ErrInvalidRating        = errors.New("invalid rating")
	ErrInvalidNumber        = errors.New("invalid number")

	// ErrNotNumeric distinguishes identifiers of the right shape but with
	// non-digit characters, so loaders can emit a diagnostic.
	ErrNotNumeric = errors.New("identifier is not numeric")
)
