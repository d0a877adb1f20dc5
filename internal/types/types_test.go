package types

import (
	"errors"
	"testing"
)

func TestParseAirportPacksUppercase(t *testing.T) {
	t.Parallel()
	lower, err := ParseAirport("lis")
	if err != nil {
		t.Fatalf("parse airport: %v", err)
	}
	upper, err := ParseAirport("LIS")
	if err != nil {
		t.Fatalf("parse airport: %v", err)
	}
	if lower != upper {
		t.Fatalf("case-insensitive parse broken: %v vs %v", lower, upper)
	}
	if upper.String() != "LIS" {
		t.Fatalf("expected LIS, got %s", upper)
	}
	for _, bad := range []string{"", "LI", "LISB", "L1S", "L S"} {
		if _, err := ParseAirport(bad); err == nil {
			t.Fatalf("expected rejection of %q", bad)
		}
	}
}

func TestAirportOrderingIsAlphabetical(t *testing.T) {
	t.Parallel()
	a, _ := ParseAirport("AMS")
	b, _ := ParseAirport("LIS")
	if !(a < b) {
		t.Fatalf("packed airport codes must sort alphabetically")
	}
}

func TestParseFlightID(t *testing.T) {
	t.Parallel()
	id, err := ParseFlightID("0000000005")
	if err != nil {
		t.Fatalf("parse flight id: %v", err)
	}
	if id != 5 || id.String() != "0000000005" {
		t.Fatalf("unexpected id %d -> %s", id, id)
	}
	if _, err := ParseFlightID("123"); err == nil {
		t.Fatalf("short id must be rejected")
	}
	_, err = ParseFlightID("00000x0005")
	if !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
	if !errors.Is(err, ErrInvalidFlightID) {
		t.Fatalf("ErrNotNumeric must stay under ErrInvalidFlightID, got %v", err)
	}
	if _, err := ParseFlightID("9999999999"); err == nil {
		t.Fatalf("ten digits above 32 bits must be rejected")
	}
}

func TestParseReservationID(t *testing.T) {
	t.Parallel()
	id, err := ParseReservationID("Book0000000009")
	if err != nil {
		t.Fatalf("parse reservation id: %v", err)
	}
	if id != 9 || id.String() != "Book0000000009" {
		t.Fatalf("unexpected id %d -> %s", id, id)
	}
	for _, bad := range []string{"book0000000009", "Book000000009", "Book00000000091", "0000000009Book"} {
		if _, err := ParseReservationID(bad); err == nil {
			t.Fatalf("expected rejection of %q", bad)
		}
	}
	_, err = ParseReservationID("Book00000000x9")
	if !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	for _, good := range []string{"jess@mail.com", "a@b.pt", "x.y@sub.domain.org"} {
		if err := ValidateEmail(good); err != nil {
			t.Fatalf("expected %q to validate: %v", good, err)
		}
	}
	for _, bad := range []string{"", "@mail.com", "jess@", "jess@mail", "jess@.com", "jess@mail.c", "jessmail.com"} {
		if err := ValidateEmail(bad); err == nil {
			t.Fatalf("expected rejection of %q", bad)
		}
	}
}

func TestParseBreakfast(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		text    string
		want    bool
		wantErr bool
	}{
		{"", false, false},
		{"0", false, false},
		{"f", false, false},
		{"F", false, false},
		{"false", false, false},
		{"False", false, false},
		{"1", true, false},
		{"t", true, false},
		{"T", true, false},
		{"true", true, false},
		{"TRUE", true, false},
		{"2", false, true},
		{"yes", false, true},
		{"10", false, true},
	}
	for _, testCase := range testCases {
		got, err := ParseBreakfast(testCase.text)
		if testCase.wantErr {
			if err == nil {
				t.Fatalf("expected rejection of %q", testCase.text)
			}
			continue
		}
		if err != nil || got != testCase.want {
			t.Fatalf("breakfast %q: want %v, got %v err %v", testCase.text, testCase.want, got, err)
		}
	}
}

func TestParseEnums(t *testing.T) {
	t.Parallel()
	if s, err := ParseSex("F"); err != nil || s != SexFemale {
		t.Fatalf("sex F: %v %v", s, err)
	}
	if _, err := ParseSex("f"); err == nil {
		t.Fatalf("lowercase sex must be rejected")
	}
	if st, err := ParseAccountStatus("Active"); err != nil || st != StatusActive {
		t.Fatalf("status Active: %v %v", st, err)
	}
	if st, err := ParseAccountStatus("INACTIVE"); err != nil || st != StatusInactive {
		t.Fatalf("status INACTIVE: %v %v", st, err)
	}
	if _, err := ParseAccountStatus("dormant"); err == nil {
		t.Fatalf("unknown status must be rejected")
	}
	if c, err := ParseCountry("pt"); err != nil || c.String() != "pt" {
		t.Fatalf("country pt: %v %v", c, err)
	}
	if _, err := ParseCountry("p1"); err == nil {
		t.Fatalf("digit country must be rejected")
	}
	if r, err := ParseRating(""); err != nil || r != 0 {
		t.Fatalf("empty rating must parse as absent")
	}
	if r, err := ParseRating("4"); err != nil || r != 4 {
		t.Fatalf("rating 4: %v %v", r, err)
	}
	for _, bad := range []string{"0", "6", "44", "x"} {
		if _, err := ParseRating(bad); err == nil {
			t.Fatalf("expected rejection of rating %q", bad)
		}
	}
}

func TestParseCountAndPositive(t *testing.T) {
	t.Parallel()
	if n, err := ParseCount("0"); err != nil || n != 0 {
		t.Fatalf("count 0: %d %v", n, err)
	}
	if n, err := ParseCount("1440"); err != nil || n != 1440 {
		t.Fatalf("count 1440: %d %v", n, err)
	}
	for _, bad := range []string{"", "-1", "+2", "1 0", "12a"} {
		if _, err := ParseCount(bad); err == nil {
			t.Fatalf("expected rejection of %q", bad)
		}
	}
	if _, err := ParsePositive("0"); err == nil {
		t.Fatalf("zero must not be positive")
	}
	if n, err := ParsePositive("25"); err != nil || n != 25 {
		t.Fatalf("positive 25: %d %v", n, err)
	}
}
