package types

import (
	"testing"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func mustTimestamp(t *testing.T, s string) Timestamp {
	t.Helper()
	ts, err := ParseTimestamp(s)
	if err != nil {
		t.Fatalf("parse timestamp %q: %v", s, err)
	}
	return ts
}

func TestParseDateRoundTrip(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"2023/10/01", "0001/01/01", "9999/12/31", "1990/01/02"} {
		if got := mustDate(t, text).String(); got != text {
			t.Fatalf("round trip %q -> %q", text, got)
		}
	}
}

func TestParseDateRejections(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"short", "2023/1/01"},
		{"wrong separator", "2023-10-01"},
		{"month zero", "2023/00/15"},
		{"month thirteen", "2023/13/15"},
		{"day zero", "2023/10/00"},
		{"day thirty two", "2023/10/32"},
		{"year zero", "0000/10/01"},
		{"letters", "2O23/10/01"},
		{"trailing garbage", "2023/10/011"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseDate(testCase.text); err == nil {
				t.Fatalf("expected rejection of %q", testCase.text)
			}
		})
	}
}

func TestDateOrderingMatchesPacking(t *testing.T) {
	t.Parallel()
	earlier := mustDate(t, "2023/03/10")
	later := mustDate(t, "2023/03/12")
	if !(earlier < later) {
		t.Fatalf("packed ordering broken: %v !< %v", earlier, later)
	}
	if mustDate(t, "2022/12/31") >= mustDate(t, "2023/01/01") {
		t.Fatalf("year boundary ordering broken")
	}
}

func TestDaysBetweenSimplifiedCalendar(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		from, to string
		want     int
	}{
		{"2023/10/01", "2023/10/01", 0},
		{"2023/10/01", "2023/10/05", 4},
		{"2023/09/30", "2023/10/02", 3}, // months are 31 days flat
		{"2022/12/31", "2023/01/01", 1},
	}
	for _, testCase := range testCases {
		got := DaysBetween(mustDate(t, testCase.from), mustDate(t, testCase.to))
		if got != testCase.want {
			t.Fatalf("days %s..%s: want %d, got %d", testCase.from, testCase.to, testCase.want, got)
		}
	}
}

func TestYearsBetweenWholeYears(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		birth, ref string
		want       int
	}{
		{"1990/01/02", "2023/10/01", 33},
		{"1990/10/01", "2023/10/01", 33},
		{"1990/10/02", "2023/10/01", 32},
		{"1990/11/01", "2023/10/01", 32},
	}
	for _, testCase := range testCases {
		got := YearsBetween(mustDate(t, testCase.birth), mustDate(t, testCase.ref))
		if got != testCase.want {
			t.Fatalf("age %s at %s: want %d, got %d", testCase.birth, testCase.ref, testCase.want, got)
		}
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()
	clock, err := ParseClock("23:59:59")
	if err != nil {
		t.Fatalf("parse clock: %v", err)
	}
	if clock.String() != "23:59:59" {
		t.Fatalf("round trip broken: %s", clock)
	}
	for _, bad := range []string{"24:00:00", "12:60:00", "12:00:60", "1:00:00", "12.00.00", ""} {
		if _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected rejection of %q", bad)
		}
	}
}

func TestTimestampRoundTripAndOrdering(t *testing.T) {
	t.Parallel()
	text := "2021/05/04 09:30:00"
	ts := mustTimestamp(t, text)
	if ts.String() != text {
		t.Fatalf("round trip %q -> %q", text, ts.String())
	}
	if ts.Date() != mustDate(t, "2021/05/04") {
		t.Fatalf("date component lost: %s", ts.Date())
	}
	a := mustTimestamp(t, "2023/03/10 10:00:00")
	b := mustTimestamp(t, "2023/03/10 10:00:01")
	if !(a < b) {
		t.Fatalf("timestamp ordering broken")
	}
	if SecondsBetween(a, b) != 1 {
		t.Fatalf("expected one second, got %d", SecondsBetween(a, b))
	}
}
