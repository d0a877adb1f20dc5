package types

import "fmt"

// Calendar simplification used throughout: every month has 31 days and every
// year 12 months. The datasets this engine ingests guarantee same-month
// comparisons where the simplification would otherwise show.
const (
	daysPerMonth  = 31
	monthsPerYear = 12
	daysPerYear   = daysPerMonth * monthsPerYear
	secondsPerDay = 24 * 60 * 60
)

// Date packs year/month/day into an int32 as y*512 + m*32 + d. The packing
// preserves ordering under plain integer comparison.
type Date int32

// NewDate builds a Date, range-checking each component.
func NewDate(year, month, day int) (Date, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, ErrInvalidDate
	}
	return Date(year<<9 | month<<5 | day), nil
}

// ParseDate reads the canonical YYYY/MM/DD form.
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '/' || s[7] != '/' {
		return 0, ErrInvalidDate
	}
	year, ok := parseDigits(s[0:4])
	if !ok {
		return 0, ErrInvalidDate
	}
	month, ok := parseDigits(s[5:7])
	if !ok {
		return 0, ErrInvalidDate
	}
	day, ok := parseDigits(s[8:10])
	if !ok {
		return 0, ErrInvalidDate
	}
	return NewDate(year, month, day)
}

func (d Date) Year() int  { return int(d >> 9) }
func (d Date) Month() int { return int(d>>5) & 0xf }
func (d Date) Day() int   { return int(d) & 0x1f }

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year(), d.Month(), d.Day())
}

// DayIndex maps the date onto the simplified calendar's day line.
func (d Date) DayIndex() int {
	return d.Year()*daysPerYear + (d.Month()-1)*daysPerMonth + (d.Day() - 1)
}

// DaysBetween counts days from a to b under the simplified calendar.
func DaysBetween(a, b Date) int {
	return b.DayIndex() - a.DayIndex()
}

// YearsBetween counts whole years from a to b.
func YearsBetween(a, b Date) int {
	years := b.Year() - a.Year()
	if b.Month() < a.Month() || (b.Month() == a.Month() && b.Day() < a.Day()) {
		years--
	}
	return years
}

// Clock is a time of day stored as seconds since midnight.
type Clock int32

// ParseClock reads the canonical HH:MM:SS form.
func ParseClock(s string) (Clock, error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return 0, ErrInvalidClock
	}
	hours, ok := parseDigits(s[0:2])
	if !ok || hours > 23 {
		return 0, ErrInvalidClock
	}
	minutes, ok := parseDigits(s[3:5])
	if !ok || minutes > 59 {
		return 0, ErrInvalidClock
	}
	seconds, ok := parseDigits(s[6:8])
	if !ok || seconds > 59 {
		return 0, ErrInvalidClock
	}
	return Clock(hours*3600 + minutes*60 + seconds), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, int(c)/60%60, int(c)%60)
}

// Timestamp combines a Date and Clock into one signed 64-bit value ordered
// by plain comparison.
type Timestamp int64

// NewTimestamp combines a date and clock.
func NewTimestamp(d Date, c Clock) Timestamp {
	return Timestamp(int64(d.DayIndex())*secondsPerDay + int64(c))
}

// ParseTimestamp reads the canonical "YYYY/MM/DD HH:MM:SS" form.
func ParseTimestamp(s string) (Timestamp, error) {
	if len(s) != 19 || s[10] != ' ' {
		return 0, ErrInvalidTimestamp
	}
	date, err := ParseDate(s[0:10])
	if err != nil {
		return 0, ErrInvalidTimestamp
	}
	clock, err := ParseClock(s[11:19])
	if err != nil {
		return 0, ErrInvalidTimestamp
	}
	return NewTimestamp(date, clock), nil
}

// Date recovers the calendar date of the timestamp.
func (t Timestamp) Date() Date {
	dayIndex := int(int64(t) / secondsPerDay)
	year := dayIndex / daysPerYear
	month := dayIndex % daysPerYear / daysPerMonth
	day := dayIndex % daysPerMonth
	return Date(year<<9 | (month+1)<<5 | (day + 1))
}

// Clock recovers the time of day of the timestamp.
func (t Timestamp) Clock() Clock {
	return Clock(int64(t) % secondsPerDay)
}

func (t Timestamp) String() string {
	return t.Date().String() + " " + t.Clock().String()
}

// SecondsBetween counts seconds from a to b.
func SecondsBetween(a, b Timestamp) int64 {
	return int64(b) - int64(a)
}

// parseDigits reads a fixed-width run of ASCII digits.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
