package query

import (
	"strconv"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Q10: activity rollup. With no arguments the buckets are the years 2000
// through 2064; with a year they are that year's months; with a year and a
// month they are that month's days. Empty buckets are not emitted.

const (
	q10ByYear = iota
	q10ByMonth
	q10ByDay

	q10YearBase = 2000
	q10Buckets  = 65
)

type q10Args struct {
	mode  int
	year  int
	month int
}

func parseQ10(args []string) (any, error) {
	switch len(args) {
	case 0:
		return q10Args{mode: q10ByYear}, nil
	case 1:
		year, err := strconv.Atoi(args[0])
		if err != nil || year < 1 {
			return nil, errBadArgs
		}
		return q10Args{mode: q10ByMonth, year: year}, nil
	case 2:
		year, err := strconv.Atoi(args[0])
		if err != nil || year < 1 {
			return nil, errBadArgs
		}
		month, err := strconv.Atoi(args[1])
		if err != nil || month < 1 || month > 12 {
			return nil, errBadArgs
		}
		return q10Args{mode: q10ByDay, year: year, month: month}, nil
	}
	return nil, errBadArgs
}

// q10Counts carries one counter array per metric. Year mode uses indexes
// 0..64, month mode 1..12, day mode 1..31; the year arrays are the widest
// so every mode fits.
type q10Counts struct {
	users        [q10Buckets]int
	flights      [q10Buckets]int
	passengers   [q10Buckets]int
	uniqueUsers  [q10Buckets]int
	reservations [q10Buckets]int
}

// bucketIndex maps a date onto the instance's bucket axis, or -1 when the
// date falls outside it.
func bucketIndex(a q10Args, d types.Date) int {
	switch a.mode {
	case q10ByYear:
		year := d.Year()
		if year < q10YearBase || year >= q10YearBase+q10Buckets {
			return -1
		}
		return year - q10YearBase
	case q10ByMonth:
		if d.Year() != a.year {
			return -1
		}
		return d.Month()
	default:
		if d.Year() != a.year || d.Month() != a.month {
			return -1
		}
		return d.Day()
	}
}

// statsQ10 aggregates every instance's counters in a single database pass.
// The unique flyer metric needs a per-user bitmap per instance so a user
// with several flights in one bucket counts once.
func statsQ10(env *Env, instances []*Instance) any {
	byInstance := make(map[*Instance]*q10Counts, len(instances))
	for _, instance := range instances {
		byInstance[instance] = &q10Counts{}
	}
	seen := make([][2]uint64, len(instances))
	env.DB.Users.ForEach(func(user *model.User) bool {
		for i := range seen {
			seen[i] = [2]uint64{}
		}
		for i, instance := range instances {
			counts := byInstance[instance]
			args := instance.Args.(q10Args)
			if idx := bucketIndex(args, user.CreatedAt.Date()); idx >= 0 {
				counts.users[idx]++
			}
			env.DB.Users.WalkFlights(user, func(id types.FlightID) bool {
				flight := env.DB.Flight(id)
				if flight == nil {
					return true
				}
				idx := bucketIndex(args, flight.ScheduledDeparture.Date())
				if idx < 0 {
					return true
				}
				counts.passengers[idx]++
				word, bit := idx/64, uint(idx%64)
				if seen[i][word]&(1<<bit) == 0 {
					seen[i][word] |= 1 << bit
					counts.uniqueUsers[idx]++
				}
				return true
			})
		}
		return true
	})
	env.DB.Flights.ForEach(func(flight *model.Flight) bool {
		date := flight.ScheduledDeparture.Date()
		for _, instance := range instances {
			if idx := bucketIndex(instance.Args.(q10Args), date); idx >= 0 {
				byInstance[instance].flights[idx]++
			}
		}
		return true
	})
	env.DB.Reservations.ForEach(func(reservation *model.Reservation) bool {
		for _, instance := range instances {
			if idx := bucketIndex(instance.Args.(q10Args), reservation.Begin); idx >= 0 {
				byInstance[instance].reservations[idx]++
			}
		}
		return true
	})
	return byInstance
}

func execQ10(_ *Env, stats any, inst *Instance, w *Writer) error {
	a := inst.Args.(q10Args)
	counts := stats.(map[*Instance]*q10Counts)[inst]
	axis, lo, hi := "year", 0, q10Buckets-1
	switch a.mode {
	case q10ByMonth:
		axis, lo, hi = "month", 1, 12
	case q10ByDay:
		axis, lo, hi = "day", 1, 31
	}
	for idx := lo; idx <= hi; idx++ {
		if counts.users[idx] == 0 && counts.flights[idx] == 0 &&
			counts.passengers[idx] == 0 && counts.uniqueUsers[idx] == 0 &&
			counts.reservations[idx] == 0 {
			continue
		}
		label := idx
		if a.mode == q10ByYear {
			label = q10YearBase + idx
		}
		w.BeginObject()
		w.Field(axis, strconv.Itoa(label))
		w.Field("users", strconv.Itoa(counts.users[idx]))
		w.Field("flights", strconv.Itoa(counts.flights[idx]))
		w.Field("passengers", strconv.Itoa(counts.passengers[idx]))
		w.Field("unique_passengers", strconv.Itoa(counts.uniqueUsers[idx]))
		w.Field("reservations", strconv.Itoa(counts.reservations[idx]))
	}
	return nil
}
