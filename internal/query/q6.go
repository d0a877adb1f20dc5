package query

import (
	"sort"
	"strconv"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Q6: the N busiest airports of a year by passengers moved. A flight's
// passengers count toward both its origin and its destination.

type q6Args struct {
	year  int
	limit int
}

func parseQ6(args []string) (any, error) {
	if len(args) != 2 {
		return nil, errBadArgs
	}
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1 {
		return nil, errBadArgs
	}
	limit, err := strconv.Atoi(args[1])
	if err != nil || limit < 1 {
		return nil, errBadArgs
	}
	return q6Args{year: year, limit: limit}, nil
}

type q6Entry struct {
	code       types.AirportCode
	passengers int
}

func execQ6(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q6Args)
	totals := make(map[types.AirportCode]int)
	env.DB.Flights.ForEach(func(flight *model.Flight) bool {
		if flight.ScheduledDeparture.Date().Year() == a.year {
			totals[flight.Origin] += flight.Passengers
			totals[flight.Destination] += flight.Passengers
		}
		return true
	})
	entries := make([]q6Entry, 0, len(totals))
	for code, passengers := range totals {
		entries = append(entries, q6Entry{code: code, passengers: passengers})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].passengers != entries[j].passengers {
			return entries[i].passengers > entries[j].passengers
		}
		return entries[i].code < entries[j].code
	})
	if len(entries) > a.limit {
		entries = entries[:a.limit]
	}
	for _, entry := range entries {
		w.BeginObject()
		w.Field("name", entry.code.String())
		w.Field("passengers", strconv.Itoa(entry.passengers))
	}
	return nil
}
