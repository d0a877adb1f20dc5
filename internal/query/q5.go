package query

import (
	"sort"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Q5: flights leaving an origin airport inside a closed timestamp range,
// earliest scheduled departure first, ties by flight id ascending.

type q5Args struct {
	origin types.AirportCode
	begin  types.Timestamp
	end    types.Timestamp
}

func parseQ5(args []string) (any, error) {
	if len(args) != 3 {
		return nil, errBadArgs
	}
	origin, err := types.ParseAirport(args[0])
	if err != nil {
		return nil, errBadArgs
	}
	begin, err := types.ParseTimestamp(args[1])
	if err != nil {
		return nil, errBadArgs
	}
	end, err := types.ParseTimestamp(args[2])
	if err != nil {
		return nil, errBadArgs
	}
	return q5Args{origin: origin, begin: begin, end: end}, nil
}

func execQ5(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q5Args)
	var matches []*model.Flight
	env.DB.Flights.ForEach(func(flight *model.Flight) bool {
		if flight.Origin == a.origin &&
			flight.ScheduledDeparture >= a.begin &&
			flight.ScheduledDeparture <= a.end {
			matches = append(matches, flight)
		}
		return true
	})
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].ScheduledDeparture != matches[j].ScheduledDeparture {
			return matches[i].ScheduledDeparture < matches[j].ScheduledDeparture
		}
		return matches[i].ID < matches[j].ID
	})
	for _, flight := range matches {
		w.BeginObject()
		w.Field("id", flight.ID.String())
		w.Field("schedule_departure_date", flight.ScheduledDeparture.String())
		w.Field("destination", flight.Destination.String())
		w.Field("airline", flight.Airline)
		w.Field("plane_model", flight.PlaneModel)
	}
	return nil
}
