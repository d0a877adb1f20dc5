package query

import (
	"sort"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Q2: a user's flights and/or reservations, newest date first, ties broken
// by id. Inactive users produce nothing.

const (
	q2KindFlights      = "flights"
	q2KindReservations = "reservations"
)

type q2Args struct {
	userID string
	kind   string
}

func parseQ2(args []string) (any, error) {
	switch len(args) {
	case 1:
		return q2Args{userID: args[0]}, nil
	case 2:
		if args[1] != q2KindFlights && args[1] != q2KindReservations {
			return nil, errBadArgs
		}
		return q2Args{userID: args[0], kind: args[1]}, nil
	}
	return nil, errBadArgs
}

type q2Entry struct {
	id   string
	date types.Date
	kind string
}

func execQ2(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q2Args)
	user := env.DB.User(a.userID)
	if user == nil || !user.Active() {
		return nil
	}
	var entries []q2Entry
	if a.kind == "" || a.kind == q2KindFlights {
		env.DB.Users.WalkFlights(user, func(id types.FlightID) bool {
			if flight := env.DB.Flight(id); flight != nil {
				entries = append(entries, q2Entry{
					id:   id.String(),
					date: flight.ScheduledDeparture.Date(),
					kind: "flight",
				})
			}
			return true
		})
	}
	if a.kind == "" || a.kind == q2KindReservations {
		env.DB.Users.WalkReservations(user, func(id types.ReservationID) bool {
			if reservation := env.DB.Reservation(id); reservation != nil {
				entries = append(entries, q2Entry{
					id:   id.String(),
					date: reservation.Begin,
					kind: "reservation",
				})
			}
			return true
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].date != entries[j].date {
			return entries[i].date > entries[j].date
		}
		return entries[i].id < entries[j].id
	})
	for _, entry := range entries {
		w.BeginObject()
		w.Field("id", entry.id)
		w.Field("date", entry.date.String())
		if a.kind == "" {
			w.Field("type", entry.kind)
		}
	}
	return nil
}
