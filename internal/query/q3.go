package query

import (
	"fmt"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
)

// Q3: mean of the present ratings across a hotel's reservations, two
// decimals. A hotel with no reservations at all produces nothing.

type q3Args struct {
	hotelID string
}

func parseQ3(args []string) (any, error) {
	if len(args) != 1 {
		return nil, errBadArgs
	}
	return q3Args{hotelID: args[0]}, nil
}

func execQ3(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q3Args)
	sum, rated, seen := 0, 0, 0
	env.DB.Reservations.ForEach(func(reservation *model.Reservation) bool {
		if reservation.HotelID != a.hotelID {
			return true
		}
		seen++
		if reservation.Rating > 0 {
			sum += int(reservation.Rating)
			rated++
		}
		return true
	})
	if seen == 0 {
		return nil
	}
	mean := 0.0
	if rated > 0 {
		mean = float64(sum) / float64(rated)
	}
	w.BeginObject()
	w.Field("rating", fmt.Sprintf("%.2f", mean))
	return nil
}
