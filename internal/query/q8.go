package query

import (
	"strconv"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Q8: a hotel's room revenue, city tax excluded, over an inclusive date
// range. A night belongs to the day it starts on, so the checkout date
// never bills.

type q8Args struct {
	hotelID string
	begin   types.Date
	end     types.Date
}

func parseQ8(args []string) (any, error) {
	if len(args) != 3 {
		return nil, errBadArgs
	}
	begin, err := types.ParseDate(args[1])
	if err != nil {
		return nil, errBadArgs
	}
	end, err := types.ParseDate(args[2])
	if err != nil {
		return nil, errBadArgs
	}
	return q8Args{hotelID: args[0], begin: begin, end: end}, nil
}

func execQ8(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q8Args)
	queryLo := a.begin.DayIndex()
	queryHi := a.end.DayIndex()
	var revenue int64
	seen := false
	env.DB.Reservations.ForEach(func(reservation *model.Reservation) bool {
		if reservation.HotelID != a.hotelID {
			return true
		}
		seen = true
		lo := reservation.Begin.DayIndex()
		if lo < queryLo {
			lo = queryLo
		}
		hi := reservation.End.DayIndex() - 1
		if hi > queryHi {
			hi = queryHi
		}
		if nights := hi - lo + 1; nights > 0 {
			revenue += int64(nights) * int64(reservation.PricePerNight)
		}
		return true
	})
	if !seen {
		return nil
	}
	w.BeginObject()
	w.Field("revenue", strconv.FormatInt(revenue, 10))
	return nil
}
