package query

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
)

// Q4: all reservations at a hotel, latest begin date first, ties by
// reservation id ascending.

type q4Args struct {
	hotelID string
}

func parseQ4(args []string) (any, error) {
	if len(args) != 1 {
		return nil, errBadArgs
	}
	return q4Args{hotelID: args[0]}, nil
}

func execQ4(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q4Args)
	var matches []*model.Reservation
	env.DB.Reservations.ForEach(func(reservation *model.Reservation) bool {
		if reservation.HotelID == a.hotelID {
			matches = append(matches, reservation)
		}
		return true
	})
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Begin != matches[j].Begin {
			return matches[i].Begin > matches[j].Begin
		}
		return matches[i].ID < matches[j].ID
	})
	for _, reservation := range matches {
		rating := ""
		if reservation.Rating > 0 {
			rating = strconv.Itoa(int(reservation.Rating))
		}
		w.BeginObject()
		w.Field("id", reservation.ID.String())
		w.Field("begin_date", reservation.Begin.String())
		w.Field("end_date", reservation.End.String())
		w.Field("user_id", reservation.UserID)
		w.Field("rating", rating)
		w.Field("total_price", fmt.Sprintf("%.2f", reservation.Total()))
	}
	return nil
}
