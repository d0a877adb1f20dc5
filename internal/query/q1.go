package query

import (
	"fmt"
	"strconv"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Q1: summary of whatever entity the id resolves to, trying users, then
// flights, then reservations.

type q1Args struct {
	id string
}

func parseQ1(args []string) (any, error) {
	if len(args) != 1 {
		return nil, errBadArgs
	}
	return q1Args{id: args[0]}, nil
}

func execQ1(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q1Args)
	if user := env.DB.User(a.id); user != nil {
		q1User(env, user, w)
		return nil
	}
	if flightID, err := types.ParseFlightID(a.id); err == nil {
		if flight := env.DB.Flight(flightID); flight != nil {
			q1Flight(flight, w)
			return nil
		}
	}
	if reservationID, err := types.ParseReservationID(a.id); err == nil {
		if reservation := env.DB.Reservation(reservationID); reservation != nil {
			q1Reservation(reservation, w)
		}
	}
	return nil
}

func q1User(env *Env, user *model.User, w *Writer) {
	totalSpent := 0.0
	env.DB.Users.WalkReservations(user, func(id types.ReservationID) bool {
		if reservation := env.DB.Reservation(id); reservation != nil {
			totalSpent += reservation.Base()
		}
		return true
	})
	w.BeginObject()
	w.Field("name", user.Name)
	w.Field("sex", user.Sex.String())
	w.Field("age", strconv.Itoa(types.YearsBetween(user.BirthDate, env.ReferenceDate)))
	w.Field("country_code", user.CountryCode.String())
	w.Field("passport", user.Passport)
	w.Field("number_of_flights", strconv.Itoa(env.DB.Users.FlightCount(user)))
	w.Field("number_of_reservations", strconv.Itoa(env.DB.Users.ReservationCount(user)))
	w.Field("total_spent", fmt.Sprintf("%.2f", totalSpent))
}

func q1Flight(flight *model.Flight, w *Writer) {
	w.BeginObject()
	w.Field("airline", flight.Airline)
	w.Field("plane_model", flight.PlaneModel)
	w.Field("origin", flight.Origin.String())
	w.Field("destination", flight.Destination.String())
	w.Field("schedule_departure_date", flight.ScheduledDeparture.String())
	w.Field("schedule_arrival_date", flight.ScheduledArrival.String())
	w.Field("passengers", strconv.Itoa(flight.Passengers))
	w.Field("delay", strconv.FormatInt(flight.Delay(), 10))
}

func q1Reservation(reservation *model.Reservation, w *Writer) {
	w.BeginObject()
	w.Field("hotel_id", reservation.HotelID)
	w.Field("hotel_name", reservation.HotelName)
	w.Field("hotel_stars", strconv.Itoa(reservation.Stars))
	w.Field("begin_date", reservation.Begin.String())
	w.Field("end_date", reservation.End.String())
	w.Field("includes_breakfast", types.FormatBreakfast(reservation.Breakfast))
	w.Field("nights", strconv.Itoa(reservation.Nights()))
	w.Field("total_price", fmt.Sprintf("%.2f", reservation.Total()))
}
