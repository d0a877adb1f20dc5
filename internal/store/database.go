package store

import (
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Database aggregates the three entity managers. It owns them exclusively;
// everything else holds records by id and resolves through here.
type Database struct {
	Users        *Users
	Flights      *Flights
	Reservations *Reservations
}

// New wires an empty database.
func New(logger *zap.Logger) *Database {
	return &Database{
		Users:        NewUsers(logger),
		Flights:      NewFlights(logger),
		Reservations: NewReservations(logger),
	}
}

// AddUser stores a copy of scratch.
func (db *Database) AddUser(scratch *model.User) *model.User {
	return db.Users.Add(scratch)
}

// AddFlight stores a copy of scratch.
func (db *Database) AddFlight(scratch *model.Flight) *model.Flight {
	return db.Flights.Add(scratch)
}

// AddReservation stores a copy of scratch and links it to its user. When
// the id replaces an earlier reservation, the link moves with it: the old
// holder keeps no entry and the new holder gains exactly one.
func (db *Database) AddReservation(scratch *model.Reservation) (*model.Reservation, error) {
	if db.Users.Get(scratch.UserID) == nil {
		return nil, ErrUnknownUser
	}
	priorUser := ""
	if prior := db.Reservations.Get(scratch.ID); prior != nil {
		priorUser = prior.UserID
	}
	record := db.Reservations.Add(scratch)
	if priorUser == record.UserID {
		return record, nil
	}
	if priorUser != "" {
		if err := db.Users.UnlinkReservation(priorUser, record.ID); err != nil {
			return nil, err
		}
	}
	if err := db.Users.LinkReservation(record.UserID, record.ID); err != nil {
		return nil, err
	}
	return record, nil
}

// User looks a user up by id.
func (db *Database) User(id string) *model.User { return db.Users.Get(id) }

// Flight looks a valid flight up by id.
func (db *Database) Flight(id types.FlightID) *model.Flight { return db.Flights.Get(id) }

// Reservation looks a reservation up by id.
func (db *Database) Reservation(id types.ReservationID) *model.Reservation {
	return db.Reservations.Get(id)
}

// InvalidateFlight tombstones a flight.
func (db *Database) InvalidateFlight(id types.FlightID) { db.Flights.Invalidate(id) }

// AddPassenger records one user↔flight link: both ids must resolve, the
// flight's counter is bumped and the flight joins the user's list.
func (db *Database) AddPassenger(userID string, flightID types.FlightID) error {
	if db.Users.Get(userID) == nil {
		return ErrUnknownUser
	}
	if db.Flights.Get(flightID) == nil {
		return ErrUnknownFlight
	}
	if err := db.Flights.AddPassengers(flightID, 1); err != nil {
		return err
	}
	return db.Users.LinkFlight(userID, flightID)
}

// Reset empties all three managers; every record pointer is invalidated.
func (db *Database) Reset() {
	db.Users.Reset()
	db.Flights.Reset()
	db.Reservations.Reset()
}
