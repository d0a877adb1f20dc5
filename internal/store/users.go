// Package store holds the in-memory entity managers and the Database facade
// over them. Each manager owns the arenas its records and strings live in
// plus an identifier index; records never leave their manager's pools and
// are only torn down wholesale.
package store

import (
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/arena"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Users owns the user records, their strings, the shared link-node pool and
// the id index.
type Users struct {
	logger   *zap.Logger
	pool     *arena.Pool[model.User]
	chars    arena.CharPool
	payments arena.InternPool
	nodes    arena.NodePool
	index    map[string]*model.User
}

// NewUsers wires an empty user manager.
func NewUsers(logger *zap.Logger) *Users {
	return &Users{
		logger: logger,
		pool:   arena.NewPool[model.User](0),
		index:  make(map[string]*model.User),
	}
}

// Add deep-copies scratch into the manager's pools and indexes it. A
// duplicate id replaces the earlier record and logs a warning; ingestion
// never aborts on duplicates. Replacement reuses the earlier record's slot,
// so iteration visits the id exactly once.
func (m *Users) Add(scratch *model.User) *model.User {
	record := m.index[scratch.ID]
	if record != nil {
		m.logger.Warn("duplicate user id, replacing earlier record",
			zap.String("user_id", record.ID))
	} else {
		record = m.pool.New()
	}
	*record = *scratch
	record.ID = m.chars.Copy(scratch.ID)
	record.Name = m.chars.Copy(scratch.Name)
	record.Email = m.chars.Copy(scratch.Email)
	record.Phone = m.chars.Copy(scratch.Phone)
	record.Passport = m.chars.Copy(scratch.Passport)
	record.Address = m.chars.Copy(scratch.Address)
	record.PayMethod = m.payments.Intern(scratch.PayMethod)
	record.ClearLinks()
	m.index[record.ID] = record
	return record
}

// Get returns the user or nil.
func (m *Users) Get(id string) *model.User {
	return m.index[id]
}

// LinkFlight prepends a flight id to the user's flight list.
func (m *Users) LinkFlight(userID string, flightID types.FlightID) error {
	user := m.index[userID]
	if user == nil {
		return ErrUnknownUser
	}
	user.FlightsHead = m.nodes.Prepend(user.FlightsHead, uint32(flightID))
	return nil
}

// LinkReservation prepends a reservation id to the user's reservation list.
func (m *Users) LinkReservation(userID string, reservationID types.ReservationID) error {
	user := m.index[userID]
	if user == nil {
		return ErrUnknownUser
	}
	user.ReservationsHead = m.nodes.Prepend(user.ReservationsHead, uint32(reservationID))
	return nil
}

// UnlinkReservation removes one occurrence of a reservation id from the
// user's list.
func (m *Users) UnlinkReservation(userID string, reservationID types.ReservationID) error {
	user := m.index[userID]
	if user == nil {
		return ErrUnknownUser
	}
	user.ReservationsHead = m.nodes.Remove(user.ReservationsHead, uint32(reservationID))
	return nil
}

// WalkFlights visits the user's flight ids, most recently linked first.
func (m *Users) WalkFlights(user *model.User, fn func(types.FlightID) bool) {
	m.nodes.Walk(user.FlightsHead, func(id uint32) bool {
		return fn(types.FlightID(id))
	})
}

// WalkReservations visits the user's reservation ids, most recently linked
// first.
func (m *Users) WalkReservations(user *model.User, fn func(types.ReservationID) bool) {
	m.nodes.Walk(user.ReservationsHead, func(id uint32) bool {
		return fn(types.ReservationID(id))
	})
}

// FlightCount reports the length of the user's flight list.
func (m *Users) FlightCount(user *model.User) int {
	return m.nodes.Count(user.FlightsHead)
}

// ReservationCount reports the length of the user's reservation list.
func (m *Users) ReservationCount(user *model.User) int {
	return m.nodes.Count(user.ReservationsHead)
}

// ForEach visits every stored user in insertion order.
func (m *Users) ForEach(fn func(*model.User) bool) {
	m.pool.ForEach(fn)
}

// Len reports the number of stored users.
func (m *Users) Len() int { return m.pool.Len() }

// Reset tears down every record, string and link list at once.
func (m *Users) Reset() {
	m.pool.Reset()
	m.chars.Reset()
	m.payments.Reset()
	m.nodes.Reset()
	m.index = make(map[string]*model.User)
}
