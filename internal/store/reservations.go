package store

import (
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/arena"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Reservations owns the reservation records and the id index. Hotel ids and
// names are interned; user ids and free-text fields get plain copies.
type Reservations struct {
	logger *zap.Logger
	pool   *arena.Pool[model.Reservation]
	hotels arena.InternPool
	chars  arena.CharPool
	index  map[types.ReservationID]*model.Reservation
}

// NewReservations wires an empty reservation manager.
func NewReservations(logger *zap.Logger) *Reservations {
	return &Reservations{
		logger: logger,
		pool:   arena.NewPool[model.Reservation](0),
		index:  make(map[types.ReservationID]*model.Reservation),
	}
}

// Add deep-copies scratch into the manager's pools and indexes it,
// replacing (with a warning) on duplicate id. Replacement reuses the
// earlier record's slot, so iteration visits the id exactly once.
func (m *Reservations) Add(scratch *model.Reservation) *model.Reservation {
	record := m.index[scratch.ID]
	if record != nil {
		m.logger.Warn("duplicate reservation id, replacing earlier record",
			zap.String("reservation_id", scratch.ID.String()))
	} else {
		record = m.pool.New()
	}
	*record = *scratch
	record.UserID = m.chars.Copy(scratch.UserID)
	record.HotelID = m.hotels.Intern(scratch.HotelID)
	record.HotelName = m.hotels.Intern(scratch.HotelName)
	record.Address = m.chars.Copy(scratch.Address)
	record.RoomDetails = m.chars.Copy(scratch.RoomDetails)
	record.Comment = m.chars.Copy(scratch.Comment)
	m.index[record.ID] = record
	return record
}

// Get returns the reservation or nil.
func (m *Reservations) Get(id types.ReservationID) *model.Reservation {
	return m.index[id]
}

// ForEach visits every stored reservation in insertion order.
func (m *Reservations) ForEach(fn func(*model.Reservation) bool) {
	m.pool.ForEach(fn)
}

// Len reports the number of stored reservations.
func (m *Reservations) Len() int { return m.pool.Len() }

// Reset tears everything down at once.
func (m *Reservations) Reset() {
	m.pool.Reset()
	m.hotels.Reset()
	m.chars.Reset()
	m.index = make(map[types.ReservationID]*model.Reservation)
}
