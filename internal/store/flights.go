package store

import (
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/arena"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Flights owns the flight records and the id index. Airline and plane-model
// strings repeat heavily across the dataset, so both are interned.
type Flights struct {
	logger *zap.Logger
	pool   *arena.Pool[model.Flight]
	names  arena.InternPool
	index  map[types.FlightID]*model.Flight
}

// NewFlights wires an empty flight manager.
func NewFlights(logger *zap.Logger) *Flights {
	return &Flights{
		logger: logger,
		pool:   arena.NewPool[model.Flight](0),
		index:  make(map[types.FlightID]*model.Flight),
	}
}

// Add deep-copies scratch into the manager's pools and indexes it,
// replacing (with a warning) on duplicate id. Replacement reuses the
// earlier record's slot, so iteration visits the id exactly once.
func (m *Flights) Add(scratch *model.Flight) *model.Flight {
	record := m.index[scratch.ID]
	if record != nil {
		m.logger.Warn("duplicate flight id, replacing earlier record",
			zap.String("flight_id", scratch.ID.String()))
	} else {
		record = m.pool.New()
	}
	*record = *scratch
	record.Airline = m.names.Intern(scratch.Airline)
	record.PlaneModel = m.names.Intern(scratch.PlaneModel)
	record.Valid = true
	m.index[record.ID] = record
	return record
}

// Get returns the flight, or nil when absent or invalidated.
func (m *Flights) Get(id types.FlightID) *model.Flight {
	return m.index[id]
}

// Invalidate tombstones the flight: the record keeps its storage but loses
// its id and leaves the index, so lookups and iteration skip it.
func (m *Flights) Invalidate(id types.FlightID) {
	record := m.index[id]
	if record == nil {
		return
	}
	record.Valid = false
	record.ID = 0
	delete(m.index, id)
}

// SetPassengers fixes the passenger count established at commit time.
func (m *Flights) SetPassengers(id types.FlightID, count int) error {
	record := m.index[id]
	if record == nil {
		return ErrUnknownFlight
	}
	record.Passengers = count
	return nil
}

// AddPassengers adjusts the passenger counter, refusing to push a flight
// past its seat capacity.
func (m *Flights) AddPassengers(id types.FlightID, delta int) error {
	record := m.index[id]
	if record == nil {
		return ErrUnknownFlight
	}
	if record.Passengers+delta > record.TotalSeats {
		m.logger.Warn("passenger count would exceed seats",
			zap.String("flight_id", id.String()),
			zap.Int("seats", record.TotalSeats))
	}
	record.Passengers += delta
	return nil
}

// ForEach visits every valid flight in insertion order.
func (m *Flights) ForEach(fn func(*model.Flight) bool) {
	m.pool.ForEach(func(record *model.Flight) bool {
		if !record.Valid {
			return true
		}
		return fn(record)
	})
}

// Len reports stored records, invalidated ones included.
func (m *Flights) Len() int { return m.pool.Len() }

// Reset tears everything down at once.
func (m *Flights) Reset() {
	m.pool.Reset()
	m.names.Reset()
	m.index = make(map[types.FlightID]*model.Flight)
}
