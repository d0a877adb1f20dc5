package model

import "github.com/MarkoPoloResearchLab/voyagedb/internal/types"

// Flight is one row of flights.csv. The pilot, copilot and real-arrival
// columns are validated during ingestion but not stored.
type Flight struct {
	ID                 types.FlightID
	Airline            string
	PlaneModel         string
	TotalSeats         int
	Origin             types.AirportCode
	Destination        types.AirportCode
	ScheduledDeparture types.Timestamp
	ScheduledArrival   types.Timestamp
	RealDeparture      types.Timestamp
	Passengers         int
	Valid              bool
}

// Delay is the departure delay in seconds; negative when the flight left
// early.
func (f *Flight) Delay() int64 {
	return types.SecondsBetween(f.ScheduledDeparture, f.RealDeparture)
}
