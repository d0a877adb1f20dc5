package model

import "github.com/MarkoPoloResearchLab/voyagedb/internal/types"

// Reservation is one row of reservations.csv. Rating 0 means the guest left
// none.
type Reservation struct {
	ID            types.ReservationID
	UserID        string
	HotelID       string
	HotelName     string
	Stars         int
	CityTax       int
	Address       string
	Begin         types.Date
	End           types.Date
	PricePerNight int
	Breakfast     bool
	RoomDetails   string
	Rating        int8
	Comment       string
}

// Nights of the stay; End is the checkout date.
func (r *Reservation) Nights() int {
	return types.DaysBetween(r.Begin, r.End)
}

// Base is the stay cost without city tax.
func (r *Reservation) Base() float64 {
	return float64(r.PricePerNight * r.Nights())
}

// Total adds the city tax: base + base/100 × tax.
func (r *Reservation) Total() float64 {
	base := r.Base()
	return base + base/100*float64(r.CityTax)
}
