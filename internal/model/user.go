// Package model defines the three entity records held by the in-memory
// database. Records are plain values; the string fields of a stored record
// point into the owning manager's pools.
package model

import (
	"github.com/MarkoPoloResearchLab/voyagedb/internal/arena"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// User is one row of users.csv plus the heads of the per-user link lists.
type User struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	BirthDate   types.Date
	Sex         types.Sex
	Passport    string
	CountryCode types.CountryCode
	Address     string
	CreatedAt   types.Timestamp
	PayMethod   string
	Status      types.AccountStatus

	// Link-list heads into the user manager's node pool.
	FlightsHead      int32
	ReservationsHead int32
}

// ClearLinks resets both list heads to the empty list.
func (u *User) ClearLinks() {
	u.FlightsHead = arena.NilNode
	u.ReservationsHead = arena.NilNode
}

// Active reports whether the account is active.
func (u *User) Active() bool {
	return u.Status == types.StatusActive
}
