package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	AppointmentUpcoming  = "à venir"
	AppointmentDone      = "terminé"
	AppointmentCancelled = "annulé"
)

// Appointment is a recycler's pickup reservation for an available waste item.
type Appointment struct {
	ID       int64
	WasteID  int64
	Category WasteCategory
	Weight   decimal.Decimal
	Location string
	Date     time.Time
	Status   string
}

func (a Appointment) String() string {
	return fmt.Sprintf("#%d waste #%d %s %skg @ %s on %s [%s]", a.ID, a.WasteID, a.Category.Label(), a.Weight.String(), a.Location, a.Date.Format("2006-01-02 15:04"), a.Status)
}
