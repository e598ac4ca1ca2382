package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Mission statuses: pending, then accepted or rejected, then collected.
const (
	MissionPending   = "en attente"
	MissionAccepted  = "accepté"
	MissionRejected  = "rejeté"
	MissionCollected = "collecté"
)

var MissionStatuses = []string{MissionPending, MissionAccepted, MissionRejected, MissionCollected}

// Mission is a waste declaration assigned to the current collector.
type Mission struct {
	ID              int64           `json:"id"`
	Category        WasteCategory   `json:"category"`
	Weight          decimal.Decimal `json:"weight"`
	Location        string          `json:"location"`
	Photo           string          `json:"photo,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UserUsername    string          `json:"user_username,omitempty"`
	UserPhone       string          `json:"user_phone,omitempty"`
	UserLocationGPS string          `json:"user_location_gps,omitempty"`
}

func (m Mission) String() string {
	return fmt.Sprintf("#%d %s %skg @ %s [%s] %s (%s %s)", m.ID, m.Category.Label(), m.Weight.String(), m.Location, m.Status, m.CreatedAt.Format(time.DateOnly), m.UserUsername, m.UserPhone)
}

type MissionFilters struct {
	Status string
	Date   *time.Time
	Zone   string
}

// CollectorAvailability is the availability toggle payload.
type CollectorAvailability struct {
	IsAvailable bool `json:"is_available"`
}
