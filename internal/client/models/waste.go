package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type WasteCategory string

const (
	CategoryPlastic    WasteCategory = "plastique"
	CategoryPaper      WasteCategory = "papier"
	CategoryOrganic    WasteCategory = "organique"
	CategoryElectronic WasteCategory = "electronique"
	CategoryOther      WasteCategory = "autre"
)

var WasteCategories = []WasteCategory{CategoryPlastic, CategoryPaper, CategoryOrganic, CategoryElectronic, CategoryOther}

func (c WasteCategory) Valid() bool {
	switch c {
	case CategoryPlastic, CategoryPaper, CategoryOrganic, CategoryElectronic, CategoryOther:
		return true
	}
	return false
}

func (c WasteCategory) Label() string {
	switch c {
	case CategoryPlastic:
		return "Plastique"
	case CategoryPaper:
		return "Papier"
	case CategoryOrganic:
		return "Organique"
	case CategoryElectronic:
		return "Électronique"
	case CategoryOther:
		return "Autre"
	}
	return string(c)
}

// Waste declaration statuses as emitted by the backend.
const (
	WasteStatusPending   = "en attente"
	WasteStatusCollected = "collecté"
	WasteStatusCancelled = "annulé"
)

// WasteData is the declaration form.
type WasteData struct {
	Category WasteCategory
	Weight   decimal.Decimal
	Location string
	Photo    Photo
}

// WasteDeclaration is a declared pickup as stored by the backend.
type WasteDeclaration struct {
	ID        int64           `json:"id"`
	Category  WasteCategory   `json:"category"`
	Weight    decimal.Decimal `json:"weight"`
	Location  string          `json:"location"`
	Photo     string          `json:"photo,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	User      int64           `json:"user"`
	Collector *int64          `json:"collector,omitempty"`
}

func (w WasteDeclaration) String() string {
	return fmt.Sprintf("#%d %s %skg @ %s [%s] %s", w.ID, w.Category.Label(), w.Weight.String(), w.Location, w.Status, w.CreatedAt.Format(time.DateOnly))
}

// WasteFilters narrows a waste list. Zero fields match everything.
type WasteFilters struct {
	Category  WasteCategory
	Date      *time.Time
	Location  string
	MinWeight *decimal.Decimal
	MaxWeight *decimal.Decimal
}

func (f WasteFilters) Empty() bool {
	return f.Category == "" && f.Date == nil && f.Location == "" && f.MinWeight == nil && f.MaxWeight == nil
}
