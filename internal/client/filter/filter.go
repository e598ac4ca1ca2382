// Package filter narrows in-memory lists the way the list screens do. All
// functions are pure and keep the original order; a zero filter field
// matches everything.
package filter

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

func keep[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// ContainsFold reports whether needle occurs in haystack ignoring case,
// using full Unicode case folding.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	folder := cases.Fold()
	return strings.Contains(folder.String(haystack), folder.String(needle))
}

// SameDay compares calendar days; t keeps its own location.
func SameDay(t time.Time, day time.Time) bool {
	ty, tm, td := t.Date()
	dy, dm, dd := day.Date()
	return ty == dy && tm == dm && td == dd
}

func Waste(list []models.WasteDeclaration, f models.WasteFilters) []models.WasteDeclaration {
	return keep(list, func(w models.WasteDeclaration) bool {
		if f.Category != "" && w.Category != f.Category {
			return false
		}
		if f.Date != nil && !SameDay(w.CreatedAt, *f.Date) {
			return false
		}
		if !ContainsFold(w.Location, f.Location) {
			return false
		}
		if f.MinWeight != nil && w.Weight.LessThan(*f.MinWeight) {
			return false
		}
		if f.MaxWeight != nil && w.Weight.GreaterThan(*f.MaxWeight) {
			return false
		}
		return true
	})
}

func Missions(list []models.Mission, f models.MissionFilters) []models.Mission {
	return keep(list, func(m models.Mission) bool {
		if f.Status != "" && m.Status != f.Status {
			return false
		}
		if f.Date != nil && !SameDay(m.CreatedAt, *f.Date) {
			return false
		}
		return ContainsFold(m.Location, f.Zone)
	})
}

func Schedules(list []models.Schedule, f models.ScheduleFilters) []models.Schedule {
	return keep(list, func(s models.Schedule) bool {
		if f.DayOfWeek != nil && s.DayOfWeek != *f.DayOfWeek {
			return false
		}
		return ContainsFold(s.Zone, f.Zone)
	})
}

func Appointments(list []models.Appointment, status string) []models.Appointment {
	return keep(list, func(a models.Appointment) bool {
		return status == "" || a.Status == status
	})
}
