package models

import "fmt"

var dayNames = [7]string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

// DayName returns the French day name for 0 (Sunday) to 6 (Saturday).
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return fmt.Sprintf("jour %d", day)
	}
	return dayNames[day]
}

// Schedule is a recurring collector availability slot.
type Schedule struct {
	ID        int64  `json:"id,omitempty"`
	Zone      string `json:"zone"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DefaultSchedule is the form's initial value: Monday, 08:00 to 17:00.
func DefaultSchedule() Schedule {
	return Schedule{DayOfWeek: 1, StartTime: "08:00", EndTime: "17:00"}
}

func (s Schedule) String() string {
	return fmt.Sprintf("#%d %s %s-%s @ %s", s.ID, DayName(s.DayOfWeek), s.StartTime, s.EndTime, s.Zone)
}

type ScheduleFilters struct {
	Zone      string
	DayOfWeek *int
}
