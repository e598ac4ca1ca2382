package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sample() []models.WasteDeclaration {
	day := func(d, h int) time.Time { return time.Date(2025, 4, d, h, 30, 0, 0, time.UTC) }
	return []models.WasteDeclaration{
		{ID: 1, Category: models.CategoryPlastic, Weight: decimal.RequireFromString("1.0"), Location: "Cotonou, A", CreatedAt: day(18, 8)},
		{ID: 2, Category: models.CategoryPaper, Weight: decimal.RequireFromString("2.5"), Location: "Cotonou, B", CreatedAt: day(18, 23)},
		{ID: 3, Category: models.CategoryPlastic, Weight: decimal.RequireFromString("5.0"), Location: "Podji, C", CreatedAt: day(19, 0)},
		{ID: 4, Category: models.CategoryPaper, Weight: decimal.RequireFromString("10.0"), Location: "Podji, C", CreatedAt: day(20, 12)},
		{ID: 5, Category: models.CategoryPlastic, Weight: decimal.RequireFromString("20.0"), Location: "Podji, C", CreatedAt: day(21, 12)},
	}
}

func ids(list []models.WasteDeclaration) []int64 {
	out := []int64{}
	for _, w := range list {
		out = append(out, w.ID)
	}
	return out
}

func TestWaste(t *testing.T) {
	list := sample()
	day := time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter models.WasteFilters
		want   []int64
	}{
		{"empty filter", models.WasteFilters{}, []int64{1, 2, 3, 4, 5}},
		{"category", models.WasteFilters{Category: models.CategoryPlastic}, []int64{1, 3, 5}},
		{"weight range inclusive", models.WasteFilters{MinWeight: dec("2.5"), MaxWeight: dec("10.0")}, []int64{2, 3, 4}},
		{"min only", models.WasteFilters{MinWeight: dec("10")}, []int64{4, 5}},
		{"max only", models.WasteFilters{MaxWeight: dec("1")}, []int64{1}},
		{"location case-insensitive", models.WasteFilters{Location: "cotonou"}, []int64{1, 2}},
		{"day ignores time", models.WasteFilters{Date: &day}, []int64{1, 2}},
		{"combined", models.WasteFilters{Category: models.CategoryPaper, Location: "PODJI"}, []int64{4}},
		{"no match", models.WasteFilters{Category: models.CategoryOrganic}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Waste(list, tt.filter)))
		})
	}
}

func TestWaste_EmptyFilterReturnsListUnchanged(t *testing.T) {
	list := sample()
	assert.Equal(t, list, Waste(list, models.WasteFilters{}))
	assert.Equal(t, sample(), list)
}

func TestWaste_DayUsesRecordLocation(t *testing.T) {
	cotonou := time.FixedZone("WAT", 3600)
	list := []models.WasteDeclaration{{ID: 1, CreatedAt: time.Date(2025, 4, 19, 0, 30, 0, 0, cotonou)}}
	day := time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC)

	assert.Len(t, Waste(list, models.WasteFilters{Date: &day}), 1)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Abomey-Calavi", "CALAVI"))
	assert.True(t, ContainsFold("Ouidah", ""))
	assert.True(t, ContainsFold("Straße", "STRASSE"))
	assert.True(t, ContainsFold("ÉCOLE Cotonou", "école"))
	assert.False(t, ContainsFold("Porto-Novo", "cotonou"))
}

func TestMissions(t *testing.T) {
	d := time.Date(2025, 4, 18, 10, 0, 0, 0, time.UTC)
	list := []models.Mission{
		{ID: 1, Status: models.MissionPending, Location: "Cotonou, Akpakpa", CreatedAt: d},
		{ID: 2, Status: models.MissionAccepted, Location: "Cotonou, Fidjrossè", CreatedAt: d.AddDate(0, 0, 1)},
		{ID: 3, Status: models.MissionPending, Location: "Porto-Novo", CreatedAt: d},
	}

	assert.Equal(t, list, Missions(list, models.MissionFilters{}))
	assert.Equal(t, []models.Mission{list[0], list[2]}, Missions(list, models.MissionFilters{Status: models.MissionPending}))
	assert.Equal(t, []models.Mission{list[0], list[1]}, Missions(list, models.MissionFilters{Zone: "COTONOU"}))
	assert.Equal(t, []models.Mission{list[0]}, Missions(list, models.MissionFilters{Zone: "cotonou", Date: &d}))
}

func TestSchedules(t *testing.T) {
	list := []models.Schedule{
		{ID: 1, Zone: "Cotonou", DayOfWeek: 1},
		{ID: 2, Zone: "Porto-Novo", DayOfWeek: 1},
		{ID: 3, Zone: "Cotonou Nord", DayOfWeek: 3},
	}
	monday := 1
	sunday := 0

	assert.Equal(t, list, Schedules(list, models.ScheduleFilters{}))
	assert.Equal(t, []models.Schedule{list[0], list[1]}, Schedules(list, models.ScheduleFilters{DayOfWeek: &monday}))
	assert.Equal(t, []models.Schedule{list[0], list[2]}, Schedules(list, models.ScheduleFilters{Zone: "cotonou"}))
	assert.Empty(t, Schedules(list, models.ScheduleFilters{DayOfWeek: &sunday}))
}

func TestAppointments(t *testing.T) {
	list := []models.Appointment{
		{ID: 1, Status: models.AppointmentUpcoming},
		{ID: 2, Status: models.AppointmentDone},
	}
	assert.Equal(t, list, Appointments(list, ""))
	assert.Equal(t, []models.Appointment{list[1]}, Appointments(list, models.AppointmentDone))
}
