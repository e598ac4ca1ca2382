package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

func (a *App) missions(ctx context.Context, args []string) error {
	kv, err := parseArgs(args, "status", "date", "zone")
	if err != nil {
		return err
	}
	f := models.MissionFilters{Status: kv["status"], Zone: kv["zone"]}
	if v, ok := kv["date"]; ok {
		d, err := parseDate(v)
		if err != nil {
			return err
		}
		f.Date = &d
	}

	list, err := a.services.Collector.Missions(ctx, f)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No missions.")
		return nil
	}
	for _, m := range list {
		a.println(m.String())
	}
	return nil
}

// missionAction wraps the single-mission commands.
func (a *App) missionAction(ctx context.Context, args []string, done string, fn func(context.Context, int64) error) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := fn(ctx, id); err != nil {
		return err
	}
	a.println(fmt.Sprintf("Mission #%d %s.", id, done))
	return nil
}

func (a *App) accept(ctx context.Context, args []string) error {
	return a.missionAction(ctx, args, "accepted", a.services.Collector.Accept)
}

func (a *App) reject(ctx context.Context, args []string) error {
	return a.missionAction(ctx, args, "rejected", a.services.Collector.Reject)
}

func (a *App) collect(ctx context.Context, args []string) error {
	return a.missionAction(ctx, args, "collected", a.services.Collector.Collect)
}

func (a *App) collectAll(ctx context.Context, _ []string) error {
	answer, err := a.ask("Mark every accepted mission as collected? (y/N)")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.println("Cancelled.")
		return nil
	}
	if err := a.services.Collector.CollectAll(ctx); err != nil {
		return err
	}
	a.println("All accepted missions collected.")
	return nil
}

// availability toggles when called without argument.
func (a *App) availability(ctx context.Context, args []string) error {
	want := !a.user().IsAvailable()
	switch {
	case len(args) == 0:
	case len(args) == 1 && args[0] == "on":
		want = true
	case len(args) == 1 && args[0] == "off":
		want = false
	default:
		return errUsage
	}

	if err := a.services.Collector.SetAvailability(ctx, want); err != nil {
		return err
	}
	if a.user().IsAvailable() {
		a.println("You are available for missions.")
	} else {
		a.println("You are unavailable.")
	}
	return nil
}

func (a *App) schedules(ctx context.Context, args []string) error {
	kv, err := parseArgs(args, "day", "zone")
	if err != nil {
		return err
	}
	f := models.ScheduleFilters{Zone: kv["zone"]}
	if v, ok := kv["day"]; ok {
		day, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid day %q, want 0 (Sunday) to 6", v)
		}
		f.DayOfWeek = &day
	}

	list, err := a.services.Collector.Schedules(ctx, f)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No schedules.")
		return nil
	}
	for _, s := range list {
		a.println(s.String())
	}
	return nil
}

// askSchedule fills s from prompts, keeping current values on empty input.
func (a *App) askSchedule(s models.Schedule) (models.Schedule, error) {
	zone, err := a.askDefault("Zone", s.Zone)
	if err != nil {
		return s, err
	}
	day, err := a.askDefault("Day (0=Dimanche .. 6=Samedi)", strconv.Itoa(s.DayOfWeek))
	if err != nil {
		return s, err
	}
	start, err := a.askDefault("Start time HH:MM", s.StartTime)
	if err != nil {
		return s, err
	}
	end, err := a.askDefault("End time HH:MM", s.EndTime)
	if err != nil {
		return s, err
	}

	s.Zone, s.StartTime, s.EndTime = zone, start, end
	if s.DayOfWeek, err = strconv.Atoi(day); err != nil {
		return s, fmt.Errorf("invalid day %q", day)
	}
	return s, nil
}

func (a *App) scheduleAdd(ctx context.Context, _ []string) error {
	s, err := a.askSchedule(models.DefaultSchedule())
	if err != nil {
		return err
	}
	added, err := a.services.Collector.AddSchedule(ctx, s)
	if err != nil {
		return err
	}
	a.println("Added:", added.String())
	return nil
}

func (a *App) scheduleEdit(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	list, err := a.services.Collector.Schedules(ctx, models.ScheduleFilters{})
	if err != nil {
		return err
	}
	var current *models.Schedule
	for i := range list {
		if list[i].ID == id {
			current = &list[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("schedule #%d not found", id)
	}

	s, err := a.askSchedule(*current)
	if err != nil {
		return err
	}
	updated, err := a.services.Collector.UpdateSchedule(ctx, s)
	if err != nil {
		return err
	}
	a.println("Updated:", updated.String())
	return nil
}

func (a *App) scheduleDelete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := a.services.Collector.DeleteSchedule(ctx, id); err != nil {
		return err
	}
	a.println(fmt.Sprintf("Schedule #%d removed.", id))
	return nil
}
