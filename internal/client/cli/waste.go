package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

const dateLayout = time.DateOnly

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

func parseWeight(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid weight %q", s)
	}
	return d, nil
}

func parseWasteFilters(args []string) (models.WasteFilters, error) {
	var f models.WasteFilters
	kv, err := parseArgs(args, "category", "date", "location", "min", "max")
	if err != nil {
		return f, err
	}

	f.Category = models.WasteCategory(kv["category"])
	f.Location = kv["location"]
	if v, ok := kv["date"]; ok {
		d, err := parseDate(v)
		if err != nil {
			return f, err
		}
		f.Date = &d
	}
	for key, dst := range map[string]**decimal.Decimal{"min": &f.MinWeight, "max": &f.MaxWeight} {
		if v, ok := kv[key]; ok {
			w, err := parseWeight(v)
			if err != nil {
				return f, err
			}
			*dst = &w
		}
	}
	return f, nil
}

func (a *App) declare(ctx context.Context, _ []string) error {
	var names []string
	for _, c := range models.WasteCategories {
		names = append(names, string(c))
	}
	category, err := a.ask("Category (" + strings.Join(names, ", ") + ")")
	if err != nil {
		return err
	}
	rawWeight, err := a.ask("Weight in kg")
	if err != nil {
		return err
	}
	weight, err := parseWeight(rawWeight)
	if err != nil {
		return err
	}
	location, err := a.askDefault("Pickup location", a.user().Location)
	if err != nil {
		return err
	}
	photo, err := a.ask("Photo (file path or URL, empty to skip)")
	if err != nil {
		return err
	}

	w, err := a.services.Waste.Declare(ctx, models.WasteData{
		Category: models.WasteCategory(category),
		Weight:   weight,
		Location: location,
		Photo:    models.Photo{URI: photo},
	})
	if err != nil {
		return err
	}
	a.println("Declared:", w.String())
	return nil
}

func (a *App) printWaste(list []models.WasteDeclaration) {
	if len(list) == 0 {
		a.println("Nothing found.")
		return
	}
	for _, w := range list {
		a.println(w.String())
	}
}

func (a *App) history(ctx context.Context, args []string) error {
	f, err := parseWasteFilters(args)
	if err != nil {
		return err
	}
	list, err := a.services.Waste.History(ctx, f)
	if err != nil {
		return err
	}
	a.printWaste(list)
	return nil
}

func (a *App) waste(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	w, err := a.services.Waste.Get(ctx, id)
	if err != nil {
		return err
	}
	a.println(w.String())
	if w.Photo != "" {
		a.println("  photo:", w.Photo)
	}
	return nil
}

func (a *App) available(ctx context.Context, args []string) error {
	f, err := parseWasteFilters(args)
	if err != nil {
		return err
	}
	list, err := a.services.Waste.Available(ctx, f)
	if err != nil {
		return err
	}
	a.printWaste(list)
	return nil
}

func (a *App) reserve(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errUsage
	}
	id, err := parseID(args[:1])
	if err != nil {
		return err
	}

	clock := "09:00"
	if len(args) == 3 {
		clock = args[2]
	}
	when, err := time.ParseInLocation(dateLayout+" 15:04", args[1]+" "+clock, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q %q, want YYYY-MM-DD HH:MM", args[1], clock)
	}

	ap, err := a.services.Appointments.Reserve(ctx, id, when)
	if err != nil {
		return err
	}
	a.println("Reserved:", ap.String())
	return nil
}

func (a *App) appointments(_ context.Context, args []string) error {
	if len(args) > 1 {
		return errUsage
	}
	status := ""
	if len(args) == 1 {
		status = args[0]
	}

	list, err := a.services.Appointments.List(status)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No appointments.")
		return nil
	}
	for _, ap := range list {
		a.println(ap.String())
	}
	return nil
}

func (a *App) cancelAppointment(_ context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := a.services.Appointments.Cancel(id); err != nil {
		return err
	}
	a.println("Appointment cancelled.")
	return nil
}
