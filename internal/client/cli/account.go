package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/validation"
	"github.com/dmitrijs2005/ecocollect/internal/common"
)

// register prompts for the sign-up form. The account is created but not
// signed in.
func (a *App) register(ctx context.Context, _ []string) error {
	username, err := a.ask("Enter username")
	if err != nil {
		return err
	}
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	var roles []string
	for _, r := range models.Roles {
		if r.SelfRegistrable() {
			roles = append(roles, string(r))
		}
	}
	role, err := a.ask("Account type (" + strings.Join(roles, ", ") + ")")
	if err != nil {
		return err
	}
	location, err := a.ask("Enter your town or district")
	if err != nil {
		return err
	}

	data := models.RegisterData{
		Username: username,
		Email:    email,
		Password: string(password),
		Confirm:  string(confirm),
		Type:     models.Role(role),
		Location: location,
	}
	if err := a.services.Auth.Register(ctx, data); err != nil {
		return err
	}

	a.println("Account created, you can now log in.")
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.services.Auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		if errors.Is(err, validation.ErrInvalid) {
			return err
		}
		if msg := a.session.State().LastError; msg != "" {
			return errors.New(msg)
		}
		return err
	}

	u := a.user()
	a.println(fmt.Sprintf("Welcome, %s (%s)", u.Username, u.Type.Label()))
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.services.Auth.Logout(ctx)
	a.println("Logged out.")
	return nil
}

func (a *App) home(_ context.Context, _ []string) error {
	u := a.user()

	var tabs []string
	for _, t := range u.Type.Tabs() {
		tabs = append(tabs, t.Title)
	}
	a.println(fmt.Sprintf("Bonjour %s | %s", u.Username, strings.Join(tabs, " | ")))

	for _, s := range u.Type.HomeSections() {
		a.println(" - " + homeLine(u, s))
	}
	return nil
}

func homeLine(u *models.User, s models.Section) string {
	switch s {
	case models.SectionPhoneVerification:
		if u.PhoneVerified {
			return "Phone: verified " + u.Phone
		}
		return "Phone: not verified (verify-phone)"
	case models.SectionDocumentVerification:
		if u.DocumentsUploaded {
			return "Documents: uploaded, status " + statusText(u.VerificationStatus)
		}
		return "Documents: missing (upload-docs)"
	case models.SectionProfessionalVerification:
		if u.ProVerificationSubmitted {
			return "Professional verification: " + statusText(u.ProVerificationStatus)
		}
		return "Professional verification: not submitted (pro-verify)"
	case models.SectionAccountStatus:
		switch {
		case u.IsVerified():
			return "Account: verified"
		case u.VerificationStatus.IsRejected():
			return "Account: rejected " + u.RejectedReason
		}
		return "Account: verification incomplete"
	case models.SectionDeclareWaste:
		return "Declare waste with 'declare', follow it with 'history'"
	case models.SectionMissions:
		avail := "unavailable"
		if u.IsAvailable() {
			avail = "available"
		}
		return "Missions: you are " + avail + " ('missions', 'availability')"
	case models.SectionAvailableWaste:
		return "Waste to recycle: 'available', then 'reserve'"
	case models.SectionPoints:
		return fmt.Sprintf("Points: %d", u.Points)
	}
	return string(s)
}

func statusText(s models.VerificationStatus) string {
	if s == "" {
		return "unknown"
	}
	return string(s)
}

func (a *App) profile(_ context.Context, _ []string) error {
	u := a.user()
	a.println(u.String())
	rows := [][2]string{
		{"Phone", u.Phone},
		{"Location", u.Location},
		{"GPS", u.LocationGPS},
		{"Verified", strconv.FormatBool(u.IsVerified())},
	}
	if u.Type.CollectsWaste() {
		rows = append(rows, [2]string{"Available", strconv.FormatBool(u.IsAvailable())})
	}
	for _, r := range rows {
		if r[1] != "" {
			a.println(fmt.Sprintf("  %-9s %s", r[0]+":", r[1]))
		}
	}
	return nil
}

// editProfile sends only the fields the user changed.
func (a *App) editProfile(ctx context.Context, _ []string) error {
	u := a.user()
	var update models.ProfileUpdate

	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"Username", u.Username, &update.Username},
		{"Phone", u.Phone, &update.Phone},
		{"Location", u.Location, &update.Location},
	}
	for _, f := range fields {
		v, err := a.askDefault(f.prompt, f.current)
		if err != nil {
			return err
		}
		if v != f.current {
			*f.dst = &v
		}
	}

	if update == (models.ProfileUpdate{}) {
		a.println("Nothing to change.")
		return nil
	}

	updated, err := a.services.Profile.Update(ctx, update)
	if err != nil {
		return err
	}
	a.println("Profile updated:", updated.String())
	return nil
}

func (a *App) location(ctx context.Context, args []string) error {
	var raw [2]string
	switch len(args) {
	case 2:
		raw = [2]string{args[0], args[1]}
	case 0:
		var err error
		if raw[0], err = a.ask("Latitude"); err != nil {
			return err
		}
		if raw[1], err = a.ask("Longitude"); err != nil {
			return err
		}
	default:
		return errUsage
	}

	lat, err := strconv.ParseFloat(raw[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q", raw[0])
	}
	lon, err := strconv.ParseFloat(raw[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q", raw[1])
	}

	if _, err := a.services.Profile.UpdateLocation(ctx, models.LocationUpdate{Latitude: lat, Longitude: lon}); err != nil {
		return err
	}
	a.println("Location saved.")
	return nil
}

func (a *App) refresh(ctx context.Context, _ []string) error {
	if err := a.session.RefreshProfile(ctx); err != nil {
		return err
	}
	a.println(a.user().String())
	return nil
}
