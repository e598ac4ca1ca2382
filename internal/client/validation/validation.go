// Package validation checks user input before anything reaches the
// network. Every failure is a *Error naming the offending field.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

var ErrInvalid = errors.New("invalid input")

type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(field, msg string) error {
	return &Error{Field: field, Message: msg}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

const minPasswordLength = 8

var (
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	otpRe   = regexp.MustCompile(`^[0-9]{1,6}$`)
)

func Credentials(c models.Credentials) error {
	if blank(c.Email) {
		return invalid("email", "required")
	}
	if blank(c.Password) {
		return invalid("password", "required")
	}
	if !strings.Contains(c.Email, "@") {
		return invalid("email", "must contain @")
	}
	return nil
}

func Registration(d models.RegisterData) error {
	switch {
	case blank(d.Username):
		return invalid("username", "required")
	case blank(d.Email):
		return invalid("email", "required")
	case d.Password == "":
		return invalid("password", "required")
	case d.Confirm == "":
		return invalid("confirm", "required")
	}

	if !emailRe.MatchString(d.Email) {
		return invalid("email", "invalid email address")
	}
	if len([]rune(d.Password)) < minPasswordLength {
		return invalid("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if d.Password != d.Confirm {
		return invalid("confirm", "passwords do not match")
	}
	if !d.Type.SelfRegistrable() {
		return invalid("type", fmt.Sprintf("unknown account type %q", d.Type))
	}
	return nil
}

// ParseClock parses an "HH:MM" time of day into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil || len(s) != len("15:04") {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func Schedule(s models.Schedule) error {
	if blank(s.Zone) {
		return invalid("zone", "required")
	}
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return invalid("day_of_week", "must be between 0 and 6")
	}

	start, err := ParseClock(s.StartTime)
	if err != nil {
		return invalid("start_time", err.Error())
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return invalid("end_time", err.Error())
	}
	if end <= start {
		return invalid("end_time", "must be after start time")
	}
	return nil
}

func Waste(d models.WasteData) error {
	if !d.Category.Valid() {
		return invalid("category", fmt.Sprintf("unknown category %q", d.Category))
	}
	if !d.Weight.IsPositive() {
		return invalid("weight", "must be greater than 0")
	}
	if blank(d.Location) {
		return invalid("location", "required")
	}
	return nil
}

func Phone(phone string) error {
	if blank(phone) {
		return invalid("phone", "required")
	}
	return nil
}

func OTP(code string) error {
	if blank(code) {
		return invalid("otp", "required")
	}
	if !otpRe.MatchString(code) {
		return invalid("otp", "must be at most 6 digits")
	}
	return nil
}

func Documents(d models.DocumentUpload) error {
	if d.CIPDocument.Empty() {
		return invalid("cip_document", "required")
	}
	if d.ResidenceProof.Empty() {
		return invalid("residence_proof", "required")
	}
	return nil
}

func Professional(d models.ProfessionalData) error {
	required := []struct{ field, value string }{
		{"entreprise", d.Entreprise},
		{"ifu", d.IFU},
		{"rccm", d.RCCM},
		{"email_entreprise", d.EmailEntreprise},
		{"adresse_entreprise", d.AdresseEntreprise},
		{"type_dechets", d.TypeDechets},
	}
	for _, r := range required {
		if blank(r.value) {
			return invalid(r.field, "required")
		}
	}
	if d.PreuveImpot.Empty() {
		return invalid("preuve_impot", "required")
	}
	if d.NbreEquipe < 0 {
		return invalid("nbre_equipe", "must not be negative")
	}
	if d.Type == models.RoleCollector && len(d.ZonesIntervention) == 0 {
		return invalid("zones_intervention", "at least one zone is required")
	}
	return nil
}

// SplitZones turns "a, b,,c" into ["a" "b" "c"].
func SplitZones(s string) []string {
	var zones []string
	for _, z := range strings.Split(s, ",") {
		if z = strings.TrimSpace(z); z != "" {
			zones = append(zones, z)
		}
	}
	return zones
}
