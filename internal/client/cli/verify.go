package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/services"
	"github.com/dmitrijs2005/ecocollect/internal/client/validation"
)

// verifyPhone requests a code and asks for it. When a code was sent recently
// the user may still enter that one.
func (a *App) verifyPhone(ctx context.Context, _ []string) error {
	phone, err := a.askDefault("Phone number", a.user().Phone)
	if err != nil {
		return err
	}

	if err := a.services.Verification.RequestOTP(ctx, phone); err != nil {
		if !errors.Is(err, services.ErrOTPCooldown) {
			return err
		}
		a.println(err.Error())
	} else {
		a.println("Code sent to", phone)
	}

	code, err := a.ask("Enter the code you received")
	if err != nil {
		return err
	}
	if err := a.services.Verification.VerifyOTP(ctx, code); err != nil {
		return err
	}
	a.println("Phone verified.")
	return nil
}

func (a *App) askPhoto(prompt string) (models.Photo, error) {
	uri, err := a.ask(prompt + " (file path or URL)")
	if err != nil {
		return models.Photo{}, err
	}
	return models.Photo{URI: uri}, nil
}

func (a *App) uploadDocs(ctx context.Context, _ []string) error {
	cip, err := a.askPhoto("CIP document")
	if err != nil {
		return err
	}
	residence, err := a.askPhoto("Proof of residence")
	if err != nil {
		return err
	}

	if err := a.services.Verification.UploadDocuments(ctx, models.DocumentUpload{CIPDocument: cip, ResidenceProof: residence}); err != nil {
		return err
	}
	a.println("Documents sent, verification pending.")
	return nil
}

func (a *App) proVerify(ctx context.Context, _ []string) error {
	var data models.ProfessionalData

	text := []struct {
		prompt string
		dst    *string
	}{
		{"Company name", &data.Entreprise},
		{"IFU", &data.IFU},
		{"RCCM", &data.RCCM},
		{"Company email", &data.EmailEntreprise},
		{"Company address", &data.AdresseEntreprise},
		{"Waste types handled", &data.TypeDechets},
	}
	for _, f := range text {
		v, err := a.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	team, err := a.askDefault("Team size", "0")
	if err != nil {
		return err
	}
	if data.NbreEquipe, err = strconv.Atoi(team); err != nil {
		return &validation.Error{Field: "nbre_equipe", Message: fmt.Sprintf("%q is not a number", team)}
	}

	if a.role().CollectsWaste() {
		zones, err := a.ask("Zones of intervention (comma separated)")
		if err != nil {
			return err
		}
		data.ZonesIntervention = validation.SplitZones(zones)
	}

	if data.PreuveImpot, err = a.askPhoto("Tax certificate"); err != nil {
		return err
	}

	if err := a.services.Verification.SubmitProfessional(ctx, data); err != nil {
		return err
	}
	a.println("Professional verification submitted.")
	return nil
}
