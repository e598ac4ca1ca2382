package client

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

func (c *HTTPClient) RequestOTP(ctx context.Context, req models.OTPRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/core/request-otp/", nil, req, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, req models.OTPVerify) error {
	return c.doJSON(ctx, http.MethodPost, "/core/verify-phone/", nil, req, nil)
}

func (c *HTTPClient) UploadDocuments(ctx context.Context, docs models.DocumentUpload) error {
	return c.doMultipart(ctx, http.MethodPost, "/auth/upload-verification-documents/", func(w *multipart.Writer) error {
		if err := c.attacher.Attach(ctx, w, "cip_document", docs.CIPDocument); err != nil {
			return err
		}
		return c.attacher.Attach(ctx, w, "residence_proof", docs.ResidenceProof)
	}, nil)
}

func (c *HTTPClient) SubmitProfessionalVerification(ctx context.Context, data models.ProfessionalData) error {
	zones := data.ZonesIntervention
	if zones == nil {
		zones = []string{}
	}
	encodedZones, err := json.Marshal(zones)
	if err != nil {
		return err
	}

	return c.doMultipart(ctx, http.MethodPost, "/auth/professional-verification/", func(w *multipart.Writer) error {
		err := writeFields(w, [][2]string{
			{"type", string(data.Type)},
			{"entreprise", data.Entreprise},
			{"ifu", data.IFU},
			{"rccm", data.RCCM},
			{"email_entreprise", data.EmailEntreprise},
			{"adresse_entreprise", data.AdresseEntreprise},
			{"type_dechets", data.TypeDechets},
			{"nbre_equipe", strconv.Itoa(data.NbreEquipe)},
			{"zones_intervention", string(encodedZones)},
		})
		if err != nil {
			return err
		}
		if data.PreuveImpot.Empty() {
			return nil
		}
		return c.attacher.Attach(ctx, w, "preuve_impot", data.PreuveImpot)
	}, nil)
}
