package client

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

func (c *HTTPClient) SubmitWaste(ctx context.Context, data models.WasteData) (*models.WasteDeclaration, error) {
	var out models.WasteDeclaration
	err := c.doMultipart(ctx, http.MethodPost, "/api/waste/", func(w *multipart.Writer) error {
		err := writeFields(w, [][2]string{
			{"category", string(data.Category)},
			{"weight", data.Weight.String()},
			{"location", data.Location},
		})
		if err != nil {
			return err
		}
		if data.Photo.Empty() {
			return nil
		}
		return c.attacher.Attach(ctx, w, "photo", data.Photo)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListMyWaste(ctx context.Context) ([]models.WasteDeclaration, error) {
	var out []models.WasteDeclaration
	if err := c.doJSON(ctx, http.MethodGet, "/api/waste/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetWaste(ctx context.Context, id int64) (*models.WasteDeclaration, error) {
	var out models.WasteDeclaration
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/waste/%d/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListAvailableWaste(ctx context.Context, filters models.WasteFilters) ([]models.WasteDeclaration, error) {
	var out []models.WasteDeclaration
	if err := c.doJSON(ctx, http.MethodGet, "/api/waste/available/", wasteQuery(filters), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func wasteQuery(f models.WasteFilters) url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", string(f.Category))
	}
	if f.Date != nil {
		q.Set("date", f.Date.Format(time.DateOnly))
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.MinWeight != nil {
		q.Set("min_weight", f.MinWeight.String())
	}
	if f.MaxWeight != nil {
		q.Set("max_weight", f.MaxWeight.String())
	}
	return q
}
