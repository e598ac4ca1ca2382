package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthTokens, error) {
	var tokens models.AuthTokens
	if err := c.doJSON(ctx, http.MethodPost, "/auth/token/login", nil, creds, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/users/", nil, data, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/users/me/", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodPatch, "/auth/users/me/", nil, update, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateLocation sends the position as a "lat,lng" string.
func (c *HTTPClient) UpdateLocation(ctx context.Context, loc models.LocationUpdate) (*models.User, error) {
	body := map[string]string{
		"location_gps": strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
	}

	var u models.User
	if err := c.doJSON(ctx, http.MethodPatch, "/auth/profile/update/", nil, body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
