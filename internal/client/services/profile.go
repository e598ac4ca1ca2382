package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/validation"
)

// ProfileService edits the signed-in user's record.
type ProfileService interface {
	Update(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	UpdateLocation(ctx context.Context, loc models.LocationUpdate) (*models.User, error)
}

type profileService struct {
	api     client.Client
	session Session
}

func NewProfileService(api client.Client, sess Session) ProfileService {
	return &profileService{api: api, session: sess}
}

func (p *profileService) Update(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	if _, err := currentUser(p.session); err != nil {
		return nil, err
	}
	if update.Username != nil && *update.Username == "" {
		return nil, &validation.Error{Field: "username", Message: "required"}
	}

	u, err := p.api.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}
	refresh(ctx, p.session)
	return u, nil
}

func (p *profileService) UpdateLocation(ctx context.Context, loc models.LocationUpdate) (*models.User, error) {
	if _, err := currentUser(p.session); err != nil {
		return nil, err
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return nil, &validation.Error{Field: "latitude", Message: fmt.Sprintf("%v out of range", loc.Latitude)}
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return nil, &validation.Error{Field: "longitude", Message: fmt.Sprintf("%v out of range", loc.Longitude)}
	}

	u, err := p.api.UpdateLocation(ctx, loc)
	if err != nil {
		return nil, err
	}
	refresh(ctx, p.session)
	return u, nil
}
