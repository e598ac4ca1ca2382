package services

import (
	"context"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/filter"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/validation"
)

// WasteService covers declaring waste and browsing declarations.
type WasteService interface {
	Declare(ctx context.Context, data models.WasteData) (*models.WasteDeclaration, error)
	History(ctx context.Context, filters models.WasteFilters) ([]models.WasteDeclaration, error)
	Get(ctx context.Context, id int64) (*models.WasteDeclaration, error)
	// Available lists waste open for recycling. Filters are sent to the
	// backend and applied again locally since it may ignore some of them.
	Available(ctx context.Context, filters models.WasteFilters) ([]models.WasteDeclaration, error)
}

type wasteService struct {
	api     client.Client
	session Session
}

func NewWasteService(api client.Client, sess Session) WasteService {
	return &wasteService{api: api, session: sess}
}

func (w *wasteService) Declare(ctx context.Context, data models.WasteData) (*models.WasteDeclaration, error) {
	if _, err := requireRole(w.session, models.Role.DeclaresWaste); err != nil {
		return nil, err
	}
	if err := validation.Waste(data); err != nil {
		return nil, err
	}
	return w.api.SubmitWaste(ctx, data)
}

func (w *wasteService) History(ctx context.Context, filters models.WasteFilters) ([]models.WasteDeclaration, error) {
	if _, err := requireRole(w.session, models.Role.DeclaresWaste); err != nil {
		return nil, err
	}
	list, err := w.api.ListMyWaste(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Waste(list, filters), nil
}

func (w *wasteService) Get(ctx context.Context, id int64) (*models.WasteDeclaration, error) {
	if _, err := currentUser(w.session); err != nil {
		return nil, err
	}
	return w.api.GetWaste(ctx, id)
}

func (w *wasteService) Available(ctx context.Context, filters models.WasteFilters) ([]models.WasteDeclaration, error) {
	if _, err := requireRole(w.session, models.Role.RecyclesWaste); err != nil {
		return nil, err
	}
	list, err := w.api.ListAvailableWaste(ctx, filters)
	if err != nil {
		return nil, err
	}
	return filter.Waste(list, filters), nil
}
