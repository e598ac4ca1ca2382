package services

import (
	"context"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/filter"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/validation"
)

// CollectorService is the collector's work queue and planning.
type CollectorService interface {
	SetAvailability(ctx context.Context, available bool) error
	Missions(ctx context.Context, filters models.MissionFilters) ([]models.Mission, error)
	Accept(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	Collect(ctx context.Context, id int64) error
	CollectAll(ctx context.Context) error

	Schedules(ctx context.Context, filters models.ScheduleFilters) ([]models.Schedule, error)
	AddSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

type collectorService struct {
	api     client.Client
	session Session
}

func NewCollectorService(api client.Client, sess Session) CollectorService {
	return &collectorService{api: api, session: sess}
}

func (c *collectorService) authorize() error {
	_, err := requireRole(c.session, models.Role.CollectsWaste)
	return err
}

func (c *collectorService) SetAvailability(ctx context.Context, available bool) error {
	if err := c.authorize(); err != nil {
		return err
	}
	if err := c.api.SetCollectorAvailability(ctx, available); err != nil {
		return err
	}
	refresh(ctx, c.session)
	return nil
}

func (c *collectorService) Missions(ctx context.Context, filters models.MissionFilters) ([]models.Mission, error) {
	if err := c.authorize(); err != nil {
		return nil, err
	}
	list, err := c.api.ListMissions(ctx, filters)
	if err != nil {
		return nil, err
	}
	return filter.Missions(list, filters), nil
}

func (c *collectorService) Accept(ctx context.Context, id int64) error {
	if err := c.authorize(); err != nil {
		return err
	}
	return c.api.AcceptMission(ctx, id)
}

func (c *collectorService) Reject(ctx context.Context, id int64) error {
	if err := c.authorize(); err != nil {
		return err
	}
	return c.api.RejectMission(ctx, id)
}

func (c *collectorService) Collect(ctx context.Context, id int64) error {
	if err := c.authorize(); err != nil {
		return err
	}
	return c.api.MarkCollected(ctx, id)
}

func (c *collectorService) CollectAll(ctx context.Context) error {
	if err := c.authorize(); err != nil {
		return err
	}
	return c.api.MarkAllCollected(ctx)
}

func (c *collectorService) Schedules(ctx context.Context, filters models.ScheduleFilters) ([]models.Schedule, error) {
	if err := c.authorize(); err != nil {
		return nil, err
	}
	list, err := c.api.ListSchedules(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Schedules(list, filters), nil
}

func (c *collectorService) AddSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error) {
	if err := c.authorize(); err != nil {
		return nil, err
	}
	if err := validation.Schedule(s); err != nil {
		return nil, err
	}
	s.ID = 0
	return c.api.AddSchedule(ctx, s)
}

func (c *collectorService) UpdateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error) {
	if err := c.authorize(); err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, client.ErrScheduleIDRequired
	}
	if err := validation.Schedule(s); err != nil {
		return nil, err
	}
	return c.api.UpdateSchedule(ctx, s)
}

func (c *collectorService) DeleteSchedule(ctx context.Context, id int64) error {
	if err := c.authorize(); err != nil {
		return err
	}
	return c.api.DeleteSchedule(ctx, id)
}
