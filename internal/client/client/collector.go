package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

func (c *HTTPClient) SetCollectorAvailability(ctx context.Context, available bool) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/collector/availability/", nil, models.CollectorAvailability{IsAvailable: available}, nil)
}

func (c *HTTPClient) ListMissions(ctx context.Context, filters models.MissionFilters) ([]models.Mission, error) {
	q := url.Values{}
	if filters.Status != "" {
		q.Set("status", filters.Status)
	}
	if filters.Date != nil {
		q.Set("date", filters.Date.Format(time.DateOnly))
	}
	if filters.Zone != "" {
		q.Set("zone", filters.Zone)
	}

	var out []models.Mission
	if err := c.doJSON(ctx, http.MethodGet, "/api/waste/my_missions/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) missionAction(ctx context.Context, id int64, action string) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/waste/%d/%s/", id, action), nil, nil, nil)
}

func (c *HTTPClient) AcceptMission(ctx context.Context, id int64) error {
	return c.missionAction(ctx, id, "accept_mission")
}

func (c *HTTPClient) RejectMission(ctx context.Context, id int64) error {
	return c.missionAction(ctx, id, "reject_mission")
}

func (c *HTTPClient) MarkCollected(ctx context.Context, id int64) error {
	return c.missionAction(ctx, id, "mark_collected")
}

func (c *HTTPClient) MarkAllCollected(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/waste/mark_all_collected/", nil, nil, nil)
}

func (c *HTTPClient) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	var out []models.Schedule
	if err := c.doJSON(ctx, http.MethodGet, "/api/collector-schedules/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AddSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error) {
	var out models.Schedule
	if err := c.doJSON(ctx, http.MethodPost, "/api/collector-schedules/", nil, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateSchedule(ctx context.Context, s models.Schedule) (*models.Schedule, error) {
	if s.ID == 0 {
		return nil, ErrScheduleIDRequired
	}

	var out models.Schedule
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/collector-schedules/%d/", s.ID), nil, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteSchedule(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/collector-schedules/%d/", id), nil, nil, nil)
}
