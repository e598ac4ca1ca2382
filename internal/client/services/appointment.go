package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/filter"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

var (
	ErrPastDate            = errors.New("appointment date is in the past")
	ErrAlreadyReserved     = errors.New("waste already has an upcoming appointment")
	ErrWasteNotAvailable   = errors.New("waste is no longer available")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentClosed   = errors.New("appointment is no longer upcoming")
)

// AppointmentService keeps the recycler's pickup reservations. The book
// lives in memory for the lifetime of the process; the backend has no
// appointment endpoint.
type AppointmentService interface {
	Reserve(ctx context.Context, wasteID int64, date time.Time) (*models.Appointment, error)
	// List returns appointments in reservation order, optionally restricted
	// to one status. Upcoming appointments whose date has passed are
	// reported as done.
	List(status string) ([]models.Appointment, error)
	Cancel(id int64) error
}

type appointmentService struct {
	api     client.Client
	session Session
	now     func() time.Time

	mu     sync.Mutex
	nextID int64
	book   []models.Appointment
}

func NewAppointmentService(api client.Client, sess Session, now func() time.Time) AppointmentService {
	return &appointmentService{api: api, session: sess, now: now}
}

func (a *appointmentService) Reserve(ctx context.Context, wasteID int64, date time.Time) (*models.Appointment, error) {
	if _, err := requireRole(a.session, models.Role.RecyclesWaste); err != nil {
		return nil, err
	}
	if !date.After(a.now()) {
		return nil, ErrPastDate
	}

	a.mu.Lock()
	reserved := a.upcomingLocked(wasteID)
	a.mu.Unlock()
	if reserved {
		return nil, ErrAlreadyReserved
	}

	w, err := a.api.GetWaste(ctx, wasteID)
	if err != nil {
		return nil, err
	}
	if w.Status != models.WasteStatusPending {
		return nil, fmt.Errorf("%w: status %q", ErrWasteNotAvailable, w.Status)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// checked again, the lock was released while fetching
	if a.upcomingLocked(wasteID) {
		return nil, ErrAlreadyReserved
	}

	a.nextID++
	ap := models.Appointment{
		ID:       a.nextID,
		WasteID:  w.ID,
		Category: w.Category,
		Weight:   w.Weight,
		Location: w.Location,
		Date:     date,
		Status:   models.AppointmentUpcoming,
	}
	a.book = append(a.book, ap)
	return &ap, nil
}

func (a *appointmentService) upcomingLocked(wasteID int64) bool {
	now := a.now()
	return slices.ContainsFunc(a.book, func(ap models.Appointment) bool {
		return ap.WasteID == wasteID && ap.Status == models.AppointmentUpcoming && ap.Date.After(now)
	})
}

func (a *appointmentService) List(status string) ([]models.Appointment, error) {
	if _, err := requireRole(a.session, models.Role.RecyclesWaste); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	for i := range a.book {
		if a.book[i].Status == models.AppointmentUpcoming && !a.book[i].Date.After(now) {
			a.book[i].Status = models.AppointmentDone
		}
	}
	return filter.Appointments(slices.Clone(a.book), status), nil
}

func (a *appointmentService) Cancel(id int64) error {
	if _, err := requireRole(a.session, models.Role.RecyclesWaste); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	i := slices.IndexFunc(a.book, func(ap models.Appointment) bool { return ap.ID == id })
	if i < 0 {
		return ErrAppointmentNotFound
	}
	if a.book[i].Status != models.AppointmentUpcoming {
		return fmt.Errorf("%w: #%d is %s", ErrAppointmentClosed, id, a.book[i].Status)
	}
	a.book[i].Status = models.AppointmentCancelled
	return nil
}
