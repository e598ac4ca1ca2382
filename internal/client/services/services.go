// Package services contains the role-specific use cases of the ecocollect
// client. Each service validates input locally, checks that the signed-in
// role may perform the action, calls the backend and refreshes the session
// when the action changes the user record.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/session"
	"github.com/dmitrijs2005/ecocollect/internal/logging"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbiddenRole    = errors.New("action not available for this account type")
)

// Session is the part of the session store the services rely on.
type Session interface {
	State() session.State
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context)
	RefreshProfile(ctx context.Context) error
}

// Services bundles every use case behind one value for the CLI.
type Services struct {
	Auth         AuthService
	Profile      ProfileService
	Verification VerificationService
	Waste        WasteService
	Collector    CollectorService
	Appointments AppointmentService
}

type Options struct {
	// OTPResendInterval is the minimum delay between two OTP requests.
	OTPResendInterval time.Duration
	// Now is the clock; time.Now when nil.
	Now func() time.Time
}

func New(api client.Client, sess Session, log logging.Logger, opts Options) *Services {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Services{
		Auth:         NewAuthService(api, sess),
		Profile:      NewProfileService(api, sess),
		Verification: NewVerificationService(api, sess, log, opts.OTPResendInterval, opts.Now),
		Waste:        NewWasteService(api, sess),
		Collector:    NewCollectorService(api, sess),
		Appointments: NewAppointmentService(api, sess, opts.Now),
	}
}

func currentUser(s Session) (*models.User, error) {
	st := s.State()
	if !st.Authenticated || st.User == nil {
		return nil, ErrNotAuthenticated
	}
	return st.User, nil
}

func requireRole(s Session, allowed func(models.Role) bool) (*models.User, error) {
	u, err := currentUser(s)
	if err != nil {
		return nil, err
	}
	if !allowed(u.Type) {
		return nil, ErrForbiddenRole
	}
	return u, nil
}

// refresh reloads the user after a change; failures are handled by the
// session.
func refresh(ctx context.Context, s Session) {
	_ = s.RefreshProfile(ctx)
}
