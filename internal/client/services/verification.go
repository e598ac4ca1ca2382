package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/validation"
	"github.com/dmitrijs2005/ecocollect/internal/logging"
)

var ErrOTPCooldown = errors.New("a code was sent recently")

// CooldownError tells how long to wait before requesting another code.
type CooldownError struct {
	Wait time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s, retry in %s", ErrOTPCooldown, e.Wait.Round(time.Second))
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrOTPCooldown
}

// VerificationService runs the account verification steps.
type VerificationService interface {
	RequestOTP(ctx context.Context, phone string) error
	// ResendIn is how long until RequestOTP may be called again.
	ResendIn() time.Duration
	VerifyOTP(ctx context.Context, code string) error
	UploadDocuments(ctx context.Context, docs models.DocumentUpload) error
	SubmitProfessional(ctx context.Context, data models.ProfessionalData) error
}

type verificationService struct {
	api     client.Client
	session Session
	log     logging.Logger
	now     func() time.Time

	mu      sync.Mutex
	limiter *rate.Limiter
}

func NewVerificationService(api client.Client, sess Session, log logging.Logger, resendInterval time.Duration, now func() time.Time) VerificationService {
	limit := rate.Inf
	if resendInterval > 0 {
		limit = rate.Every(resendInterval)
	}
	return &verificationService{
		api:     api,
		session: sess,
		log:     log,
		now:     now,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (v *verificationService) RequestOTP(ctx context.Context, phone string) error {
	if _, err := currentUser(v.session); err != nil {
		return err
	}
	if err := validation.Phone(phone); err != nil {
		return err
	}

	now := v.now()
	v.mu.Lock()
	r := v.limiter.ReserveN(now, 1)
	if wait := r.DelayFrom(now); wait > 0 {
		r.CancelAt(now)
		v.mu.Unlock()
		return &CooldownError{Wait: wait}
	}
	v.mu.Unlock()

	if err := v.api.RequestOTP(ctx, models.OTPRequest{Phone: phone}); err != nil {
		// a failed send does not start the countdown; cancel at the
		// reservation instant since the clock has moved during the call
		v.mu.Lock()
		r.CancelAt(now)
		v.mu.Unlock()
		return err
	}

	v.log.Info(ctx, "otp requested", "phone", phone)
	return nil
}

func (v *verificationService) ResendIn() time.Duration {
	now := v.now()
	v.mu.Lock()
	defer v.mu.Unlock()

	r := v.limiter.ReserveN(now, 1)
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return wait
}

func (v *verificationService) VerifyOTP(ctx context.Context, code string) error {
	if _, err := currentUser(v.session); err != nil {
		return err
	}
	if err := validation.OTP(code); err != nil {
		return err
	}

	if err := v.api.VerifyOTP(ctx, models.OTPVerify{OTP: code}); err != nil {
		return err
	}
	refresh(ctx, v.session)
	return nil
}

func (v *verificationService) UploadDocuments(ctx context.Context, docs models.DocumentUpload) error {
	if _, err := requireRole(v.session, models.Role.RequiresDocuments); err != nil {
		return err
	}
	if err := validation.Documents(docs); err != nil {
		return err
	}

	if err := v.api.UploadDocuments(ctx, docs); err != nil {
		return err
	}
	refresh(ctx, v.session)
	return nil
}

func (v *verificationService) SubmitProfessional(ctx context.Context, data models.ProfessionalData) error {
	u, err := requireRole(v.session, models.Role.RequiresProfessionalVerification)
	if err != nil {
		return err
	}
	data.Type = u.Type
	if err := validation.Professional(data); err != nil {
		return err
	}

	if err := v.api.SubmitProfessionalVerification(ctx, data); err != nil {
		return err
	}
	refresh(ctx, v.session)
	return nil
}
