package services

import (
	"context"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/validation"
)

// AuthService covers sign-up, sign-in and sign-out.
//
// Contract:
//   - Register: validate the form and create the account; it does not log in.
//   - Login: validate credentials and run the session login transition.
//   - Logout: clear the session; it never fails.
type AuthService interface {
	Register(ctx context.Context, data models.RegisterData) error
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context)
}

type authService struct {
	api     client.Client
	session Session
}

func NewAuthService(api client.Client, sess Session) AuthService {
	return &authService{api: api, session: sess}
}

func (a *authService) Register(ctx context.Context, data models.RegisterData) error {
	if err := validation.Registration(data); err != nil {
		return err
	}
	return a.api.Register(ctx, data)
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) error {
	if err := validation.Credentials(creds); err != nil {
		return err
	}
	return a.session.Login(ctx, creds)
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
}
