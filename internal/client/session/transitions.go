package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/common"
)

// Initialize hydrates the session from the stored credential. It runs once;
// later calls are no-ops. An invalid credential demotes the session to
// anonymous without surfacing an error.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.state.Phase != PhaseUninitialized {
		s.mu.Unlock()
		return nil
	}
	s.op++
	op := s.op
	s.state.Phase = PhaseInitializing
	s.state.Loading = true
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()
	notify(snapshot, subs)

	credential, ok, err := s.storage.Get(ctx, common.CredentialKey)
	if err != nil {
		s.log.Error(ctx, "failed to read credential", "error", err)
		s.commit(op, anonymous)
		return err
	}
	if !ok {
		s.commit(op, anonymous)
		return nil
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "stored credential rejected", "error", err)
		s.removeIfHeld(ctx, credential)
		s.commit(op, anonymous)
		return nil
	}

	s.commit(op, func(st *State) {
		st.Phase = PhaseAuthenticated
		st.User = user
		st.Authenticated = true
		st.Loading = false
	})
	return nil
}

// Login exchanges creds for a credential, stores it and loads the user.
// Either both the credential and the user are in place afterwards, or
// neither is and LastError says why.
func (s *Store) Login(ctx context.Context, creds models.Credentials) error {
	op := s.begin(func(st *State) {
		st.Phase = PhaseLoggingIn
		st.Loading = true
		st.LastError = ""
	})

	tokens, err := s.api.Login(ctx, creds)
	if err != nil {
		return s.failLogin(ctx, op, "", err)
	}
	if tokens == nil || tokens.AuthToken == "" {
		return s.failLogin(ctx, op, "", ErrMissingToken)
	}

	stored, err := s.storeIfCurrent(ctx, op, tokens.AuthToken)
	if err != nil {
		return s.failLogin(ctx, op, "", err)
	}
	if !stored {
		return ErrSuperseded
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		return s.failLogin(ctx, op, tokens.AuthToken, err)
	}

	committed := s.commit(op, func(st *State) {
		st.Phase = PhaseAuthenticated
		st.User = user
		st.Authenticated = true
		st.Loading = false
	})
	if !committed {
		s.removeIfHeld(ctx, tokens.AuthToken)
		return ErrSuperseded
	}
	return nil
}

func (s *Store) failLogin(ctx context.Context, op uint64, written string, cause error) error {
	if !s.removeIfCurrent(ctx, op) {
		if written != "" {
			s.removeIfHeld(ctx, written)
		}
		return ErrSuperseded
	}

	msg := loginMessage(cause)
	committed := s.commit(op, func(st *State) {
		anonymous(st)
		st.LastError = msg
	})
	if !committed && written != "" {
		s.removeIfHeld(ctx, written)
	}
	return cause
}

func loginMessage(err error) string {
	if errors.Is(err, ErrMissingToken) {
		return LoginFailedMessage
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.FieldMessage(); msg != "" {
			return msg
		}
		return LoginFailedMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return LoginFailedMessage
}

// Logout clears the session. The in-memory state is cleared even when the
// credential cannot be removed; that failure is only logged. A login started
// after the logout owns the credential and is left alone.
func (s *Store) Logout(ctx context.Context) {
	op := s.begin(func(st *State) {
		st.Phase = PhaseLoggingOut
		st.Loading = true
		st.User = nil
		st.Authenticated = false
	})

	if s.removeIfCurrent(ctx, op) {
		s.commit(op, anonymous)
	}
}

// RefreshProfile reloads the current user. It is a no-op when not
// authenticated. A failed fetch keeps the previous user and is only logged;
// the error is returned for information and never changes the session.
func (s *Store) RefreshProfile(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || !s.state.Authenticated {
		s.mu.Unlock()
		return nil
	}
	op := s.op
	s.state.Phase = PhaseRefreshing
	s.state.Loading = true
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()
	notify(snapshot, subs)

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile refresh failed", "error", err)
		s.commit(op, func(st *State) {
			st.Phase = PhaseAuthenticated
			st.Loading = false
		})
		return err
	}

	s.commit(op, func(st *State) {
		st.Phase = PhaseAuthenticated
		st.User = user
		st.Loading = false
	})
	return nil
}

// ClearError drops LastError and nothing else.
func (s *Store) ClearError() {
	s.mu.Lock()
	if s.closed || s.state.LastError == "" {
		s.mu.Unlock()
		return
	}
	s.state.LastError = ""
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()
	notify(snapshot, subs)
}
