// Package session owns the client-side login state: the current user, the
// authenticated flag and the loading/error flags, kept consistent with the
// credential persisted in storage.
//
// Every transition takes an operation token. A completion whose token is no
// longer current is dropped, so a logout always wins over a login or refresh
// that is still in flight.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/storage"
	"github.com/dmitrijs2005/ecocollect/internal/common"
	"github.com/dmitrijs2005/ecocollect/internal/logging"
)

// LoginFailedMessage is shown when a login error carries no message.
const LoginFailedMessage = "Failed to login"

// ErrSuperseded is returned by an operation overtaken by a newer one.
var ErrSuperseded = errors.New("session operation superseded")

// ErrMissingToken is returned when a successful login response has no token.
var ErrMissingToken = errors.New("login response carries no token")

// API is the part of the backend the session needs.
type API interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthTokens, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

type Store struct {
	api     API
	storage storage.Storage
	log     logging.Logger

	mu      sync.Mutex
	state   State
	op      uint64
	closed  bool
	subs    map[int]func(State)
	nextSub int

	// credMu serializes credential writes with the op check that guards them.
	credMu sync.Mutex
}

func New(api API, store storage.Storage, log logging.Logger) *Store {
	return &Store{
		api:     api,
		storage: store,
		log:     log,
		subs:    make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive every new snapshot and returns a
// function that removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Close detaches the store. Operations still in flight finish but their
// results are dropped.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]func(State))
}

// begin starts a transition: it supersedes any operation in flight and
// applies fn to the state.
func (s *Store) begin(fn func(st *State)) uint64 {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0
	}
	s.op++
	op := s.op
	fn(&s.state)
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(snapshot, subs)
	return op
}

// commit applies fn if op is still the current operation.
func (s *Store) commit(op uint64, fn func(st *State)) bool {
	s.mu.Lock()
	if s.closed || s.op != op {
		s.mu.Unlock()
		return false
	}
	fn(&s.state)
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(snapshot, subs)
	return true
}

func (s *Store) current(op uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && s.op == op
}

func (s *Store) snapshotLocked() (State, []func(State)) {
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return s.state, subs
}

func notify(st State, subs []func(State)) {
	for _, fn := range subs {
		fn(st)
	}
}

// storeIfCurrent writes the credential unless op was superseded.
func (s *Store) storeIfCurrent(ctx context.Context, op uint64, credential string) (bool, error) {
	s.credMu.Lock()
	defer s.credMu.Unlock()

	if !s.current(op) {
		return false, nil
	}
	return true, s.storage.Set(ctx, common.CredentialKey, credential)
}

// removeIfCurrent deletes the credential unless op was superseded, in which
// case the newer operation owns it.
func (s *Store) removeIfCurrent(ctx context.Context, op uint64) bool {
	s.credMu.Lock()
	defer s.credMu.Unlock()

	if !s.current(op) {
		return false
	}
	if err := s.storage.Remove(ctx, common.CredentialKey); err != nil {
		s.log.Error(ctx, "failed to remove credential", "error", err)
	}
	return true
}

// removeIfHeld deletes the stored credential only when it still equals
// credential, leaving a newer session untouched.
func (s *Store) removeIfHeld(ctx context.Context, credential string) {
	s.credMu.Lock()
	defer s.credMu.Unlock()

	stored, ok, err := s.storage.Get(ctx, common.CredentialKey)
	if err != nil {
		s.log.Error(ctx, "failed to read credential", "error", err)
		return
	}
	if !ok || stored != credential {
		return
	}
	if err := s.storage.Remove(ctx, common.CredentialKey); err != nil {
		s.log.Error(ctx, "failed to remove credential", "error", err)
	}
}

func anonymous(st *State) {
	st.Phase = PhaseAnonymous
	st.User = nil
	st.Authenticated = false
	st.Loading = false
}
