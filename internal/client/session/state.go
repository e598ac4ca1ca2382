package session

import "github.com/dmitrijs2005/ecocollect/internal/client/models"

type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseInitializing
	PhaseAnonymous
	PhaseLoggingIn
	PhaseAuthenticated
	PhaseRefreshing
	PhaseLoggingOut
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseInitializing:
		return "initializing"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseLoggingIn:
		return "loggingIn"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseRefreshing:
		return "refreshing"
	case PhaseLoggingOut:
		return "loggingOut"
	}
	return "unknown"
}

// State is a snapshot of the session. Authenticated is true only while a
// credential is stored and User is set.
type State struct {
	Phase         Phase
	User          *models.User
	Authenticated bool
	Loading       bool
	LastError     string
}
