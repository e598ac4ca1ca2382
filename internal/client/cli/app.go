package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/services"
	"github.com/dmitrijs2005/ecocollect/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Session is what the CLI reads from the session store.
type Session interface {
	State() session.State
	Initialize(ctx context.Context) error
	RefreshProfile(ctx context.Context) error
}

type App struct {
	services *services.Services
	session  Session
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(svc *services.Services, sess Session) *App {
	return &App{services: svc, session: sess, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Run restores the previous session and starts the REPL.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to ecocollect (type 'help' for commands)")

	if err := a.session.Initialize(ctx); err != nil {
		printlnFn("Could not restore session:", describe(err))
	}
	if u := a.user(); u != nil {
		printlnFn(fmt.Sprintf("Signed in as %s (%s)", u.Username, u.Type.Label()))
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) user() *models.User {
	st := a.session.State()
	if !st.Authenticated {
		return nil
	}
	return st.User
}

func (a *App) isLoggedIn() bool {
	return a.user() != nil
}

func (a *App) role() models.Role {
	if u := a.user(); u != nil {
		return u.Type
	}
	return ""
}

func (a *App) status() string {
	u := a.user()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Username, u.Type.Label())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// askDefault returns def when the answer is empty.
func (a *App) askDefault(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	s, err := a.ask(prompt)
	if err != nil || s != "" {
		return s, err
	}
	return def, nil
}

// describe turns an error into the line shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "session expired, please log in again"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	}
	return client.Message(err)
}
