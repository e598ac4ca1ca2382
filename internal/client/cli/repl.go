package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type scope int

const (
	// anonymous commands are only offered while signed out.
	anonymous scope = iota
	// signedIn commands need a session and pass the role gate.
	signedIn
)

type command struct {
	name  string
	usage string
	help  string
	scope scope
	// allow restricts signedIn commands to some roles; nil allows all.
	allow func(models.Role) bool
	run   func(ctx context.Context, args []string) error
}

func (c command) availableTo(loggedIn bool, role models.Role) bool {
	if !loggedIn {
		return c.scope == anonymous
	}
	return c.scope == signedIn && (c.allow == nil || c.allow(role))
}

// errUsage makes the REPL print the command's usage line.
var errUsage = errors.New("usage")

// execIface is the command surface the REPL needs. App satisfies it; tests
// provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	commands() []command
}

// runREPL reads a line from reader, parses the first token as the command
// and dispatches it through the command table of a. The loop exits on EOF
// or when the user types "exit" or "quit".
//
// Commands not offered to the current user are reported the same way as
// unknown ones, except that signed-out users are told to log in first.
// Errors returned by handlers are printed; they never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("eco%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(a)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := lookup(a.commands(), name)
		switch {
		case !ok:
			printlnFn("Unknown command:", name)
		case !cmd.availableTo(a.isLoggedIn(), a.role()):
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
			} else if cmd.scope == anonymous {
				printlnFn("Already logged in, use logout first.")
			} else {
				printlnFn("Command not available for your account type:", name)
			}
		default:
			if err := cmd.run(ctx, args); err != nil {
				if errors.Is(err, errUsage) {
					printlnFn("Usage:", strings.TrimSpace(cmd.name+" "+cmd.usage))
				} else {
					printlnFn("Error:", describe(err))
				}
			}
		}
	}
}

func lookup(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(a execIface) {
	printlnFn("Available commands:")
	for _, c := range a.commands() {
		if !c.availableTo(a.isLoggedIn(), a.role()) {
			continue
		}
		printlnFn(fmt.Sprintf("  %-28s %s", strings.TrimSpace(c.name+" "+c.usage), c.help))
	}
	printlnFn(fmt.Sprintf("  %-28s %s", "help", "show this list"))
	printlnFn(fmt.Sprintf("  %-28s %s", "exit", "leave the program"))
}
