// Package cli provides the interactive ecocollect command-line client.
//
// The REPL reads one command per line and dispatches it through a command
// table. Every command declares who may run it: anonymous users only get
// register and login, signed-in users get the commands their role allows.
// Errors are printed and the loop continues.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
