// ecocollect is the command-line client of the ecocollect waste collection
// marketplace.
//
// Usage:
//
//	ecocollect                 start the interactive shell
//	ecocollect whoami          print the signed-in account
//	ecocollect logout          forget the stored credential
//	ecocollect version         print build information
//
// Configuration flags (-a, -d, -s, -p, -l, -c) are accepted by every command.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
