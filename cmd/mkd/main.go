// Package main is the entry point for the mkd CLI.
//
// All functionality lives in the internal/cli package, which defines the
// cobra commands. Build-time variables (version, commit, date) are injected
// via ldflags during release builds and default to "dev", "none" and
// "unknown" otherwise.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/shinji-kodama/mkd/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Interrupts stop the run before the next path.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewRootCommand())
	stop()

	os.Exit(int(code))
}
