// Command sheethtml renders a sheet or range of an .xlsx workbook as an
// HTML table.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aerissecure/sheethtml/internal/cli"
)

// version is stamped at build time:
//
//	go build -ldflags "-X main.version=v1.0.0" ./cmd/sheethtml
var version = "dev"

func main() {
	cli.SetVersion(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := execute(ctx, os.Args[1:])
	switch {
	case err == nil:
	case ctx.Err() != nil:
		os.Exit(130) // interrupted
	default:
		fmt.Fprintln(os.Stderr, "sheethtml:", err)
		os.Exit(1)
	}
}

// execute runs the root command with args. --verbose lowers the log level
// to debug before any subcommand runs.
func execute(ctx context.Context, args []string) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SilenceErrors = true // main prints the error

	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
	}
	return root.ExecuteContext(ctx)
}
