package main

import (
	"context"
	"fmt"
	"os"

	"tabls/cmd/list"
	"tabls/cmd/version"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Printf("[!] Error: %s\n", err)
		os.Exit(1)
	}
}

// newApp builds the root command: listing is the root action, so
// `tabls [flags] [FILE ...]` works directly, with version as a subcommand.
func newApp() *cli.Command {
	return &cli.Command{
		Name:      "tabls",
		Usage:     "ls-style lister that tabulates to the terminal width",
		ArgsUsage: "[FILE ...]",
		Flags:     list.Flags(),
		Action:    list.Action,
		Commands: []*cli.Command{
			version.GetCommand(),
		},
	}
}
