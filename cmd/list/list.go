// Package list implements the lister behavior behind the root command.
package list

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"tabls/pkg/config"
	"tabls/pkg/listing"
	"tabls/pkg/log"
	"tabls/pkg/winsize"

	"golang.org/x/term"

	"github.com/urfave/cli/v3"
)

const allFlag = "all"
const byLinesFlag = "by-lines"
const longFlag = "long"
const onePerLineFlag = "one-per-line"

// Action lists the FILE arguments, defaulting to the current directory.
func Action(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg := &config.Listing{
		Paths:      paths,
		All:        cmd.Bool(allFlag),
		ByLines:    cmd.Bool(byLinesFlag),
		Long:       cmd.Bool(longFlag),
		OnePerLine: cmd.Bool(onePerLineFlag),
		Width:      lineLength(int(os.Stdout.Fd())),
	}

	// Pipes get plain single-column output, like ls.
	if !term.IsTerminal(int(os.Stdout.Fd())) && !cfg.Long {
		cfg.OnePerLine = true
	}

	if errors := cfg.Validate(); len(errors) > 0 {
		log.ErrorMsg("Argument validation errors:\n")
		for _, err := range errors {
			log.ErrorMsg(" - %s\n", err)
		}
		return fmt.Errorf("exiting")
	}

	return listing.New(cfg, os.Stdout).Run()
}

// Flags ...
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     allFlag,
			Aliases:  []string{"a"},
			Usage:    "Show hidden files (do not ignore entries starting with .)",
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     byLinesFlag,
			Aliases:  []string{"x"},
			Usage:    "List entries by lines instead of by columns",
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     longFlag,
			Aliases:  []string{"l"},
			Usage:    "Use a long listing format",
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     onePerLineFlag,
			Aliases:  []string{"1"},
			Usage:    "List one file per line",
			Value:    false,
			Required: false,
		},
	}
}

// lineLength finds the width to render into: the terminal on fd first, the
// COLUMNS variable next, 80 as the last resort.
func lineLength(fd int) int {
	if size, err := winsize.Get(fd); err == nil && size.Cols > 0 {
		return int(size.Cols)
	}

	if val := os.Getenv("COLUMNS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}

	return 80
}
