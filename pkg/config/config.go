// Package config holds the lister's options, fed from CLI flags.
package config

import "fmt"

// Listing describes one listing run.
type Listing struct {
	Paths      []string
	All        bool // include dotfiles
	ByLines    bool // tabulate across rows instead of down columns
	Long       bool // one detailed line per entry
	OnePerLine bool // plain single-column output
	Width      int  // target line width in character cells
}

// Validate ...
func (cfg *Listing) Validate() []error {
	var errors []error

	if len(cfg.Paths) == 0 {
		errors = append(errors, fmt.Errorf("need at least one path to list"))
	}

	if cfg.Width < 1 {
		errors = append(errors, fmt.Errorf("line width must be positive, got %d", cfg.Width))
	}

	return errors
}
