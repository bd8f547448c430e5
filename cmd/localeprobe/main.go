package main

import (
	"os"

	"tabls/pkg/locale"
)

// Prints the locale the environment selects, then three byte-wise string
// comparisons whose results stay the same under every locale. Arguments are
// ignored and the exit status is always 0.
func main() {
	locale.Report(os.Stdout)
}
