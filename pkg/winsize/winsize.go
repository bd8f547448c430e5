// Package winsize queries the terminal driver for window dimensions.
package winsize

import (
	"fmt"
	"io"
)

// Size holds the dimensions of a terminal window in character cells.
type Size struct {
	Rows uint16
	Cols uint16
}

// Report writes the window size of the terminal on fd, preceded by the
// request code in bare lowercase hex. The ioctl failure comes back as the
// error for the caller to surface.
func Report(w io.Writer, fd int) error {
	size, err := Get(fd)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "TIOCGWINSZ: %x\n", Request)
	fmt.Fprintf(w, "lines %d\n", size.Rows)
	fmt.Fprintf(w, "columns %d\n", size.Cols)
	return nil
}
