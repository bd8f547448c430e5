//go:build linux || darwin
// +build linux darwin

package winsize

import (
	"golang.org/x/sys/unix"
)

// Request is the platform's ioctl request code for reading the window size.
const Request = unix.TIOCGWINSZ

// Get queries the terminal attached to fd. When fd is not a terminal the
// error is the raw errno description from the kernel.
func Get(fd int) (Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, err
	}

	return Size{
		Rows: ws.Row,
		Cols: ws.Col,
	}, nil
}
