//go:build !linux && !darwin
// +build !linux,!darwin

package winsize

import (
	"fmt"
)

// Request is 0 where the platform defines no window-size ioctl.
const Request = 0

// Get always fails on platforms without a window-size ioctl.
func Get(fd int) (Size, error) {
	return Size{}, fmt.Errorf("window size query not supported on this platform")
}
