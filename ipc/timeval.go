//go:build unix

package ipc

import (
	"time"

	"golang.org/x/sys/unix"
)

// durationToTimeval converts a non-negative timeout for SO_SNDTIMEO/SO_RCVTIMEO.
// Zero stays zero and disables the timeout. Positive durations below the
// microsecond resolution round up so they never turn into "no timeout".
func durationToTimeval(d time.Duration) unix.Timeval {
	if d > 0 && d < time.Microsecond {
		d = time.Microsecond
	}
	return unix.NsecToTimeval(d.Nanoseconds())
}
