//go:build unix && !(dragonfly || freebsd || linux || netbsd || openbsd)

package ipc

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// newDatagramSocket opens a unix datagram socket that is closed on exec.
// Without SOCK_CLOEXEC the flag is set in a second call, so the fork lock is
// held across both to keep a concurrent exec from inheriting the descriptor.
func newDatagramSocket() (int, error) {
	syscall.ForkLock.RLock()
	defer syscall.ForkLock.RUnlock()

	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
	if err != nil {
		return invalidFD, err
	}
	unix.CloseOnExec(fd)
	return fd, nil
}
