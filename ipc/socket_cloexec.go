//go:build dragonfly || freebsd || linux || netbsd || openbsd

package ipc

import "golang.org/x/sys/unix"

// newDatagramSocket opens a unix datagram socket that is closed on exec
// atomically with its creation.
func newDatagramSocket() (int, error) {
	return unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
}
