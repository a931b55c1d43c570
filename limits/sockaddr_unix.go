//go:build unix

package limits

import "golang.org/x/sys/unix"

// LongestValidName is the capacity of sockaddr_un.sun_path minus the NUL terminator.
const LongestValidName = len(unix.RawSockaddrUnix{}.Path) - NullTerminatorSize
