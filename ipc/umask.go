//go:build unix

package ipc

import (
	"sync"

	"golang.org/x/sys/unix"
)

// channelUmask leaves owner and group read-write and strips execute and all
// access for others from files created while it is active.
const channelUmask = unix.S_IXUSR | unix.S_IXGRP | unix.S_IRWXO

// narrowUmask installs mask as the process file creation mask and returns a
// function that restores the previous mask. The restore runs at most once.
// umask(2) cannot fail.
func narrowUmask(mask int) (restore func()) {
	saved := unix.Umask(mask)
	var once sync.Once
	return func() {
		once.Do(func() { unix.Umask(saved) })
	}
}
