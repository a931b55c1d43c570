//go:build unix

package ipc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Channel errors. Every error returned by a channel unwraps to exactly one of these.
var (
	// ErrInvalidChannelName indicates the channel name violates the name bounds
	// or cannot be expressed as a socket address
	ErrInvalidChannelName = errors.New("invalid channel name")

	// ErrNotInitialized indicates the channel was never created successfully or was destroyed
	ErrNotInitialized = errors.New("channel not initialized")

	// ErrMaxMessageSizeExceeded indicates the requested max message size exceeds the global ceiling
	ErrMaxMessageSizeExceeded = errors.New("max message size exceeded")

	// ErrInvalidArguments indicates arguments the transport cannot honour
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrMessageTooLong indicates the payload does not fit the channel's max message size
	ErrMessageTooLong = errors.New("message too long")

	// ErrAccessDenied indicates missing permissions on the channel path
	ErrAccessDenied = errors.New("access denied")

	// ErrProcessLimit indicates the per-process descriptor limit was reached
	ErrProcessLimit = errors.New("process limit reached")

	// ErrSystemLimit indicates the system-wide descriptor limit was reached
	ErrSystemLimit = errors.New("system limit reached")

	// ErrOutOfMemory indicates the kernel ran out of buffers or memory
	ErrOutOfMemory = errors.New("out of memory")

	// ErrChannelAlreadyExists indicates the channel address is already in use
	ErrChannelAlreadyExists = errors.New("channel already exists")

	// ErrInvalidFileDescriptor indicates the descriptor is closed or not a socket
	ErrInvalidFileDescriptor = errors.New("invalid file descriptor")

	// ErrNoSuchChannel indicates no server is bound to the channel name
	ErrNoSuchChannel = errors.New("no such channel")

	// ErrIOError indicates a low-level I/O failure
	ErrIOError = errors.New("i/o error")

	// ErrConnectionResetByPeer indicates the peer reset the connection
	ErrConnectionResetByPeer = errors.New("connection reset by peer")

	// ErrTimeout indicates a timed operation expired without progress
	ErrTimeout = errors.New("operation timed out")

	// ErrInternalLogic indicates a misuse of the channel or an unexpected errno
	ErrInternalLogic = errors.New("internal logic error")
)

// ChannelError represents a channel error with additional context
type ChannelError struct {
	Op    string     // operation that caused the error
	Name  string     // channel name if relevant
	Errno unix.Errno // errno reported by the transport, zero if none
	Err   error      // underlying channel error
}

func (e *ChannelError) Error() string {
	msg := fmt.Sprintf("ipc %s: %v", e.Op, e.Err)
	if e.Name != "" {
		msg = fmt.Sprintf("ipc %s %s: %v", e.Op, e.Name, e.Err)
	}
	if e.Errno != 0 {
		msg = fmt.Sprintf("%s (%v)", msg, e.Errno)
	}
	return msg
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// newChannelError creates a new ChannelError
func newChannelError(op, name string, err error) *ChannelError {
	return &ChannelError{
		Op:   op,
		Name: name,
		Err:  err,
	}
}
