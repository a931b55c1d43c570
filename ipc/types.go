//go:build unix

package ipc

import (
	"io"
	"time"
)

// Side is the role of a channel handle, fixed for its lifetime.
type Side uint8

const (
	// Client connects to an existing channel and may only send.
	Client Side = iota
	// Server creates the channel and may only receive.
	Server
)

func (s Side) String() string {
	switch s {
	case Client:
		return "client"
	case Server:
		return "server"
	default:
		return "unknown"
	}
}

// Mode selects the blocking behaviour of a channel.
type Mode uint8

const (
	// Blocking calls wait until they complete or their timeout expires.
	Blocking Mode = iota
	// NonBlocking is rejected by the unix domain socket transport.
	NonBlocking
)

func (m Mode) String() string {
	switch m {
	case Blocking:
		return "blocking"
	case NonBlocking:
		return "non-blocking"
	default:
		return "unknown"
	}
}

// Channel is the message queue contract shared by local IPC transports.
// A zero timeout on the timed variants means wait indefinitely.
type Channel interface {
	// Send transmits msg without a timeout.
	Send(msg string) error
	// TimedSend transmits msg, giving up after timeout.
	TimedSend(msg string, timeout time.Duration) error
	// Receive waits for the next message without a timeout.
	Receive() (string, error)
	// TimedReceive waits for the next message, returning ErrTimeout after timeout.
	TimedReceive(timeout time.Duration) (string, error)
	// IsOutdated reports whether the channel's backing object vanished.
	IsOutdated() (bool, error)
	// Destroy releases the channel's resources.
	Destroy() error

	io.Closer
}
