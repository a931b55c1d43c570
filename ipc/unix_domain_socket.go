//go:build unix

package ipc

import (
	"bytes"
	"runtime"
	"time"

	"github.com/opd-ai/ipcchannel/limits"
	"github.com/opd-ai/ipcchannel/posixcall"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// UnixDomainSocket is a named local channel over a unix datagram socket.
// A Server binds the name and receives; a Client connects to it and sends.
//
// A handle must be used by one goroutine at a time. Timeouts are socket
// options that are set right before each blocking call, so concurrent use of
// one handle would race on them.
//
// The zero value is an uninitialized handle.
type UnixDomainSocket struct {
	name           string
	side           Side
	maxMessageSize uint64
	addr           unix.SockaddrUnix
	res            *socketResource
	initialized    bool
	lastErr        error
}

var _ Channel = (*UnixDomainSocket)(nil)

// NewUnixDomainSocket creates a channel named limits.PathPrefix+name.
// The prefixed name is truncated to limits.LongestValidName. An invalid name is
// passed on unchanged so that it fails validation.
//
// The returned handle is never nil. When err is non-nil the handle is
// uninitialized and its Err method reports the same error.
// maxMsgNumber exists for parity with message queue transports and is ignored.
func NewUnixDomainSocket(name string, mode Mode, side Side, maxMsgSize, maxMsgNumber uint64) (*UnixDomainSocket, error) {
	return NewUnixDomainSocketNoPrefix(prefixName(name), mode, side, maxMsgSize, maxMsgNumber)
}

// NewUnixDomainSocketNoPrefix creates a channel using name verbatim as the socket path.
// See NewUnixDomainSocket for the meaning of the result.
func NewUnixDomainSocketNoPrefix(name string, mode Mode, side Side, maxMsgSize, _ uint64) (*UnixDomainSocket, error) {
	s := &UnixDomainSocket{
		name: name,
		side: side,
	}

	if !limits.IsValidName(name) {
		return s, s.fail(newChannelError("create", name, ErrInvalidChannelName))
	}

	if err := limits.ValidateMaxMessageSize(maxMsgSize); err != nil {
		return s, s.fail(newChannelError("create", name, ErrMaxMessageSizeExceeded))
	}
	s.maxMessageSize = maxMsgSize

	if err := s.initializeSocket(mode); err != nil {
		return s, s.fail(err)
	}
	s.initialized = true

	channelLog(s.name, s.side).WithFields(logrus.Fields{
		"max_message_size": s.maxMessageSize,
	}).Debug("Created unix domain socket")

	return s, nil
}

// prefixName applies limits.PathPrefix to valid names, cutting the result at
// limits.LongestValidName.
func prefixName(name string) string {
	if !limits.IsValidName(name) {
		return name
	}
	full := limits.PathPrefix + name
	if len(full) > limits.LongestValidName {
		full = full[:limits.LongestValidName]
	}
	return full
}

func (s *UnixDomainSocket) fail(err error) error {
	s.initialized = false
	s.lastErr = err
	return err
}

func (s *UnixDomainSocket) initializeSocket(mode Mode) error {
	if len(s.name) > limits.LongestValidName {
		return newChannelError("create", s.name, ErrInvalidChannelName)
	}
	s.addr = unix.SockaddrUnix{Name: s.name}

	// Timeouts cover everything non-blocking mode would be used for.
	if mode == NonBlocking {
		return newChannelError("create", s.name, ErrInvalidArguments)
	}

	restore := narrowUmask(channelUmask)
	defer restore()

	socketCall := posixcall.Call(newDatagramSocket)
	if socketCall.HasErrors() {
		return s.convertErrno("socket", socketCall)
	}
	fd := socketCall.Value

	if s.side == Server {
		// A stale socket file of an earlier instance blocks bind.
		posixcall.CallErr(func() error { return unix.Unlink(s.name) }, unix.ENOENT)

		bindCall := posixcall.CallErr(func() error { return unix.Bind(fd, &s.addr) })
		if bindCall.HasErrors() {
			closeDescriptor(fd, s.name, s.side)
			return s.convertErrno("bind", bindCall)
		}
	} else {
		// A connected socket fails here when no server exists, which is how a
		// message queue behaves when opening a queue nobody created.
		connectCall := posixcall.CallErr(func() error { return unix.Connect(fd, &s.addr) }, unix.ENOENT)
		if connectCall.HasErrors() || connectCall.Ignored() {
			closeDescriptor(fd, s.name, s.side)
			return s.convertErrno("connect", connectCall)
		}
	}

	s.res = newSocketResource(fd, s.name, s.side)
	return nil
}

// Name returns the socket path of the channel.
func (s *UnixDomainSocket) Name() string { return s.name }

// Side returns the role of the handle.
func (s *UnixDomainSocket) Side() Side { return s.side }

// MaxMessageSize returns the per-channel limit including the NUL terminator.
func (s *UnixDomainSocket) MaxMessageSize() uint64 { return s.maxMessageSize }

// IsInitialized reports whether the handle owns a live socket.
func (s *UnixDomainSocket) IsInitialized() bool { return s.initialized }

// Err returns the reason the handle is not initialized, or nil if it is.
func (s *UnixDomainSocket) Err() error {
	if s.initialized {
		return nil
	}
	if s.lastErr != nil {
		return s.lastErr
	}
	return newChannelError("create", s.name, ErrNotInitialized)
}

// Destroy closes the socket and, for a server, removes the socket path.
// It is a no-op on an uninitialized handle, so it may be called repeatedly.
func (s *UnixDomainSocket) Destroy() error {
	if !s.initialized {
		return nil
	}

	res := s.res.close()
	s.res = nil
	s.initialized = false
	s.lastErr = nil

	if res.HasErrors() {
		return s.convertErrno("close", res)
	}

	channelLog(s.name, s.side).Debug("Destroyed unix domain socket")
	return nil
}

// Close implements io.Closer by calling Destroy.
func (s *UnixDomainSocket) Close() error {
	return s.Destroy()
}

// MoveFrom transfers ownership of other's socket to s. Whatever s owned before
// is destroyed first; a failure there is logged, not returned. Afterwards other
// is uninitialized and destroying it does nothing.
func (s *UnixDomainSocket) MoveFrom(other *UnixDomainSocket) {
	if other == nil || s == other {
		return
	}

	if err := s.Destroy(); err != nil {
		channelLog(s.name, s.side).WithError(err).
			Warn("unable to cleanup unix domain socket in move")
	}

	s.name = other.name
	s.side = other.side
	s.maxMessageSize = other.maxMessageSize
	s.addr = other.addr
	s.res = other.res
	s.initialized = other.initialized
	s.lastErr = other.lastErr

	other.res = nil
	other.initialized = false
	other.lastErr = nil
}

// Move returns a new handle that owns src's socket, leaving src uninitialized.
func Move(src *UnixDomainSocket) *UnixDomainSocket {
	dst := &UnixDomainSocket{}
	dst.MoveFrom(src)
	return dst
}

// Send transmits msg and blocks while the kernel send buffer is full.
func (s *UnixDomainSocket) Send(msg string) error {
	// SO_SNDTIMEO persists on the socket, so a zero timeout is set explicitly.
	return s.TimedSend(msg, 0)
}

// TimedSend transmits msg followed by a NUL byte to the connected server.
// Only clients may send, and len(msg)+1 must stay below MaxMessageSize.
// Success means the datagram reached the kernel, not the receiver.
//
// On Darwin a non-zero timeout is not supported; the call logs a warning and
// behaves like Send.
func (s *UnixDomainSocket) TimedSend(msg string, timeout time.Duration) error {
	if !s.initialized {
		return newChannelError("send", s.name, ErrNotInitialized)
	}

	if err := limits.ValidatePayload(msg, s.maxMessageSize); err != nil {
		return newChannelError("send", s.name, ErrMessageTooLong)
	}

	if s.side == Server {
		channelLog(s.name, s.side).Warn("sending on server side not supported for unix domain socket")
		return newChannelError("send", s.name, ErrInternalLogic)
	}

	if timeout < 0 {
		return newChannelError("send", s.name, ErrInvalidArguments)
	}

	if !sendTimeoutSupported && timeout != 0 {
		channelLog(s.name, s.side).WithField("timeout", timeout.String()).
			Warn("timed send with a non-zero timeout is not supported on this platform, sending without timeout")
	}

	if err := s.setTimeout("send", unix.SO_SNDTIMEO, timeout); err != nil {
		return err
	}

	datagram := make([]byte, len(msg)+limits.NullTerminatorSize)
	copy(datagram, msg)

	fd := s.res.fd
	sendCall := posixcall.CallErr(func() error {
		// The socket is connected, so no destination address is passed.
		return unix.Sendto(fd, datagram, 0, nil)
	})
	runtime.KeepAlive(s.res)

	if sendCall.HasErrors() {
		return s.convertErrno("send", sendCall)
	}
	return nil
}

// Receive blocks until a message arrives.
func (s *UnixDomainSocket) Receive() (string, error) {
	return s.TimedReceive(0)
}

// TimedReceive waits up to timeout for the next message. Only servers may receive.
// An expired timeout returns an error matching ErrTimeout.
//
// The receive buffer holds limits.MaxMessageSize bytes and its last byte is
// always overwritten with NUL, so a datagram filling the buffer loses its final
// byte. The message ends at the first NUL.
func (s *UnixDomainSocket) TimedReceive(timeout time.Duration) (string, error) {
	if !s.initialized {
		return "", newChannelError("receive", s.name, ErrNotInitialized)
	}

	if s.side == Client {
		channelLog(s.name, s.side).Warn("receiving on client side not supported for unix domain socket")
		return "", newChannelError("receive", s.name, ErrInternalLogic)
	}

	if timeout < 0 {
		return "", newChannelError("receive", s.name, ErrInvalidArguments)
	}

	if err := s.setTimeout("receive", unix.SO_RCVTIMEO, timeout); err != nil {
		return "", err
	}

	buffer := make([]byte, limits.MaxMessageSize)
	fd := s.res.fd
	recvCall := posixcall.Call(func() (int, error) {
		return unix.Read(fd, buffer)
	}, unix.EWOULDBLOCK)
	runtime.KeepAlive(s.res)
	buffer[len(buffer)-1] = 0

	if recvCall.HasErrors() || recvCall.Ignored() {
		// An expired timeout is ignored by the classifier and maps silently to ErrTimeout.
		return "", s.convertErrno("receive", recvCall)
	}

	message := buffer[:recvCall.Value]
	if end := bytes.IndexByte(message, 0); end >= 0 {
		message = message[:end]
	}
	return string(message), nil
}

// setTimeout installs timeout on the socket option opt; zero disables it.
func (s *UnixDomainSocket) setTimeout(op string, opt int, timeout time.Duration) error {
	tv := durationToTimeval(timeout)
	fd := s.res.fd
	optCall := posixcall.CallErr(func() error {
		return unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, opt, &tv)
	})
	runtime.KeepAlive(s.res)

	if optCall.HasErrors() {
		return s.convertErrno(op, optCall)
	}
	return nil
}

// IsOutdated always reports false. A unix domain socket has no failure mode
// comparable to a message queue deleted under an open handle; problems surface
// through the errors of the other calls.
func (s *UnixDomainSocket) IsOutdated() (bool, error) {
	return false, nil
}

func (s *UnixDomainSocket) convertErrno(op string, res posixcall.Result) error {
	return errnoToError(op, s.name, s.side, res.Errno)
}

// UnlinkIfExists removes the socket file of the prefixed channel name and
// reports whether it existed. See UnlinkIfExistsNoPrefix.
func UnlinkIfExists(name string) (bool, error) {
	return UnlinkIfExistsNoPrefix(prefixName(name))
}

// UnlinkIfExistsNoPrefix removes the socket file at name and reports whether
// it existed. The answer is stale as soon as it is returned: another process
// may create or remove the file at any time.
func UnlinkIfExistsNoPrefix(name string) (bool, error) {
	if !limits.IsValidName(name) {
		return false, newChannelError("unlink", name, ErrInvalidChannelName)
	}

	unlinkCall := posixcall.CallErr(func() error { return unix.Unlink(name) }, unix.ENOENT)
	if unlinkCall.HasErrors() {
		currentLogger().WithFields(operationFields("unlink", unlinkCall.Errno, logrus.Fields{
			"component": logComponent,
			"channel":   name,
		})).Warn("unable to remove unix domain socket file")

		chErr := newChannelError("unlink", name, ErrInternalLogic)
		chErr.Errno = unlinkCall.Errno
		return false, chErr
	}

	return !unlinkCall.Ignored(), nil
}
