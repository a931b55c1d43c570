//go:build unix

package ipc

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// errnoMapping binds an errno to a channel error. An empty diagnostic marks an
// expected condition that is reported without logging.
type errnoMapping struct {
	err        error
	diagnostic string
}

var errnoTable = map[unix.Errno]errnoMapping{
	unix.EACCES:          {ErrAccessDenied, "permission to create unix domain socket denied"},
	unix.EAFNOSUPPORT:    {ErrInvalidArguments, "address family not supported for unix domain socket"},
	unix.EINVAL:          {ErrInvalidArguments, "provided invalid arguments for unix domain socket"},
	unix.EMFILE:          {ErrProcessLimit, "process limit reached for unix domain socket"},
	unix.ENFILE:          {ErrSystemLimit, "system limit reached for unix domain socket"},
	unix.ENOBUFS:         {ErrOutOfMemory, "out of memory for unix domain socket"},
	unix.ENOMEM:          {ErrOutOfMemory, "out of memory for unix domain socket"},
	unix.EPROTONOSUPPORT: {ErrInvalidArguments, "protocol type not supported for unix domain socket"},
	unix.EADDRINUSE:      {ErrChannelAlreadyExists, "unix domain socket already in use"},
	unix.EBADF:           {ErrInvalidFileDescriptor, "invalid file descriptor for unix domain socket"},
	unix.ENOTSOCK:        {ErrInvalidFileDescriptor, "invalid file descriptor for unix domain socket"},
	unix.EADDRNOTAVAIL:   {ErrInvalidChannelName, "interface or address error for unix domain socket"},
	unix.EFAULT:          {ErrInvalidChannelName, "outside address space error for unix domain socket"},
	unix.ELOOP:           {ErrInvalidChannelName, "too many symbolic links for unix domain socket"},
	unix.ENAMETOOLONG:    {ErrInvalidChannelName, "name too long for unix domain socket"},
	unix.ENOTDIR:         {ErrInvalidChannelName, "not a directory error for unix domain socket"},
	unix.ENOENT:          {ErrNoSuchChannel, ""},
	unix.EROFS:           {ErrInvalidChannelName, "read only error for unix domain socket"},
	unix.EIO:             {ErrIOError, "i/o error for unix domain socket"},
	unix.ENOPROTOOPT:     {ErrInvalidArguments, "invalid option for unix domain socket"},
	unix.ECONNREFUSED:    {ErrNoSuchChannel, "no server for unix domain socket"},
	unix.ECONNRESET:      {ErrConnectionResetByPeer, "connection was reset by peer for unix domain socket"},
	// EAGAIN shares its value with EWOULDBLOCK on every supported platform.
	unix.EWOULDBLOCK: {ErrTimeout, ""},
}

// errnoToError translates errno into a channel error for the named channel,
// logging a diagnostic unless the condition is expected.
func errnoToError(op, name string, side Side, errno unix.Errno) *ChannelError {
	chErr := newChannelError(op, name, ErrInternalLogic)
	chErr.Errno = errno

	mapping, ok := errnoTable[errno]
	if !ok {
		channelLog(name, side).WithFields(operationFields(op, errno)).
			Warn("internal logic error in unix domain socket occurred")
		return chErr
	}

	chErr.Err = mapping.err
	if mapping.diagnostic != "" {
		channelLog(name, side).WithFields(operationFields(op, errno, logrus.Fields{
			"channel_error": mapping.err.Error(),
		})).Warn(mapping.diagnostic)
	}
	return chErr
}
