//go:build unix

package ipc

import (
	"runtime"

	"github.com/opd-ai/ipcchannel/posixcall"
	"golang.org/x/sys/unix"
)

const invalidFD = -1

// socketResource is the exclusively owned descriptor of a channel. Moving a
// channel hands over the pointer, so exactly one handle references it.
// Servers also own the socket path and remove it on close, as long as the
// path still names the file they bound.
type socketResource struct {
	fd            int
	path          string
	side          Side
	unlinkOnClose bool
	// identity of the bound socket file, compared against the path on close.
	bound unix.Stat_t
}

func newSocketResource(fd int, path string, side Side) *socketResource {
	r := &socketResource{
		fd:   fd,
		path: path,
		side: side,
	}
	if side == Server {
		r.unlinkOnClose = unix.Lstat(path, &r.bound) == nil
	}
	runtime.SetFinalizer(r, (*socketResource).finalize)
	return r
}

// ownsPath reports whether path is still the socket file this resource bound.
// A later server taking over the name replaces the file, and the finalizer of
// a dropped handle may run long after that.
func (r *socketResource) ownsPath() bool {
	var st unix.Stat_t
	if err := unix.Lstat(r.path, &st); err != nil {
		return false
	}
	return st.Dev == r.bound.Dev && st.Ino == r.bound.Ino
}

// close releases the descriptor and, for servers, the path. The descriptor is
// invalidated even when close(2) reports an error since the kernel has released
// it by then; a second close is a no-op.
func (r *socketResource) close() posixcall.Result {
	if r == nil || r.fd == invalidFD {
		return posixcall.Result{}
	}

	fd := r.fd
	if r.unlinkOnClose && r.ownsPath() {
		_ = unix.Unlink(r.path)
	}
	res := posixcall.CallErrOnce(func() error { return unix.Close(fd) })
	r.fd = invalidFD
	runtime.SetFinalizer(r, nil)
	return res
}

// finalize is the implicit teardown of a resource nobody destroyed explicitly.
func (r *socketResource) finalize() {
	if res := r.close(); res.HasErrors() {
		channelLog(r.path, r.side).WithFields(operationFields("close", res.Errno)).
			Warn("unable to cleanup unix domain socket at end of life")
	}
}

// closeDescriptor closes a descriptor that never made it into a socketResource.
// Failures are logged and otherwise dropped because the caller is already
// reporting the error that made it give up.
func closeDescriptor(fd int, name string, side Side) {
	res := posixcall.CallErrOnce(func() error { return unix.Close(fd) })
	if res.HasErrors() {
		channelLog(name, side).WithFields(operationFields("close", res.Errno)).
			Warn("unable to close socket file descriptor in error related cleanup during initialization")
	}
}
