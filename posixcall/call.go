//go:build unix

package posixcall

import (
	"errors"

	"golang.org/x/sys/unix"
)

// MaxEINTRRepetitions bounds how often a call interrupted by a signal is repeated.
const MaxEINTRRepetitions = 5

// Result describes the outcome of one classified system call.
type Result struct {
	// Value is the value returned by the call; meaningless when Err is set.
	Value int
	// Err is the raw error returned by the call, nil on success.
	Err error
	// Errno is the errno carried by Err, zero when Err is nil or not an errno.
	Errno unix.Errno

	ignored bool
}

// HasErrors reports whether the call failed with an errno that was not declared ignorable.
func (r Result) HasErrors() bool {
	return r.Err != nil && !r.ignored
}

// Ignored reports whether the call failed with one of the ignorable errno values.
func (r Result) Ignored() bool {
	return r.ignored
}

// Call invokes fn, repeating it on EINTR, and classifies its result against ignored.
func Call(fn func() (int, error), ignored ...unix.Errno) Result {
	return call(fn, MaxEINTRRepetitions, ignored)
}

// CallErr is Call for system calls that only return an error.
func CallErr(fn func() error, ignored ...unix.Errno) Result {
	return call(func() (int, error) { return 0, fn() }, MaxEINTRRepetitions, ignored)
}

// CallErrOnce is CallErr without EINTR repetition. A close(2) interrupted by a
// signal has already released the descriptor on Linux, so it must not be retried.
func CallErrOnce(fn func() error, ignored ...unix.Errno) Result {
	return call(func() (int, error) { return 0, fn() }, 0, ignored)
}

func call(fn func() (int, error), repetitions int, ignored []unix.Errno) Result {
	var (
		value int
		err   error
	)
	for attempt := 0; ; attempt++ {
		value, err = fn()
		if !errors.Is(err, unix.EINTR) || attempt >= repetitions {
			break
		}
	}

	res := Result{Value: value, Err: err}
	if err == nil {
		return res
	}

	var errno unix.Errno
	if errors.As(err, &errno) {
		res.Errno = errno
		for _, code := range ignored {
			if errno == code {
				res.ignored = true
				break
			}
		}
	}
	return res
}
