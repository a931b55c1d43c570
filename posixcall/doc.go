// Package posixcall invokes raw system calls and classifies their outcome.
//
// Every call through this package ends in one of three states:
//
//   - success: the call returned no error;
//   - ignored: the call failed with one of the errno values the caller declared
//     ignorable, which HasErrors does not report but Errno still exposes;
//   - error: any other failure.
//
// Calls interrupted by a signal (EINTR) are repeated up to MaxEINTRRepetitions
// times, except through the Once variants which must be used for close(2).
//
//	res := posixcall.CallErr(func() error {
//	    return unix.Connect(fd, addr)
//	}, unix.ENOENT)
//	switch {
//	case res.HasErrors():
//	    // hard failure, inspect res.Errno
//	case res.Ignored():
//	    // ENOENT
//	}
package posixcall
