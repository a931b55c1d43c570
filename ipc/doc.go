// Package ipc implements named local IPC channels with message queue semantics
// on top of unix domain datagram sockets.
//
// A channel has exactly one server, which binds the socket path and receives,
// and clients, which connect to that path and send. Creating a client for a
// name nobody serves fails with ErrNoSuchChannel, just like opening a message
// queue that does not exist.
//
// # Getting Started
//
//	server, err := ipc.NewUnixDomainSocket("roudi", ipc.Blocking, ipc.Server, 512, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Destroy()
//
//	client, err := ipc.NewUnixDomainSocket("roudi", ipc.Blocking, ipc.Client, 512, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Destroy()
//
//	if err := client.Send("hello"); err != nil {
//	    log.Fatal(err)
//	}
//	msg, err := server.TimedReceive(time.Second)
//	if errors.Is(err, ipc.ErrTimeout) {
//	    // nothing arrived within a second
//	}
//
// # Naming
//
// NewUnixDomainSocket places the channel under limits.PathPrefix ("/tmp/") and
// silently truncates the resulting path to limits.LongestValidName.
// NewUnixDomainSocketNoPrefix uses the name verbatim as the socket path.
//
// # Errors
//
// Operations never panic. Every error is a *ChannelError that unwraps to one of
// the Err* sentinels and carries the errno the kernel reported, if any:
//
//	var chErr *ipc.ChannelError
//	if errors.As(err, &chErr) {
//	    fmt.Println(chErr.Op, chErr.Errno)
//	}
//
// Diagnostics go to a logrus sink (see SetLogger). ErrTimeout and
// ErrNoSuchChannel for a missing socket file are expected outcomes and are
// never logged.
//
// # Wire Format
//
// Each datagram is the payload followed by one NUL byte. Payloads containing
// NUL bytes are cut at the first one on receipt.
//
// # Ownership
//
// A handle owns its descriptor exclusively. MoveFrom and Move hand it over to
// another handle and leave the source uninitialized. Destroy releases it; a
// handle that becomes unreachable without Destroy is cleaned up by the garbage
// collector and failures there are only logged.
//
// Servers create their socket file with mode rw-rw---- by narrowing the
// process umask for the duration of socket creation. Other goroutines creating
// files at the same moment see the narrowed mask.
package ipc
