//go:build darwin

package ipc

// SO_SNDTIMEO is ignored for unix datagram sockets on Darwin.
const sendTimeoutSupported = false
