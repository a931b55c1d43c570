//go:build unix && !darwin

package ipc

const sendTimeoutSupported = true
