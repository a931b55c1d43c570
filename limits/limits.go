// Package limits provides centralized size and name limits for local IPC channels.
// This ensures consistent validation across different components of the system.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxMessageSize is the global ceiling for a channel's maximum message size.
	// It is also the size of the receive buffer.
	MaxMessageSize = 4096

	// NullTerminatorSize is the number of bytes appended to every datagram.
	NullTerminatorSize = 1

	// ShortestValidName is the minimum length of a channel name.
	ShortestValidName = 2

	// PathPrefix is prepended to channel names by the prefixed constructors.
	PathPrefix = "/tmp/"
)

var (
	// ErrNameEmpty indicates an empty channel name was provided
	ErrNameEmpty = errors.New("empty channel name")

	// ErrNameTooShort indicates the channel name is below ShortestValidName
	ErrNameTooShort = errors.New("channel name too short")

	// ErrNameTooLong indicates the channel name exceeds LongestValidName
	ErrNameTooLong = errors.New("channel name too long")

	// ErrMessageTooLarge indicates message exceeds maximum size
	ErrMessageTooLarge = errors.New("message too large")

	// ErrMaxMessageSizeExceeded indicates a requested maximum exceeds MaxMessageSize
	ErrMaxMessageSizeExceeded = errors.New("max message size exceeded")
)

// IsValidName reports whether name satisfies the channel name bounds.
func IsValidName(name string) bool {
	return ValidateName(name) == nil
}

// ValidateName checks a channel name against ShortestValidName and LongestValidName.
// Returns an error with context including the actual length and the violated bound.
func ValidateName(name string) error {
	if len(name) == 0 {
		return ErrNameEmpty
	}
	if len(name) < ShortestValidName {
		return fmt.Errorf("%w: length %d below minimum %d", ErrNameTooShort, len(name), ShortestValidName)
	}
	if len(name) > LongestValidName {
		return fmt.Errorf("%w: length %d exceeds limit %d", ErrNameTooLong, len(name), LongestValidName)
	}
	return nil
}

// ValidateMaxMessageSize checks a requested per-channel maximum against MaxMessageSize.
func ValidateMaxMessageSize(size uint64) error {
	if size > MaxMessageSize {
		return fmt.Errorf("%w: requested %d exceeds limit %d", ErrMaxMessageSizeExceeded, size, MaxMessageSize)
	}
	return nil
}

// ValidatePayload checks that msg plus its NUL terminator fits strictly below
// maxMessageSize.
func ValidatePayload(msg string, maxMessageSize uint64) error {
	if uint64(len(msg))+NullTerminatorSize >= maxMessageSize {
		return fmt.Errorf("%w: payload size %d plus terminator does not fit below %d",
			ErrMessageTooLarge, len(msg), maxMessageSize)
	}
	return nil
}
