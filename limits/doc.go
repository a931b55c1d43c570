// Package limits provides the size and naming constants shared by every channel
// transport in this module, together with the validation functions built on them.
//
// # Name Bounds
//
// A channel name is valid when it is non-empty and its length lies within
// [ShortestValidName, LongestValidName]. LongestValidName is derived from the
// capacity of the native socket address (sockaddr_un.sun_path) minus one byte
// for the terminating NUL, so it differs between platforms:
//
//   - Linux: 107 bytes
//   - Darwin and the BSDs: 103 bytes
//
// Names created through the prefixed constructors are stored as
// PathPrefix + name and silently truncated to LongestValidName.
//
// # Message Size Hierarchy
//
//   - MaxMessageSize (4096 bytes): the global ceiling for the per-channel maximum
//     message size and the size of the receive buffer.
//   - NullTerminatorSize (1 byte): every datagram carries one trailing NUL, so a
//     payload must satisfy len(payload)+NullTerminatorSize < maxMessageSize.
//
// # Validation Functions
//
//	if err := limits.ValidateName(name); err != nil {
//	    // errors.Is(err, limits.ErrNameEmpty), ErrNameTooShort or ErrNameTooLong
//	}
//
//	if err := limits.ValidatePayload(msg, maxMessageSize); err != nil {
//	    // errors.Is(err, limits.ErrMessageTooLarge)
//	}
package limits
