package limits

import (
	"errors"
	"strings"
	"testing"
)

// TestLongestValidNameLeavesRoomForTerminator verifies LongestValidName is below
// the sun_path capacity on every supported platform.
func TestLongestValidNameLeavesRoomForTerminator(t *testing.T) {
	if LongestValidName < 100 {
		t.Errorf("LongestValidName = %d, want at least 100", LongestValidName)
	}
	if LongestValidName > 107 {
		t.Errorf("LongestValidName = %d, want at most 107", LongestValidName)
	}
}

// TestConstantConsistency verifies internal consistency of the size constants
func TestConstantConsistency(t *testing.T) {
	if ShortestValidName <= 0 {
		t.Errorf("ShortestValidName must be positive, got %d", ShortestValidName)
	}
	if ShortestValidName > LongestValidName {
		t.Errorf("ShortestValidName (%d) should be <= LongestValidName (%d)",
			ShortestValidName, LongestValidName)
	}
	if len(PathPrefix) >= LongestValidName {
		t.Errorf("PathPrefix (%q) leaves no room for a name", PathPrefix)
	}
	if MaxMessageSize <= NullTerminatorSize {
		t.Errorf("MaxMessageSize (%d) must exceed NullTerminatorSize (%d)", MaxMessageSize, NullTerminatorSize)
	}
}

// TestValidateName tests the name bounds
func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty name", input: "", wantErr: ErrNameEmpty},
		{name: "single character", input: "a", wantErr: ErrNameTooShort},
		{name: "shortest valid", input: "ab", wantErr: nil},
		{name: "typical path", input: "/tmp/roudi", wantErr: nil},
		{name: "longest valid", input: strings.Repeat("x", LongestValidName), wantErr: nil},
		{name: "one past longest", input: strings.Repeat("x", LongestValidName+1), wantErr: ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateName() error = %v, want nil", err)
				}
				if !IsValidName(tt.input) {
					t.Error("IsValidName() = false, want true")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if IsValidName(tt.input) {
				t.Error("IsValidName() = true, want false")
			}
		})
	}
}

// TestValidateMaxMessageSize tests the global ceiling
func TestValidateMaxMessageSize(t *testing.T) {
	for _, size := range []uint64{0, 1, 512, MaxMessageSize} {
		if err := ValidateMaxMessageSize(size); err != nil {
			t.Errorf("ValidateMaxMessageSize(%d) error = %v, want nil", size, err)
		}
	}
	for _, size := range []uint64{MaxMessageSize + 1, MaxMessageSize * 4} {
		if err := ValidateMaxMessageSize(size); !errors.Is(err, ErrMaxMessageSizeExceeded) {
			t.Errorf("ValidateMaxMessageSize(%d) error = %v, want %v", size, err, ErrMaxMessageSizeExceeded)
		}
	}
}

// TestValidatePayload tests that the terminator is accounted for
func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		max     uint64
		wantErr bool
	}{
		{name: "empty payload", size: 0, max: 16, wantErr: false},
		{name: "two below limit", size: 14, max: 16, wantErr: false},
		{name: "terminator reaches limit", size: 15, max: 16, wantErr: true},
		{name: "payload equals limit", size: 16, max: 16, wantErr: true},
		{name: "zero limit", size: 0, max: 0, wantErr: true},
		{name: "one byte limit", size: 0, max: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(strings.Repeat("m", tt.size), tt.max)
			if tt.wantErr && !errors.Is(err, ErrMessageTooLarge) {
				t.Errorf("ValidatePayload() error = %v, want %v", err, ErrMessageTooLarge)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePayload() error = %v, want nil", err)
			}
		})
	}
}
