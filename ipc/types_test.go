//go:build unix

package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideString(t *testing.T) {
	assert.Equal(t, "client", Client.String())
	assert.Equal(t, "server", Server.String())
	assert.Equal(t, "unknown", Side(42).String())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "blocking", Blocking.String())
	assert.Equal(t, "non-blocking", NonBlocking.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
