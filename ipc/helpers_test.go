//go:build unix

package ipc

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const testMaxMessageSize = 512

// uniqueName returns a channel name no other test uses and removes its socket
// file when the test ends.
func uniqueName(t *testing.T) string {
	t.Helper()
	name := "ipc-test-" + uuid.NewString()
	t.Cleanup(func() { _, _ = UnlinkIfExists(name) })
	return name
}

// captureLogs routes channel diagnostics into a hook for the duration of the test.
func captureLogs(t *testing.T) *test.Hook {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	t.Cleanup(func() { SetLogger(nil) })
	return hook
}

// warnings returns the entries logged at warning level or above.
func warnings(hook *test.Hook) []*logrus.Entry {
	var out []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level <= logrus.WarnLevel {
			out = append(out, e)
		}
	}
	return out
}

func newServer(t *testing.T, name string) *UnixDomainSocket {
	t.Helper()
	server, err := NewUnixDomainSocket(name, Blocking, Server, testMaxMessageSize, 10)
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Destroy() })
	return server
}

func newClient(t *testing.T, name string) *UnixDomainSocket {
	t.Helper()
	client, err := NewUnixDomainSocket(name, Blocking, Client, testMaxMessageSize, 10)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Destroy() })
	return client
}
