//go:build unix

package ipc

import (
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const logComponent = "UnixDomainSocket"

var (
	loggerMu sync.RWMutex
	logger   logrus.FieldLogger = logrus.StandardLogger()
)

// SetLogger replaces the sink that receives channel diagnostics.
// Passing nil restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func currentLogger() logrus.FieldLogger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// channelLog returns an entry carrying the standard fields for one channel.
func channelLog(name string, side Side) *logrus.Entry {
	return currentLogger().WithFields(logrus.Fields{
		"component": logComponent,
		"channel":   name,
		"side":      side.String(),
	})
}

// operationFields creates standardized operation logging fields
func operationFields(op string, errno unix.Errno, additional ...logrus.Fields) logrus.Fields {
	fields := logrus.Fields{
		"operation": op,
	}
	if errno != 0 {
		fields["errno"] = int(errno)
		fields["error"] = errno.Error()
	}

	for _, extra := range additional {
		for k, v := range extra {
			fields[k] = v
		}
	}

	return fields
}
