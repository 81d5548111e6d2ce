// Package diag carries the logger shared by the containers and the fatal diagnostic used when a
// container cannot be constructed.
package diag

import (
	"github.com/sirupsen/logrus"
)

// Log is the logger every container writes to. Containers only log at Debug level, so the
// default Info level keeps them silent.
var Log = logrus.New()

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

// Debug reports whether debug entries would be written. Callers check it before building
// fields on hot paths.
func Debug() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}

// Die reports a diagnostic naming the failing operation and terminates the process through
// Log.ExitFunc.
func Die(op string, err error) {
	Log.WithField("op", op).WithError(err).Fatal("unrecoverable container failure")
}
