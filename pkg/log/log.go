// Package log provides the logrus entry used across pyrignore.
// All log output goes to standard error so that it never mixes with
// program output on standard output.
package log

import (
	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	return logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"program":         "pyrignore",
		"program_version": version,
	})
}

func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.SetLevel(lvl)
}
