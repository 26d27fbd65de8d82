// Package logrus adapts *logrus.Entry to bitcodec.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/bitcodec"
)

// Level gates which bitcodec.Logger calls reach the underlying entry; see
// the zap adapter's Level for why this lives at the adapter layer rather
// than relying on the backend's own level filter.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// LogrusLogger implements bitcodec.Logger on top of a *logrus.Entry.
type LogrusLogger struct {
	E        *logrus.Entry
	MinLevel Level
}

var _ bitcodec.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f bitcodec.Fields) {
	if l.MinLevel > LevelDebug {
		return
	}
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}

func (l LogrusLogger) Info(msg string, f bitcodec.Fields) {
	if l.MinLevel > LevelInfo {
		return
	}
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}

func (l LogrusLogger) Warn(msg string, f bitcodec.Fields) {
	if l.MinLevel > LevelWarn {
		return
	}
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}

func (l LogrusLogger) Error(msg string, f bitcodec.Fields) {
	if l.MinLevel > LevelError {
		return
	}
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
