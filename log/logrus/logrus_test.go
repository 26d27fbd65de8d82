package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/unkn0wn-root/bitcodec"
)

func TestLogrusLoggerFiltersBelowMinLevel(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base), MinLevel: LevelWarn}

	var _ bitcodec.Logger = l

	l.Debug("dropped", nil)
	l.Info("dropped too", nil)
	l.Warn("kept", nil)
	l.Error("kept too", nil)

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Message != "kept" || entries[1].Message != "kept too" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestLogrusLoggerPassesFields(t *testing.T) {
	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base), MinLevel: LevelDebug}

	l.Info("with fields", bitcodec.Fields{"key": "value"})

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Data["key"] != "value" {
		t.Fatalf("got fields %v, want key=value", entries[0].Data)
	}
}
