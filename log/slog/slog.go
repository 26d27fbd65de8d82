//go:build go1.21

// Package slog adapts the standard library log/slog to bitcodec.Logger.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/bitcodec"
)

var _ bitcodec.Logger = Logger{}

// Logger implements bitcodec.Logger on top of the standard library's
// structured logger. Unlike the zap/logrus adapters it has no separate
// MinLevel gate: slog.Logger already has its own Enabled(level) check, so
// duplicating the gate here would only diverge from whatever the caller
// configured on L.
type Logger struct{ L *stdslog.Logger }

func (s Logger) Debug(msg string, f bitcodec.Fields) {
	s.log(stdslog.LevelDebug, msg, f)
}

func (s Logger) Info(msg string, f bitcodec.Fields) {
	s.log(stdslog.LevelInfo, msg, f)
}

func (s Logger) Warn(msg string, f bitcodec.Fields) {
	s.log(stdslog.LevelWarn, msg, f)
}

func (s Logger) Error(msg string, f bitcodec.Fields) {
	s.log(stdslog.LevelError, msg, f)
}

func (s Logger) log(level stdslog.Level, msg string, f bitcodec.Fields) {
	ctx := context.Background()
	if !s.L.Enabled(ctx, level) {
		return
	}
	s.L.LogAttrs(ctx, level, msg, attrs(f)...)
}

func attrs(f bitcodec.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, stdslog.Any(k, v))
	}
	return out
}
