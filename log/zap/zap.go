// Package zap adapts *zap.Logger to bitcodec.Logger.
package zap

import (
	"github.com/unkn0wn-root/bitcodec"
	"go.uber.org/zap"
)

// Level gates which bitcodec.Logger calls actually reach the underlying
// zap.Logger. Traced's Debug-level calls are the highest-volume by far
// (one pair per encode/decode attempt), so production use typically wants
// them filtered out here rather than relying on zap's own level to do it
// after the Fields map has already been built.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ZapLogger implements bitcodec.Logger on top of a *zap.Logger.
type ZapLogger struct {
	L        *zap.Logger
	MinLevel Level // calls below this level are dropped before reaching L
}

var _ bitcodec.Logger = ZapLogger{}

func (z ZapLogger) Debug(msg string, f bitcodec.Fields) {
	if z.MinLevel > LevelDebug {
		return
	}
	z.L.Debug(msg, zf(f)...)
}

func (z ZapLogger) Info(msg string, f bitcodec.Fields) {
	if z.MinLevel > LevelInfo {
		return
	}
	z.L.Info(msg, zf(f)...)
}

func (z ZapLogger) Warn(msg string, f bitcodec.Fields) {
	if z.MinLevel > LevelWarn {
		return
	}
	z.L.Warn(msg, zf(f)...)
}

func (z ZapLogger) Error(msg string, f bitcodec.Fields) {
	if z.MinLevel > LevelError {
		return
	}
	z.L.Error(msg, zf(f)...)
}

func zf(f bitcodec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
