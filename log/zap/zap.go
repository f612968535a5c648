// Package zap adapts a *zap.Logger to zerohex.Logger.
package zap

import (
	"sort"

	"github.com/unkn0wn-root/zerohex"
	"go.uber.org/zap"
)

var _ zerohex.Logger = Logger{}

type Logger struct{ L *zap.Logger }

// New wraps l. A nil l logs nothing.
func New(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return Logger{L: l}
}

func (z Logger) Debug(msg string, f zerohex.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f zerohex.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f zerohex.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f zerohex.Fields) { z.L.Error(msg, fields(f)...) }

// fields sorts by key so output order is stable.
func fields(f zerohex.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
