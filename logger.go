package pixed

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record and reports every level as disabled, so log
// calls cost only the Enabled check.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(slog.New(silent{}))
}

// SetLogger routes the diagnostics of pixed and its sub-packages to l.
// Nothing is logged until it is called; nil silences logging again.
//
// Debug records describe individual operations (destination sizes, kernel
// lengths, fill counts). Warn records report allocations refused by
// [MaxBufferBytes].
//
//	pixed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silent{})
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return active.Load()
}
