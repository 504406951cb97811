package tmxparser

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newDefaultLogger())
}

func newDefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// SetLogger replaces the logger used for parse diagnostics. By default
// warnings about unrecognized tags and attributes go to stderr. Pass nil
// to silence them.
//
// Levels used:
//   - [slog.LevelDebug]: external files being included
//   - [slog.LevelWarn]: unknown tags, attributes and property types
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current diagnostics logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func warnTag(doc, tag string) {
	Logger().Warn("unrecognized tag", "doc", doc, "tag", tag)
}

func warnEmptyTag(doc, tag string) {
	Logger().Warn("unrecognized empty tag", "doc", doc, "tag", tag)
}

func warnAttr(tag, attr string) {
	Logger().Warn("unrecognized attribute", "tag", tag, "attr", attr)
}
