package monitoring

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// level is shared by every logger built here so SetLevel applies to all of them.
var level = new(slog.LevelVar)

// Logger is the structured diagnostic logger. It writes to stderr so stdout
// carries only reading lines.
var Logger = NewLogger(os.Stderr)

// Logf is the package-level diagnostic logger. It defaults to a debug-level
// message on Logger but may be replaced by SetLogger. Tests or production code
// can redirect or mute it.
var Logf func(format string, v ...interface{}) = defaultLogf

// NewLogger returns a tint-formatted slog logger writing to w.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetLevel changes the minimum level of loggers built by this package.
func SetLevel(l slog.Level) {
	level.Set(l)
}

func defaultLogf(format string, v ...interface{}) {
	Logger.Debug(fmt.Sprintf(format, v...))
}
