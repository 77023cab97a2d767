package log

import (
	"log/slog"
	"os"
)

var level = &slog.LevelVar{}

var LoggerOpts = &slog.HandlerOptions{
	Level: level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

// DefaultLogger writes to stderr so traces never mix with the
// converted sentence on stdout.
var DefaultLogger = slog.New(slog.NewTextHandler(os.Stderr, LoggerOpts))

func SetLevel(l slog.Level) {
	level.Set(l)
}
