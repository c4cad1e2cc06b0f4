package main

import (
	"log/slog"
	"os"
)

// logLevel is raised to Info by -v.
var logLevel = func() *slog.LevelVar {
	v := &slog.LevelVar{}
	v.Set(slog.LevelWarn)
	return v
}()

var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: logLevel,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.TimeKey:
			return slog.Attr{}
		case slog.LevelKey:
			if a.Value.String() == slog.LevelInfo.String() {
				return slog.Attr{}
			}
		}
		return a
	},
}))
