package main

import (
	"log/slog"
	"os"
	"strconv"
)

var (
	theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
)

// logLevel turns on operation logging when SYMX_DEBUG is set.
func logLevel() slog.Level {
	if on, _ := strconv.ParseBool(os.Getenv("SYMX_DEBUG")); on {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
