package main

import (
	"io"
	"log/slog"

	kingpin "github.com/alecthomas/kingpin/v2"
)

// logLevels maps the --log-level values to slog levels. Unknown names fall
// back to info.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type logFlags struct {
	out    io.Writer
	level  *string
	format *string
}

func (l *logFlags) addTo(app *kingpin.Application) {
	l.level = app.Flag("log-level", "Minimum log level").
		Default("info").Envar("GQLDSL_LOG_LEVEL").Enum("debug", "info", "warn", "error")
	l.format = app.Flag("log-format", "Log output format").
		Default("text").Envar("GQLDSL_LOG_FORMAT").Enum("text", "json")
	app.PreAction(l.setup)
}

// setup installs the default slog logger.
func (l *logFlags) setup(*kingpin.ParseContext) error {
	slog.SetDefault(slog.New(l.handler()))
	return nil
}

func (l *logFlags) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: logLevels[*l.level]}
	if *l.format == "json" {
		return slog.NewJSONHandler(l.out, opts)
	}
	return slog.NewTextHandler(l.out, opts)
}
