package lib

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
)

func newLogHandler(erd *ERDConvert) slog.Handler {
	buf := bytes.Buffer{}
	f := slog.NewTextHandler(&buf, nil)
	return &logHandler{
		erd:       erd,
		formatter: f,
		output:    &buf,
	}
}

// logHandler sends slog records from the library packages to the
// zerolog console logger, so both share one sink and one level
type logHandler struct {
	erd       *ERDConvert
	formatter slog.Handler
	output    *bytes.Buffer
}

// Enabled always returns true and let zerolog decide
func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return true
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &logHandler{
		erd:       h.erd,
		output:    h.output,
		formatter: h.formatter.WithAttrs(attrs),
	}
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	return &logHandler{
		erd:       h.erd,
		output:    h.output,
		formatter: h.formatter.WithGroup(name),
	}
}

// Handle formats the record with a TextHandler and passes the resulting
// line on to zerolog at the matching level
func (h *logHandler) Handle(ctx context.Context, r slog.Record) error {
	h.formatter.Handle(ctx, r)
	msg := strings.TrimSpace(h.output.String())
	if msg == "" {
		msg = "<<logHandler received empty message>>"
	}
	switch r.Level {
	case slog.LevelDebug:
		h.erd.logger.Debug().Msg(msg)
	case slog.LevelInfo:
		h.erd.logger.Info().Msg(msg)
	case slog.LevelWarn:
		h.erd.logger.Warn().Msg(msg)
	default:
		// Should be Error, but in case other levels get define at
		// least nothing gets lost
		h.erd.logger.Error().Msg(msg)
	}
	h.output.Reset()
	return nil
}
