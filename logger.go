package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type logger struct {
	fieldLog  zerolog.Logger
	renderLog zerolog.Logger
}

func (l *logger) UnknownField(key string) {
	l.fieldLog.Warn().Str("field", key).Msg("Field is absent in catalog")
}

func (l *logger) InvalidIP(ip string) {
	l.renderLog.Warn().Str("ip", ip).Msg("IP address looks incorrect, passing as is")
}

func (l *logger) Rendered(elementID, ip string) {
	l.renderLog.Debug().Str("element_id", elementID).Str("ip", ip).Msg("Widget was rendered")
}

func (l *logger) Fatal(err error) {
	l.renderLog.Fatal().Err(err).Msg("")
}

func newLogger(w io.Writer, debug bool) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	base := zerolog.New(w).Level(level)

	return &logger{
		fieldLog:  base.With().Timestamp().Str("event_name", "field").Logger(),
		renderLog: base.With().Timestamp().Str("event_name", "render").Logger(),
	}
}

func newStderrLogger(debug bool) *logger {
	return newLogger(os.Stderr, debug)
}
