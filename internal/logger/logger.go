package logger

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Logger struct {
	zl zerolog.Logger
}

func New(w io.Writer) *Logger {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}

	return &Logger{zl: zerolog.New(output).With().Timestamp().Logger()}
}

func (l *Logger) SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	l.zl = l.zl.Level(lvl)
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.zl.Error().Msgf(format, v...)
}

// LogErrorWithStack logs err together with the stack trace of the call site.
func (l *Logger) LogErrorWithStack(err error) {
	l.zl.Error().Msgf("%+v", errors.WithStack(err))
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.zl.Info().Msgf(format, v...)
}
