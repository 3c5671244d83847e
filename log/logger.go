package log

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

func Print(v ...interface{}) {
	logger.Print(v...)
}

func Printf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

func Fatal(v ...interface{}) {
	logger.Print(v...)
	os.Exit(1)
}

// With returns the underlying logger for structured fields.
func With() zerolog.Context {
	return logger.With()
}
