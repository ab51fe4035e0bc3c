package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rejdeboer/dhcp-decoder/internal/configuration"
)

var once sync.Once

var log zerolog.Logger

// Get returns the process logger. Before Init it is built from LOG_FORMAT and
// LOG_LEVEL.
func Get() zerolog.Logger {
	once.Do(func() {
		log = New(os.Stderr, os.Getenv("LOG_FORMAT"))
		if level := os.Getenv("LOG_LEVEL"); level != "" {
			SetLevel(level)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	})

	return log
}

// Init replaces the process logger with one writing to w in the configured
// format and sets the configured level. Later calls to Get return it.
func Init(w io.Writer, settings configuration.ApplicationSettings) zerolog.Logger {
	once.Do(func() {})
	log = New(w, settings.LogFormat)
	SetLevel(settings.LogLevel)
	return log
}

// New builds a logger writing to w. Format "console" gives human readable
// output, anything else JSON.
func New(w io.Writer, format string) zerolog.Logger {
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel sets the global level. Unknown levels fall back to info.
func SetLevel(level string) {
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		l = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(l)
}
