package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rejdeboer/dhcp-decoder/internal/configuration"
)

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	SetLevel("warn")
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("expected warn got %v", zerolog.GlobalLevel())
	}

	SetLevel("nonsense")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("expected fallback to info got %v", zerolog.GlobalLevel())
	}
}

func TestNew(t *testing.T) {
	var out bytes.Buffer
	jsonLogger := New(&out, "json")
	jsonLogger.Info().Str("field", "value").Msg("hello")
	if !strings.HasPrefix(out.String(), `{"level":"info"`) || !strings.Contains(out.String(), `"field":"value"`) {
		t.Errorf("unexpected json output %s", out.String())
	}

	out.Reset()
	consoleLogger := New(&out, "console")
	consoleLogger.Info().Msg("hello")
	if strings.HasPrefix(out.String(), "{") || !strings.Contains(out.String(), "hello") {
		t.Errorf("unexpected console output %s", out.String())
	}
}

func TestInit(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	Init(&out, configuration.ApplicationSettings{LogLevel: "debug", LogFormat: "console"})

	l := Get()
	l.Debug().Msg("after init")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("expected debug got %v", zerolog.GlobalLevel())
	}
	if strings.HasPrefix(out.String(), "{") || !strings.Contains(out.String(), "after init") {
		t.Errorf("expected console output from Get after Init got %q", out.String())
	}
}
