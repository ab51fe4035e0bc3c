package configuration

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	pkgerrors "github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

type Settings struct {
	Decoder     DecoderSettings     `yaml:"decoder"`
	Application ApplicationSettings `yaml:"application"`
}

type DecoderSettings struct {
	StrictTermination bool `yaml:"strict_termination" envconfig:"DECODER_STRICT_TERMINATION"`
	// Inputs longer than this are rejected before decoding. Zero disables
	// the check.
	MaxBufferSize int `yaml:"max_buffer_size" envconfig:"DECODER_MAX_BUFFER_SIZE"`
}

type ApplicationSettings struct {
	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`
}

// ReadConfiguration loads base.yml from dir, overlays <ENVIRONMENT>.yml
// (default "local") if present and finally applies environment variables.
func ReadConfiguration(dir string) (Settings, error) {
	var settings Settings

	if err := readFile(dir, &settings, "base"); err != nil {
		return Settings{}, err
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "local"
	}

	err := readFile(dir, &settings, environment)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, err
	}

	if err := envconfig.Process("", &settings); err != nil {
		return Settings{}, pkgerrors.Wrap(err, "error reading environment")
	}

	if settings.Decoder.MaxBufferSize < 0 {
		return Settings{}, pkgerrors.Errorf("decoder.max_buffer_size must not be negative, got %d", settings.Decoder.MaxBufferSize)
	}

	return settings, nil
}

func readFile(dir string, settings *Settings, name string) error {
	path := filepath.Join(dir, name+".yml")
	f, err := os.Open(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "error opening %s", path)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return pkgerrors.Wrapf(err, "error decoding %s", path)
	}
	return nil
}
