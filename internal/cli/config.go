package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of the tour settings.
//
//	topics: [ownership, threads]
//	pace: 10ms
//	log_level: info
type Config struct {
	// Topics restricts the default run to these topics. Empty means all.
	Topics []string `yaml:"topics,omitempty"`

	// Pace is nil when the file does not set it, so an explicit 0 can be
	// told apart from "unset".
	Pace *time.Duration `yaml:"pace,omitempty"`

	LogLevel string `yaml:"log_level,omitempty"`
}

// LoadConfig reads and parses a config file. Unknown keys are rejected; an
// empty file yields the zero Config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}
