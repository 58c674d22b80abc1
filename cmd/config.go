package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// problemsDirEnv overrides Config.ProblemsDir when set.
const problemsDirEnv = "COBALT_DIR_PROBLEMS"

// Config represents the cobalt.yaml structure.
// All fields must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	ProblemsDir string `yaml:"problems_dir"` // directory receiving <session>_log.xml
	LogLevel    string `yaml:"log_level"`    // logrus level name
	Jobs        int    `yaml:"jobs"`         // scripts replayed concurrently
}

func defaultConfig() Config {
	return Config{
		ProblemsDir: ".",
		LogLevel:    "warn",
		Jobs:        1,
	}
}

// loadConfig parses a YAML config over the defaults.
// Unrecognized keys (typos) are rejected; an empty file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the config can drive a replay.
func (c Config) Validate() error {
	if c.ProblemsDir == "" {
		return fmt.Errorf("problems_dir must not be empty")
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}
