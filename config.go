package dartsarif

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings which can be stored in a configuration file.
// Command line flags take precedence over these values.
type Config struct {
	Provenance   `yaml:",inline"`
	DetectVCS    bool              `yaml:"detect-vcs,omitempty"`
	Format       string            `yaml:"format,omitempty"`
	ExcludeRules []PathExcludeRule `yaml:"exclude-rules,omitempty"`
}

// NewConfig initializes an empty configuration
func NewConfig() *Config {
	return &Config{}
}

// ReadFrom implements the io.ReaderFrom interface. Unknown keys are
// rejected so that typos do not go unnoticed.
func (c *Config) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return int64(len(data)), err
	}
	return int64(len(data)), nil
}

// LoadConfig reads the configuration file at path. An empty path returns
// an empty configuration.
func LoadConfig(path string) (*Config, error) {
	config := NewConfig()
	if path == "" {
		return config, nil
	}
	// #nosec G304
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if _, err := config.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}
