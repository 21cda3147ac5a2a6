// Package config loads the settings of the vowel command from a TOML or YAML
// file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileNames are the files Discover looks for, in order
var FileNames = []string{"vowel.toml", "vowel.yaml", "vowel.yml"}

// Config holds every setting of the interpreter command
type Config struct {
	Run   Run  `toml:"run" yaml:"run"`
	REPL  REPL `toml:"repl" yaml:"repl"`
	Debug bool `toml:"debug" yaml:"debug"`
}

// Run controls how a program is executed
type Run struct {
	// PrintAST prints the syntax tree instead of running the program
	PrintAST bool `toml:"print_ast" yaml:"print_ast"`
	// Warnings enables the resolver's advisories
	Warnings bool `toml:"warnings" yaml:"warnings"`
}

// REPL controls the interactive prompt
type REPL struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	// History is the file the prompt history is kept in, empty disables it
	History string `toml:"history" yaml:"history"`
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		Run: Run{
			PrintAST: false,
			Warnings: true,
		},
		REPL: REPL{
			Prompt:  "> ",
			History: "",
		},
	}
}

// Load reads the file at path on top of the defaults. The decoder is chosen
// by the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := decodeTOML(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := decodeYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported file extension %q", ext)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the first of FileNames found in dir. The defaults are
// returned when there is none.
func Discover(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
		return Load(path)
	}
	return Default(), nil
}

func decodeTOML(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(cfg)
}

func decodeYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (cfg *Config) validate() error {
	if cfg.REPL.Prompt == "" {
		return errors.New("repl.prompt must not be empty")
	}
	return nil
}
