package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileSystem is the file access the loader needs.
// fstest.MapFS satisfies it in tests.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader builds a Config from defaults, a file, and the environment.
type Loader struct {
	fs  FileSystem
	env *EnvLoader
}

// NewLoader creates a loader reading the OS file system and KEYREG_*
// environment variables.
func NewLoader() *Loader {
	return &Loader{fs: OSFS{}, env: NewEnvLoader(EnvPrefix)}
}

// NewLoaderWithFS creates a loader with a custom file system and env loader.
// A nil env loader disables environment overrides.
func NewLoaderWithFS(fsys FileSystem, env *EnvLoader) *Loader {
	return &Loader{fs: fsys, env: env}
}

// Load reads the configuration at path. An empty path or a missing file
// yields the defaults, still subject to environment overrides.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := l.fs.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := Parse(path, data, &cfg); err != nil {
				return Config{}, err
			}
			cfg.resolveScripts(filepath.Dir(path))
		}
	}

	if l.env != nil {
		if err := l.env.Apply(&cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes data over cfg, picking the format from the extension of
// source. Fields absent from data keep their current values.
func Parse(source string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".toml", "":
		return parseTOML(source, data, cfg)
	case ".yaml", ".yml":
		return parseYAML(source, data, cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, source)
	}
}

func parseTOML(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return pe
	}
	return nil
}

func parseYAML(source string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty document is a valid, empty configuration.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return nil
}
