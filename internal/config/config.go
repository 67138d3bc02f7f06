package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/keyreg/internal/register"
)

// Default configuration values.
const (
	DefaultWorkingDirectory = "/"
	DefaultLogLevel         = "info"
	DefaultListWidth        = register.DefaultListWidth
)

// Config is the complete session configuration.
type Config struct {
	Registers RegistersConfig `toml:"registers" yaml:"registers"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`
	Plugins   PluginsConfig   `toml:"plugins" yaml:"plugins"`
}

// RegistersConfig configures the register manager.
type RegistersConfig struct {
	// WorkingDirectory is the initial virtual working directory.
	WorkingDirectory string `toml:"cwd" yaml:"cwd"`

	// Clipboard backs the "+ and "* registers with the system clipboard.
	Clipboard bool `toml:"clipboard" yaml:"clipboard"`

	// DefaultRegister replaces the unnamed register as the default target.
	// Only "+" and "*" are accepted besides the unnamed register.
	DefaultRegister string `toml:"default_register" yaml:"default_register"`

	// ListWidth is the number of display cells shown per register in the
	// :registers listing.
	ListWidth int `toml:"list_width" yaml:"list_width"`
}

// LoggingConfig configures the session logger.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// PluginsConfig lists Lua scripts to run at session start.
type PluginsConfig struct {
	// Scripts are run in order. Relative paths resolve against the
	// directory of the configuration file.
	Scripts []string `toml:"scripts" yaml:"scripts"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Registers: RegistersConfig{
			WorkingDirectory: DefaultWorkingDirectory,
			ListWidth:        DefaultListWidth,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks the configuration for values the session cannot use.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.Registers.WorkingDirectory, "/") {
		return &ValidationError{
			Path:    "registers.cwd",
			Value:   c.Registers.WorkingDirectory,
			Message: "must be an absolute path",
		}
	}
	switch c.Registers.DefaultRegister {
	case "", register.NameUnnamed, register.NameClipboard, register.NameSelection:
	default:
		return &ValidationError{
			Path:    "registers.default_register",
			Value:   c.Registers.DefaultRegister,
			Message: `must be one of "", "\"", "+", "*"`,
		}
	}
	if c.Registers.ListWidth <= 0 {
		return &ValidationError{
			Path:    "registers.list_width",
			Value:   c.Registers.ListWidth,
			Message: "must be positive",
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{
			Path:    "logging.level",
			Value:   c.Logging.Level,
			Message: "must be debug, info, warn, or error",
		}
	}
	return nil
}

// RegisterOptions converts the register section into manager options.
// The clipboard provider is supplied by the caller because opening it
// touches the host system.
func (c Config) RegisterOptions(clipboard register.Clipboard) []register.Option {
	opts := []register.Option{
		register.WithWorkingDirectory(c.Registers.WorkingDirectory),
	}
	if c.Registers.Clipboard && clipboard != nil {
		opts = append(opts, register.WithClipboard(clipboard))
	}
	if c.Registers.DefaultRegister != "" {
		opts = append(opts, register.WithDefaultRegister(c.Registers.DefaultRegister))
	}
	return opts
}

// resolveScripts makes relative script paths relative to baseDir.
func (c *Config) resolveScripts(baseDir string) {
	for i, s := range c.Plugins.Scripts {
		if s != "" && !filepath.IsAbs(s) {
			c.Plugins.Scripts[i] = filepath.Join(baseDir, s)
		}
	}
}

// String summarizes the configuration for debug logging.
func (c Config) String() string {
	return fmt.Sprintf("cwd=%s clipboard=%t default=%q width=%d log=%s scripts=%d",
		c.Registers.WorkingDirectory, c.Registers.Clipboard, c.Registers.DefaultRegister,
		c.Registers.ListWidth, c.Logging.Level, len(c.Plugins.Scripts))
}
