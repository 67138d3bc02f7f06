package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment variables read by NewLoader.
const EnvPrefix = "KEYREG_"

// EnvLoader applies environment variable overrides to a Config.
type EnvLoader struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix should include the trailing underscore (e.g., "KEYREG_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, lookup: os.LookupEnv}
}

// NewEnvLoaderWithLookup creates a loader that reads variables through lookup.
func NewEnvLoaderWithLookup(prefix string, lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{prefix: prefix, lookup: lookup}
}

// Apply overrides cfg with any variables that are set.
// Empty string values are treated as set.
func (l *EnvLoader) Apply(cfg *Config) error {
	if v, ok := l.get("LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := l.get("CWD"); ok {
		cfg.Registers.WorkingDirectory = v
	}
	if v, ok := l.get("DEFAULT_REGISTER"); ok {
		cfg.Registers.DefaultRegister = v
	}
	if v, ok := l.get("CLIPBOARD"); ok {
		b, err := parseBool(v)
		if err != nil {
			return &ValidationError{Path: l.prefix + "CLIPBOARD", Value: v, Message: "must be a boolean"}
		}
		cfg.Registers.Clipboard = b
	}
	if v, ok := l.get("LIST_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Path: l.prefix + "LIST_WIDTH", Value: v, Message: "must be an integer"}
		}
		cfg.Registers.ListWidth = n
	}
	return nil
}

func (l *EnvLoader) get(name string) (string, bool) {
	return l.lookup(l.prefix + name)
}

// parseBool accepts the spellings the editor's other settings accept.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
