// Package main is the entry point for keyreg, which runs Lua scripts against
// a register session and prints the resulting :registers table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/keyreg/internal/app"
	"github.com/dshills/keyreg/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	ConfigPath  string
	LogLevel    string
	Width       int
	Scripts     []string
	ShowVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "keyreg %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.NewLoader().Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.Width > 0 {
		cfg.Registers.ListWidth = opts.Width
	}

	session, err := app.NewSession(cfg, app.Options{
		LogOutput:    stderr,
		ScriptOutput: stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer session.Close()

	scripts := append(append([]string{}, cfg.Plugins.Scripts...), opts.Scripts...)
	if err := session.RunScripts(scripts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := session.Listing(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("keyreg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	fs.IntVar(&opts.Width, "width", 0, "Display cells shown per register; overrides the config")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.ShowVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "keyreg - Vim register sessions driven by Lua\n\n")
		fmt.Fprintf(stderr, "Usage: keyreg [options] [scripts...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  keyreg                        Print the empty register table\n")
		fmt.Fprintf(stderr, "  keyreg init.lua               Run a script, then print registers\n")
		fmt.Fprintf(stderr, "  keyreg -c keyreg.toml a.lua   Run configured scripts, then a.lua\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Scripts = fs.Args()
	return opts, nil
}
