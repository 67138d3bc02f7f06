package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keyreg/internal/clipboard"
	"github.com/dshills/keyreg/internal/config"
	"github.com/dshills/keyreg/internal/plugin/api"
	plua "github.com/dshills/keyreg/internal/plugin/lua"
	"github.com/dshills/keyreg/internal/plugin/security"
	"github.com/dshills/keyreg/internal/register"
)

// Options holds the host-side settings of a session that do not come from
// the configuration file.
type Options struct {
	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// ScriptOutput receives the output of Lua print. Defaults to os.Stdout.
	ScriptOutput io.Writer

	// Clipboard backs the "+ and "* registers instead of the system
	// clipboard. Only used when the configuration enables the clipboard.
	Clipboard register.Clipboard

	// ScriptTimeout bounds each script run. Zero uses the Lua default.
	ScriptTimeout time.Duration
}

// Session owns one register manager and the Lua state that scripts it.
type Session struct {
	id        uuid.UUID
	cfg       config.Config
	logger    *Logger
	registers *register.Manager
	checker   *security.PermissionChecker
	state     *plua.State

	systemClipboard bool
	closed          bool
}

// NewSession creates a session from a validated configuration.
func NewSession(cfg config.Config, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	s := &Session{
		id:  uuid.New(),
		cfg: cfg,
	}
	s.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Logging.Level),
		Output: opts.LogOutput,
		Prefix: "keyreg",
	}).WithField("session", s.id.String())

	var clip register.Clipboard
	if cfg.Registers.Clipboard {
		clip = opts.Clipboard
		if clip == nil {
			clip, s.systemClipboard = clipboard.Open()
			if !s.systemClipboard {
				s.logger.Warn("system clipboard unavailable, using an in-process clipboard")
			}
		}
	}

	regOpts := append(cfg.RegisterOptions(clip), register.WithLogger(s.logger.WithComponent("register")))
	s.registers = register.NewManager(regOpts...)

	s.checker = security.NewPermissionChecker("session " + s.id.String())
	s.checker.Grant(security.CapabilityRegisters)
	if clip != nil {
		s.checker.Grant(security.CapabilityClipboard)
	}

	scriptOutput := opts.ScriptOutput
	if scriptOutput == nil {
		scriptOutput = os.Stdout
	}
	stateOpts := []plua.StateOption{plua.WithOutput(scriptOutput)}
	if opts.ScriptTimeout > 0 {
		stateOpts = append(stateOpts, plua.WithExecutionTimeout(opts.ScriptTimeout))
	}
	state, err := plua.NewState(stateOpts...)
	if err != nil {
		return nil, &InitError{Component: "lua", Err: err}
	}
	s.state = state

	registry, err := api.DefaultRegistry(s.registers, s.checker)
	if err == nil {
		err = registry.InjectAll(state.LuaState(), s.checker)
	}
	if err != nil {
		_ = state.Close()
		return nil, &InitError{Component: "plugin api", Err: err}
	}

	s.logger.Debug("session started: %s", cfg)
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Logger returns the session logger.
func (s *Session) Logger() *Logger {
	return s.logger
}

// Registers returns the session's register manager.
func (s *Session) Registers() *register.Manager {
	return s.registers
}

// SystemClipboard reports whether "+ and "* reach the system clipboard.
func (s *Session) SystemClipboard() bool {
	return s.systemClipboard
}

// RunScript executes the Lua file at path.
func (s *Session) RunScript(path string) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.logger.Debug("running script %s", path)
	if err := s.state.DoFile(path); err != nil {
		s.logger.Error("script %s failed: %v", path, err)
		return NewOperationError("run script", path, err)
	}
	return nil
}

// RunScripts executes each script in order, stopping at the first failure.
func (s *Session) RunScripts(paths []string) error {
	for i, p := range paths {
		if err := s.RunScript(p); err != nil {
			var oe *OperationError
			if errors.As(err, &oe) && len(paths) > 1 {
				oe.WithContext(fmt.Sprintf("script %d of %d", i+1, len(paths)))
			}
			return err
		}
	}
	return nil
}

// RunString executes a Lua chunk.
func (s *Session) RunString(code string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := s.state.DoString(code); err != nil {
		return NewOperationError("run chunk", "", err)
	}
	return nil
}

// Listing writes the :registers table for the session.
func (s *Session) Listing(w io.Writer) error {
	if s.closed {
		return ErrSessionClosed
	}
	return register.WriteListing(w, s.registers.Snapshot(), s.cfg.Registers.ListWidth)
}

// Close releases the Lua state. It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.logger.Debug("session closed")
	return s.state.Close()
}
