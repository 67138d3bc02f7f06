package register

// Logger receives debug output from the manager.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Clipboard is an external text store backing the "+ and "* registers.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Option configures a Manager during creation.
type Option func(*Manager)

// WithLogger sets the logger used for debug output.
func WithLogger(l Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClipboard backs the "+ and "* registers with c. Without a clipboard
// both names behave like ordinary named registers.
func WithClipboard(c Clipboard) Option {
	return func(m *Manager) {
		m.clipboard = c
	}
}

// WithDefaultRegister makes name the default register instead of the
// unnamed one, as Vim's clipboard=unnamed and unnamedplus settings do.
func WithDefaultRegister(name string) Option {
	return func(m *Manager) {
		m.defaultName = name
	}
}

// WithWorkingDirectory sets the initial virtual working directory.
func WithWorkingDirectory(dir string) Option {
	return func(m *Manager) {
		if dir != "" {
			m.cwd = ResolvePath("/", dir)
		}
	}
}
