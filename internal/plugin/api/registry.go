package api

import (
	"fmt"
	"slices"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyreg/internal/plugin/security"
	"github.com/dshills/keyreg/internal/register"
)

// PackageName is the name scripts pass to require.
const PackageName = "keyreg"

// APIVersion is reported as keyreg.api_version.
const APIVersion = 1

// globalPrefix prefixes the global each module registers itself under
// before the package loader collects it.
const globalPrefix = "_kr_"

// Module represents a Lua API module.
type Module interface {
	// Name returns the module name (e.g., "reg").
	Name() string

	// RequiredCapability returns the capability required to use this module.
	// Returns empty string if no capability is required.
	RequiredCapability() security.Capability

	// Register registers the module functions into the Lua state
	// under the _kr_<name> global.
	Register(L *lua.LState) error
}

// Registry manages API modules and their injection.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// DefaultRegistry creates a registry holding the standard modules bound to m.
func DefaultRegistry(m *register.Manager, checker *security.PermissionChecker) (*Registry, error) {
	r := NewRegistry()
	for _, mod := range []Module{NewRegisterModule(m, checker)} {
		if err := r.Register(mod); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a module to the registry.
func (r *Registry) Register(mod Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[mod.Name()]; exists {
		return fmt.Errorf("module %q already registered", mod.Name())
	}
	r.modules[mod.Name()] = mod
	return nil
}

// Get returns a module by name.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.modules[name]
	return mod, ok
}

// List returns the registered module names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// InjectAll registers every module the checker permits and installs the
// keyreg package. A nil checker permits only modules requiring no capability.
func (r *Registry) InjectAll(L *lua.LState, checker *security.PermissionChecker) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var injected []string
	for _, name := range r.sortedNames() {
		mod := r.modules[name]
		if c := mod.RequiredCapability(); c != "" {
			if checker == nil || !checker.HasCapability(c) {
				continue
			}
		}
		if err := mod.Register(L); err != nil {
			return fmt.Errorf("failed to register module %q: %w", name, err)
		}
		injected = append(injected, name)
	}

	installLoader(L, injected)
	return nil
}

// Inject registers the named modules and installs the keyreg package.
// Unlike InjectAll, a missing capability is an error.
func (r *Registry) Inject(L *lua.LState, checker *security.PermissionChecker, moduleNames ...string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range moduleNames {
		mod, ok := r.modules[name]
		if !ok {
			return fmt.Errorf("module %q not found", name)
		}
		if c := mod.RequiredCapability(); c != "" {
			if checker == nil {
				return security.NewCapabilityError(c, "module "+name, "no permission checker")
			}
			if err := checker.CheckCapability(c); err != nil {
				return err
			}
		}
		if err := mod.Register(L); err != nil {
			return fmt.Errorf("failed to register module %q: %w", name, err)
		}
	}

	installLoader(L, moduleNames)
	return nil
}

// installLoader moves the _kr_<name> globals into a table served by
// require("keyreg").
func installLoader(L *lua.LState, names []string) {
	pkg := L.NewTable()
	for _, name := range names {
		global := globalPrefix + name
		if v := L.GetGlobal(global); v != lua.LNil {
			L.SetField(pkg, name, v)
			L.SetGlobal(global, lua.LNil)
		}
	}
	L.SetField(pkg, "api_version", lua.LNumber(APIVersion))

	L.PreloadModule(PackageName, func(L *lua.LState) int {
		L.Push(pkg)
		return 1
	})
}
