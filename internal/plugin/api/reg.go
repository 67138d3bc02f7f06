package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyreg/internal/plugin/security"
	"github.com/dshills/keyreg/internal/register"
)

// Shape names used by the reg module.
const (
	ShapeChar  = "char"
	ShapeLine  = "line"
	ShapeBlock = "block"
)

// RegisterModule implements the keyreg.reg API module.
type RegisterModule struct {
	m       *register.Manager
	checker *security.PermissionChecker
}

// NewRegisterModule creates a reg module over m. The checker gates the
// clipboard registers; a nil checker denies them.
func NewRegisterModule(m *register.Manager, checker *security.PermissionChecker) *RegisterModule {
	return &RegisterModule{m: m, checker: checker}
}

// Name returns the module name.
func (r *RegisterModule) Name() string {
	return "reg"
}

// RequiredCapability returns the capability required for this module.
func (r *RegisterModule) RequiredCapability() security.Capability {
	return security.CapabilityRegisters
}

// Register registers the module into the Lua state.
func (r *RegisterModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "get", L.NewFunction(r.get))
	L.SetField(mod, "set", L.NewFunction(r.set))
	L.SetField(mod, "yank", L.NewFunction(r.yank))
	L.SetField(mod, "delete", L.NewFunction(r.delete))
	L.SetField(mod, "names", L.NewFunction(r.names))
	L.SetField(mod, "active", L.NewFunction(r.active))
	L.SetField(mod, "select", L.NewFunction(r.selectRegister))
	L.SetField(mod, "reset", L.NewFunction(r.reset))
	L.SetField(mod, "search", L.NewFunction(r.search))
	L.SetField(mod, "command", L.NewFunction(r.command))
	L.SetField(mod, "cwd", L.NewFunction(r.cwd))
	L.SetField(mod, "cd", L.NewFunction(r.cd))

	L.SetField(mod, "CHAR", lua.LString(ShapeChar))
	L.SetField(mod, "LINE", lua.LString(ShapeLine))
	L.SetField(mod, "BLOCK", lua.LString(ShapeBlock))

	L.SetGlobal(globalPrefix+r.Name(), mod)
	return nil
}

// lookup returns the register for name, raising a Lua error when it is a
// clipboard register the script may not touch.
func (r *RegisterModule) lookup(L *lua.LState, name, op string) register.Register {
	reg := r.m.GetOrCreate(name)
	kind, ok := register.KindOf(reg)
	if !ok || (kind != register.KindClipboard && kind != register.KindSelection) {
		return reg
	}
	if r.checker == nil {
		L.RaiseError("%s: %v", op, security.NewCapabilityError(security.CapabilityClipboard, op, "no permission checker"))
		return nil
	}
	if err := r.checker.CheckClipboard(op); err != nil {
		L.RaiseError("%s: %v", op, err)
		return nil
	}
	return reg
}

// get(name) -> text, shape
func (r *RegisterModule) get(L *lua.LState) int {
	name := L.OptString(1, "")
	c := r.lookup(L, name, "get").Content()

	L.Push(lua.LString(c.Text()))
	L.Push(lua.LString(shapeName(c.Shape())))
	return 2
}

// set(name, text[, shape])
// Writes through the register, so named registers also update the
// unnamed register and upper-case names append.
func (r *RegisterModule) set(L *lua.LState) int {
	name := L.CheckString(1)
	c := checkContent(L, 2)
	register.Store(r.lookup(L, name, "set"), c)
	return 0
}

// yank(text[, shape])
func (r *RegisterModule) yank(L *lua.LState) int {
	r.m.SetLastYank(checkContent(L, 1))
	return 0
}

// delete(text[, shape])
func (r *RegisterModule) delete(L *lua.LState) int {
	r.m.SetLastDelete(checkContent(L, 1))
	return 0
}

// names() -> {name, ...}
// Lists the registers that exist, in sorted order.
func (r *RegisterModule) names(L *lua.LState) int {
	tbl := L.NewTable()
	for _, name := range r.m.Names() {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// active() -> name
func (r *RegisterModule) active(L *lua.LState) int {
	L.Push(lua.LString(r.m.Active().Name()))
	return 1
}

// select(name)
func (r *RegisterModule) selectRegister(L *lua.LState) int {
	name := L.CheckString(1)
	r.lookup(L, name, "select")
	r.m.SetActive(name)
	return 0
}

// reset()
// Re-activates the default register.
func (r *RegisterModule) reset(L *lua.LState) int {
	r.m.ActivateDefault()
	return 0
}

// search([keyword]) -> keyword|nil
func (r *RegisterModule) search(L *lua.LState) int {
	if L.GetTop() >= 1 {
		r.m.SetSearch(keyword(L.CheckString(1)))
	}
	if s, ok := r.m.Search().Get(); ok {
		L.Push(lua.LString(s.Keyword()))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}

// command([line]) -> line|nil
func (r *RegisterModule) command(L *lua.LState) int {
	if L.GetTop() >= 1 {
		r.m.SetLastCommand(L.CheckString(1))
	}
	if line, ok := r.m.LastCommand().Get(); ok {
		L.Push(lua.LString(line))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}

// cwd() -> path
func (r *RegisterModule) cwd(L *lua.LState) int {
	L.Push(lua.LString(r.m.CurrentWorkingDirectory()))
	return 1
}

// cd(dir) -> path
func (r *RegisterModule) cd(L *lua.LState) int {
	dir := L.CheckString(1)
	r.m.SetCurrentWorkingDirectory(dir)
	L.Push(lua.LString(r.m.CurrentWorkingDirectory()))
	return 1
}

// keyword is a search recorded from a script.
type keyword string

func (k keyword) Keyword() string { return string(k) }

// checkContent reads text at index n and an optional shape at n+1.
func checkContent(L *lua.LState, n int) register.Content {
	text := L.CheckString(n)
	shape, ok := parseShape(L.OptString(n+1, ShapeChar))
	if !ok {
		L.ArgError(n+1, "shape must be char, line, or block")
	}
	return register.NewContent(shape, text)
}

func parseShape(s string) (register.Shape, bool) {
	switch s {
	case ShapeChar:
		return register.Characterwise, true
	case ShapeLine:
		return register.Linewise, true
	case ShapeBlock:
		return register.Blockwise, true
	}
	return register.Characterwise, false
}

func shapeName(s register.Shape) string {
	switch s {
	case register.Linewise:
		return ShapeLine
	case register.Blockwise:
		return ShapeBlock
	default:
		return ShapeChar
	}
}
