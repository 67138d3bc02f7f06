package register

import (
	"sort"
	"strconv"

	"github.com/samber/mo"
)

// Manager owns the registers of one editing session together with the
// state needed to repeat earlier actions.
//
// A Manager is not safe for concurrent use; the editor serializes command
// execution on one goroutine.
type Manager struct {
	registers map[string]Register

	unnamed          *simpleRegister
	lastEditRegister *simpleRegister
	defaultRegister  Register
	activeRegister   Register
	defaultName      string

	search           mo.Option[Search]
	lastEdit         mo.Option[Command]
	lastInsertion    mo.Option[Command]
	lastSubstitution mo.Option[SubstitutionOperation]
	lastFindChar     mo.Option[FindCharMotion]
	lastNavigating   mo.Option[NavigatingMotion]
	lastSelection    mo.Option[SelectionArea]
	lastCommand      mo.Option[string]

	fileName      string
	alternateFile string
	cwd           string

	clipboard Clipboard
	logger    Logger
}

type fixedRegister struct {
	name string
	kind Kind
}

// NewManager creates a manager with the fixed registers in place.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		registers: make(map[string]Register),
		cwd:       pathSeparator,
		logger:    nopLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.unnamed = newSimpleRegister(NameUnnamed, nil)
	m.lastEditRegister = newSimpleRegister(NameLastInsert, nil)
	m.registers[NameUnnamed] = m.unnamed

	fixed := []fixedRegister{
		{NameLastInsert, KindLastInsertion},
		{NameSearch, KindSearch},
		{NameBlackHole, KindBlackHole},
		{NameCommand, KindCommand},
		{NameFileName, KindFileName},
		{NameAlternateFile, KindAlternateFile},
	}
	if m.clipboard != nil {
		fixed = append(fixed,
			fixedRegister{NameClipboard, KindClipboard},
			fixedRegister{NameSelection, KindSelection},
		)
	}
	for _, f := range fixed {
		m.registers[f.name] = &specialRegister{name: f.name, kind: f.kind, m: m}
	}

	m.defaultRegister = m.unnamed
	if m.defaultName != "" && m.defaultName != NameUnnamed {
		m.defaultRegister = m.GetOrCreate(m.defaultName)
	}
	m.activeRegister = m.defaultRegister
	return m
}

// GetOrCreate resolves name to a register, creating it when it does not
// exist yet. This mutates the manager.
//
// Lookup is case-insensitive. An upper-case name returns a fresh append view
// over the same storage as its lower-case form.
func (m *Manager) GetOrCreate(name string) Register {
	key := normalizeName(name)
	r, ok := m.registers[key]
	if !ok {
		r = newSimpleRegister(key, m.unnamed)
		m.registers[key] = r
		m.logger.Debug("register %s: created", key)
	}
	if IsAppendName(name) {
		return &appendRegister{name: name, inner: r}
	}
	return r
}

// Has reports whether a register exists under name without creating it.
func (m *Manager) Has(name string) bool {
	_, ok := m.registers[normalizeName(name)]
	return ok
}

// Names returns the names of all existing registers, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.registers))
	for name := range m.registers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the default register.
func (m *Manager) Default() Register {
	return m.defaultRegister
}

// Unnamed returns the unnamed register.
func (m *Manager) Unnamed() Register {
	return m.unnamed
}

// Active returns the register the next anonymous write targets.
func (m *Manager) Active() Register {
	return m.activeRegister
}

// SetActive makes the register named name active, creating it if needed.
func (m *Manager) SetActive(name string) {
	m.activeRegister = m.GetOrCreate(name)
}

// SetActiveRegister makes r active.
func (m *Manager) SetActiveRegister(r Register) {
	m.activeRegister = r
}

// ActivateDefault makes the default register active.
func (m *Manager) ActivateDefault() {
	m.activeRegister = m.defaultRegister
}

// ActivateLastEdit makes the last-edit register active.
func (m *Manager) ActivateLastEdit() {
	m.activeRegister = m.lastEditRegister
}

// IsDefaultActive reports whether the default register is active.
func (m *Manager) IsDefaultActive() bool {
	return m.activeRegister == m.defaultRegister
}

// LastEditRegister returns the register recording inserted text for
// dot-repeat. The ". register mirrors it.
func (m *Manager) LastEditRegister() Register {
	return m.lastEditRegister
}

// SetLastNamedRegister binds the "@ slot to r, so that @@ replays it.
func (m *Manager) SetLastNamedRegister(r Register) {
	m.registers[NameLastExecuted] = r
}

// SetLastYank stores yanked content in "0 whatever register is active.
func (m *Manager) SetLastYank(c Content) {
	Store(m.GetOrCreate(NameLastYank), c)
}

// SetLastDelete stores deleted content. Text without a line break goes to
// the small-delete register; anything longer shifts the "1".."9" history
// down by one, dropping "9", and lands in "1".
func (m *Manager) SetLastDelete(c Content) {
	if !c.HasLineBreak() {
		Store(m.GetOrCreate(NameSmallDelete), c)
		return
	}
	for i := numberedRingSize - 1; i > 0; i-- {
		from := strconv.Itoa(i)
		if r, ok := m.registers[from]; ok {
			m.GetOrCreate(strconv.Itoa(i+1)).SetContent(r.Content(), false)
		}
	}
	m.logger.Debug("register 1: delete history shifted")
	Store(m.GetOrCreate("1"), c)
}
