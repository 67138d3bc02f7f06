package register

import "github.com/samber/mo"

// Opaque handles owned by the command layer. The manager stores and returns
// them without looking inside.
type (
	// Command is a repeatable edit, replayed by dot-repeat.
	Command interface{}

	// SubstitutionOperation is a :s operation, replayed by & and :&&.
	SubstitutionOperation interface{}

	// FindCharMotion is an f/F/t/T motion, replayed by ; and ,.
	FindCharMotion interface{}

	// NavigatingMotion is a jump-style motion kept for repetition.
	NavigatingMotion interface{}

	// SelectionArea is a visual selection, restored by gv.
	SelectionArea interface{}
)

// Search is the last search, whose keyword backs the "/ register.
type Search interface {
	Keyword() string
}

// option wraps v, treating a nil handle as unset.
func option[T any](v T, isNil bool) mo.Option[T] {
	if isNil {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// Search returns the last search.
func (m *Manager) Search() mo.Option[Search] {
	return m.search
}

// SetSearch records the last search; the "/ register follows it.
func (m *Manager) SetSearch(s Search) {
	m.search = option(s, s == nil)
}

// LastEdit returns the last edit command.
func (m *Manager) LastEdit() mo.Option[Command] {
	return m.lastEdit
}

// SetLastEdit records the command replayed by dot-repeat.
func (m *Manager) SetLastEdit(cmd Command) {
	m.lastEdit = option(cmd, cmd == nil)
}

// LastInsertion returns the last insert command.
func (m *Manager) LastInsertion() mo.Option[Command] {
	return m.lastInsertion
}

// SetLastInsertion records the last insert command.
func (m *Manager) SetLastInsertion(cmd Command) {
	m.lastInsertion = option(cmd, cmd == nil)
}

// LastSubstitution returns the last substitution.
func (m *Manager) LastSubstitution() mo.Option[SubstitutionOperation] {
	return m.lastSubstitution
}

// SetLastSubstitution records the last substitution.
func (m *Manager) SetLastSubstitution(op SubstitutionOperation) {
	m.lastSubstitution = option(op, op == nil)
}

// LastFindCharMotion returns the last find-character motion.
func (m *Manager) LastFindCharMotion() mo.Option[FindCharMotion] {
	return m.lastFindChar
}

// SetLastFindCharMotion records the last find-character motion.
func (m *Manager) SetLastFindCharMotion(motion FindCharMotion) {
	m.lastFindChar = option(motion, motion == nil)
}

// LastNavigatingMotion returns the last navigating motion.
func (m *Manager) LastNavigatingMotion() mo.Option[NavigatingMotion] {
	return m.lastNavigating
}

// SetLastNavigatingMotion records the last navigating motion.
func (m *Manager) SetLastNavigatingMotion(motion NavigatingMotion) {
	m.lastNavigating = option(motion, motion == nil)
}

// LastActiveSelection returns the last active selection area.
func (m *Manager) LastActiveSelection() mo.Option[SelectionArea] {
	return m.lastSelection
}

// SetLastActiveSelection records the last active selection area.
func (m *Manager) SetLastActiveSelection(area SelectionArea) {
	m.lastSelection = option(area, area == nil)
}

// LastCommand returns the last executed command line.
func (m *Manager) LastCommand() mo.Option[string] {
	return m.lastCommand
}

// SetLastCommand records the last executed command line; the ": register
// follows it.
func (m *Manager) SetLastCommand(line string) {
	m.lastCommand = mo.Some(line)
}

// SetFileName sets the name reported by the "% register.
func (m *Manager) SetFileName(name string) {
	m.fileName = name
}

// SetAlternateFileName sets the name reported by the "# register.
func (m *Manager) SetAlternateFileName(name string) {
	m.alternateFile = name
}
