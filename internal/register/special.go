package register

import "strings"

// Kind identifies a register whose content is derived from manager state
// or an external source instead of being stored.
type Kind uint8

const (
	// KindLastInsertion mirrors the last-edit register.
	KindLastInsertion Kind = iota + 1

	// KindSearch mirrors the last search keyword.
	KindSearch

	// KindBlackHole reads empty and re-activates the default register on write.
	KindBlackHole

	// KindCommand mirrors the last executed command line.
	KindCommand

	// KindFileName mirrors the current file name.
	KindFileName

	// KindAlternateFile mirrors the alternate file name.
	KindAlternateFile

	// KindClipboard reads and writes the system clipboard.
	KindClipboard

	// KindSelection reads and writes the primary selection.
	KindSelection
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLastInsertion:
		return "last-insertion"
	case KindSearch:
		return "search"
	case KindBlackHole:
		return "black-hole"
	case KindCommand:
		return "command"
	case KindFileName:
		return "file-name"
	case KindAlternateFile:
		return "alternate-file"
	case KindClipboard:
		return "clipboard"
	case KindSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// ReadOnly reports whether writes to registers of this kind are ignored.
// The black-hole register counts as read-only: it never stores.
func (k Kind) ReadOnly() bool {
	return k != KindClipboard && k != KindSelection
}

// KindOf returns the kind of a derived register. Stored registers and
// append views report false.
func KindOf(r Register) (Kind, bool) {
	s, ok := r.(*specialRegister)
	if !ok {
		return 0, false
	}
	return s.kind, true
}

// specialRegister derives its content from the owning manager.
// All kind-specific behavior goes through the two switches below.
type specialRegister struct {
	name string
	kind Kind
	m    *Manager
}

func (r *specialRegister) Name() string {
	return r.name
}

func (r *specialRegister) Content() Content {
	m := r.m
	switch r.kind {
	case KindLastInsertion:
		return m.lastEditRegister.Content()
	case KindSearch:
		if s, ok := m.search.Get(); ok {
			return Chars(s.Keyword())
		}
	case KindCommand:
		if cmd, ok := m.lastCommand.Get(); ok {
			return Chars(cmd)
		}
	case KindFileName:
		if m.fileName != "" {
			return Chars(m.fileName)
		}
	case KindAlternateFile:
		if m.alternateFile != "" {
			return Chars(m.alternateFile)
		}
	case KindClipboard, KindSelection:
		text, err := m.clipboard.Read()
		if err != nil {
			m.logger.Debug("register %s: clipboard read failed: %v", r.name, err)
			return Default
		}
		if strings.HasSuffix(text, "\n") {
			return Lines(text)
		}
		return Chars(text)
	}
	return Default
}

func (r *specialRegister) SetContent(c Content, copyToUnnamed bool) {
	m := r.m
	switch r.kind {
	case KindBlackHole:
		// Leaving "_ active would make the next plain put read nothing.
		m.ActivateDefault()
		m.logger.Debug("register _: write discarded, default register re-activated")
	case KindClipboard, KindSelection:
		if err := m.clipboard.Write(c.Text()); err != nil {
			m.logger.Debug("register %s: clipboard write failed: %v", r.name, err)
			return
		}
		if copyToUnnamed {
			m.unnamed.SetContent(c, false)
		}
	default:
		m.logger.Debug("register %s: read-only (%s), write ignored", r.name, r.kind)
	}
}
