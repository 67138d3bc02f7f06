package register

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultListWidth is the content column width used by the listing when no
// width is configured.
const DefaultListWidth = 60

// Entry is one row of a register listing.
type Entry struct {
	Name    string
	Content Content
}

// Snapshot returns every non-empty register in :registers order. It reads
// only registers that already exist and creates none.
func (m *Manager) Snapshot() []Entry {
	entries := make([]Entry, 0, len(m.registers))
	for name, r := range m.registers {
		if k, ok := KindOf(r); ok && k == KindBlackHole {
			continue
		}
		c := r.Content()
		if c.IsEmpty() {
			continue
		}
		entries = append(entries, Entry{Name: name, Content: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := displayRank(entries[i].Name), displayRank(entries[j].Name)
		if ri != rj {
			return ri < rj
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// WriteListing renders entries as a :registers table. Content is shown on
// one line with control characters in caret notation and cut to width
// display cells.
func WriteListing(w io.Writer, entries []Entry, width int) error {
	if width <= 0 {
		width = DefaultListWidth
	}
	if _, err := fmt.Fprintln(w, "Type Name Content"); err != nil {
		return err
	}
	for _, e := range entries {
		text := runewidth.Truncate(caretNotation(e.Content.Text()), width, "")
		if _, err := fmt.Fprintf(w, "  %s  %-4s %s\n", e.Content.Shape(), `"`+e.Name, text); err != nil {
			return err
		}
	}
	return nil
}

// caretNotation shows ASCII control characters as ^X, the way Vim prints
// register content.
func caretNotation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x20:
			b.WriteByte('^')
			b.WriteRune(r + '@')
		case r == 0x7f:
			b.WriteString("^?")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
