package register

import (
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func lowerName() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z]`)
}

func anyContent() *rapid.Generator[Content] {
	return rapid.Custom(func(t *rapid.T) Content {
		shape := Shape(rapid.IntRange(0, 2).Draw(t, "shape"))
		text := rapid.StringMatching(`[a-z \n]{0,12}`).Draw(t, "text")
		return NewContent(shape, text)
	})
}

// Views of the same name always see the same storage.
func TestProperty_SameNameSharesStorage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := NewManager()
		name := lowerName().Draw(t, "name")
		c := anyContent().Draw(t, "content")

		m.GetOrCreate(name).SetContent(c, rapid.Bool().Draw(t, "copy"))

		if got := m.GetOrCreate(name).Content(); got != c {
			t.Fatalf("lower view: got %v, want %v", got, c)
		}
		if got := m.GetOrCreate(strings.ToUpper(name)).Content(); got != c {
			t.Fatalf("upper view: got %v, want %v", got, c)
		}
	})
}

// Characterwise appends concatenate in order.
func TestProperty_AppendConcatenates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := NewManager()
		name := lowerName().Draw(t, "name")
		parts := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,5}`), 1, 6).Draw(t, "parts")

		Store(m.GetOrCreate(name), Chars(parts[0]))
		for _, p := range parts[1:] {
			Store(m.GetOrCreate(strings.ToUpper(name)), Chars(p))
		}

		want := strings.Join(parts, "")
		if got := m.GetOrCreate(name).Content().Text(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})
}

// The black hole never stores, and always hands control back to default.
func TestProperty_BlackHoleAbsorbs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := NewManager()
		before := anyContent().Draw(t, "before")
		Store(m.Unnamed(), before)
		m.SetActive(lowerName().Draw(t, "name"))

		m.GetOrCreate(NameBlackHole).SetContent(anyContent().Draw(t, "discarded"), true)

		if got := m.GetOrCreate(NameBlackHole).Content(); got != Default {
			t.Fatalf("black hole content = %v", got)
		}
		if !m.IsDefaultActive() {
			t.Fatal("default register not active after black-hole write")
		}
		if got := m.Unnamed().Content(); got != before {
			t.Fatalf("unnamed changed: got %v, want %v", got, before)
		}
	})
}

// The delete ring mirrors a bounded history of multi-line deletes, and
// "0 always holds the last yank, whatever is interleaved.
func TestProperty_YankAndDeleteHistory(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := NewManager()
		var history []Content
		var lastYank, lastSmall Content
		yanked, smallDeleted := false, false

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			c := anyContent().Draw(t, "content")
			if rapid.IntRange(0, 2).Draw(t, "op") == 0 {
				m.SetActive(lowerName().Draw(t, "active"))
				m.SetLastYank(c)
				lastYank, yanked = c, true
				continue
			}
			m.SetLastDelete(c)
			if c.HasLineBreak() {
				history = append([]Content{c}, history...)
				if len(history) > numberedRingSize {
					history = history[:numberedRingSize]
				}
			} else {
				lastSmall, smallDeleted = c, true
			}
		}

		for i, want := range history {
			name := strconv.Itoa(i + 1)
			if got := m.GetOrCreate(name).Content(); got != want {
				t.Fatalf("register %s = %v, want %v", name, got, want)
			}
		}
		for i := len(history) + 1; i <= numberedRingSize; i++ {
			if m.Has(strconv.Itoa(i)) {
				t.Fatalf("register %d exists with only %d deletes", i, len(history))
			}
		}
		if yanked {
			if got := m.GetOrCreate(NameLastYank).Content(); got != lastYank {
				t.Fatalf("register 0 = %v, want %v", got, lastYank)
			}
		}
		if smallDeleted {
			if got := m.GetOrCreate(NameSmallDelete).Content(); got != lastSmall {
				t.Fatalf("register - = %v, want %v", got, lastSmall)
			}
		}
	})
}

// Resolved directories stay absolute and never contain "..".
func TestProperty_ResolvePathStaysRooted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := NewManager()
		steps := rapid.SliceOfN(rapid.SampledFrom([]string{"..", "a", "b/c", "../x", "/", "/etc", "d/..", "../../.."}), 1, 10).Draw(t, "steps")
		for _, s := range steps {
			m.SetCurrentWorkingDirectory(s)
			cwd := m.CurrentWorkingDirectory()
			if !strings.HasPrefix(cwd, "/") {
				t.Fatalf("cwd %q is not absolute after %q", cwd, s)
			}
			for _, seg := range strings.Split(cwd, "/") {
				if seg == ".." {
					t.Fatalf("cwd %q kept a .. segment", cwd)
				}
			}
		}
	})
}
