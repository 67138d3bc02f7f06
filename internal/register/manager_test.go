package register

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyword string

func (k keyword) Keyword() string { return string(k) }

type stubClipboard struct {
	text     string
	readErr  error
	writeErr error
}

func (c *stubClipboard) Read() (string, error) { return c.text, c.readErr }
func (c *stubClipboard) Write(text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.text = text
	return nil
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debug(msg string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

func TestNewManagerFixedRegisters(t *testing.T) {
	m := NewManager()

	for _, name := range []string{NameUnnamed, NameLastInsert, NameSearch, NameBlackHole, NameCommand, NameFileName, NameAlternateFile} {
		assert.True(t, m.Has(name), "register %q", name)
	}
	assert.False(t, m.Has("a"))
	assert.False(t, m.Has(NameClipboard))
	assert.Equal(t, "/", m.CurrentWorkingDirectory())
	assert.True(t, m.IsDefaultActive())
	assert.Same(t, m.Unnamed(), m.Default())
}

func TestGetOrCreateEmptyNameIsUnnamed(t *testing.T) {
	m := NewManager()
	assert.Same(t, m.Unnamed(), m.GetOrCreate(""))
	assert.Same(t, m.Unnamed(), m.GetOrCreate(`"`))
}

func TestGetOrCreateLazilyCreatesNamed(t *testing.T) {
	m := NewManager()

	r := m.GetOrCreate("q")
	require.True(t, m.Has("q"))
	assert.Equal(t, "q", r.Name())
	assert.Equal(t, Default, r.Content())
	assert.Same(t, r, m.GetOrCreate("q"))
}

func TestGetOrCreateSharedStorage(t *testing.T) {
	m := NewManager()

	m.GetOrCreate("a").SetContent(Chars("one"), false)
	assert.Equal(t, "one", m.GetOrCreate("a").Content().Text())
	assert.Equal(t, "one", m.GetOrCreate("A").Content().Text())
}

func TestAppendRegister(t *testing.T) {
	m := NewManager()

	Store(m.GetOrCreate("a"), Chars("foo"))
	Store(m.GetOrCreate("A"), Chars("bar"))

	assert.Equal(t, Chars("foobar"), m.GetOrCreate("a").Content())
	assert.Equal(t, Chars("foobar"), m.Unnamed().Content())
	assert.False(t, m.Has("A"), "append view must not get its own storage")
}

func TestAppendRegisterFreshWrapperEachCall(t *testing.T) {
	m := NewManager()

	first := m.GetOrCreate("B")
	second := m.GetOrCreate("B")
	assert.NotSame(t, first, second)
	assert.Equal(t, "B", first.Name())

	first.SetContent(Lines("x\n"), false)
	second.SetContent(Lines("y\n"), false)
	assert.Equal(t, Lines("x\ny\n"), m.GetOrCreate("b").Content())
}

func TestNamedWriteCopiesToUnnamed(t *testing.T) {
	m := NewManager()

	m.GetOrCreate("c").SetContent(Chars("kept"), false)
	assert.Equal(t, Default, m.Unnamed().Content())

	m.GetOrCreate("c").SetContent(Chars("mirrored"), true)
	assert.Equal(t, Chars("mirrored"), m.Unnamed().Content())
}

func TestBlackHole(t *testing.T) {
	m := NewManager()
	Store(m.Unnamed(), Chars("keep me"))

	m.SetActive(NameBlackHole)
	require.False(t, m.IsDefaultActive())

	m.Active().SetContent(Lines("gone\n"), true)

	assert.Equal(t, Default, m.GetOrCreate(NameBlackHole).Content())
	assert.True(t, m.IsDefaultActive())
	assert.Equal(t, Chars("keep me"), m.Default().Content())
}

func TestReadOnlyRegistersIgnoreWrites(t *testing.T) {
	m := NewManager()
	m.SetSearch(keyword("needle"))
	m.SetLastCommand("w")
	m.LastEditRegister().SetContent(Chars("typed"), false)

	for _, name := range []string{NameSearch, NameCommand, NameLastInsert, NameFileName, NameAlternateFile} {
		t.Run(name, func(t *testing.T) {
			r := m.GetOrCreate(name)
			before := r.Content()
			r.SetContent(Chars("overwrite"), true)
			assert.Equal(t, before, r.Content())
		})
	}
	assert.Equal(t, Default, m.Unnamed().Content())
}

func TestLastInsertionMirrorsLastEditRegister(t *testing.T) {
	m := NewManager()
	assert.Equal(t, Default, m.GetOrCreate(NameLastInsert).Content())

	m.ActivateLastEdit()
	require.Same(t, m.LastEditRegister(), m.Active())
	m.Active().SetContent(Chars("inserted"), false)

	assert.Equal(t, Chars("inserted"), m.GetOrCreate(NameLastInsert).Content())
	assert.False(t, m.IsDefaultActive())

	m.ActivateDefault()
	assert.True(t, m.IsDefaultActive())
}

func TestSearchRegister(t *testing.T) {
	m := NewManager()
	assert.Equal(t, Default, m.GetOrCreate(NameSearch).Content())
	assert.True(t, m.Search().IsAbsent())

	m.SetSearch(keyword("foo"))
	assert.Equal(t, "foo", m.GetOrCreate(NameSearch).Content().Text())
	assert.Equal(t, Characterwise, m.GetOrCreate(NameSearch).Content().Shape())

	m.SetSearch(nil)
	assert.Equal(t, Default, m.GetOrCreate(NameSearch).Content())
}

func TestCommandRegister(t *testing.T) {
	m := NewManager()
	assert.Equal(t, Default, m.GetOrCreate(NameCommand).Content())

	m.SetLastCommand(":%s/a/b/")
	assert.Equal(t, ":%s/a/b/", m.GetOrCreate(NameCommand).Content().Text())
	line, ok := m.LastCommand().Get()
	require.True(t, ok)
	assert.Equal(t, ":%s/a/b/", line)
}

func TestFileNameRegisters(t *testing.T) {
	m := NewManager()
	assert.Equal(t, Default, m.GetOrCreate(NameFileName).Content())

	m.SetFileName("main.go")
	m.SetAlternateFileName("doc.go")
	assert.Equal(t, "main.go", m.GetOrCreate(NameFileName).Content().Text())
	assert.Equal(t, "doc.go", m.GetOrCreate(NameAlternateFile).Content().Text())
}

func TestSetLastYank(t *testing.T) {
	m := NewManager()
	m.SetActive("x")

	m.SetLastYank(Lines("yanked\n"))

	assert.Equal(t, Lines("yanked\n"), m.GetOrCreate("0").Content())
	assert.Equal(t, Lines("yanked\n"), m.Unnamed().Content())
	assert.Equal(t, Default, m.GetOrCreate("x").Content())
}

func TestSetLastDeleteSmall(t *testing.T) {
	m := NewManager()
	Store(m.GetOrCreate("1"), Lines("one\n"))
	Store(m.GetOrCreate("2"), Lines("two\n"))

	m.SetLastDelete(Chars("word"))

	assert.Equal(t, Chars("word"), m.GetOrCreate(NameSmallDelete).Content())
	assert.Equal(t, Lines("one\n"), m.GetOrCreate("1").Content())
	assert.Equal(t, Lines("two\n"), m.GetOrCreate("2").Content())
	assert.False(t, m.Has("3"))
}

func TestSetLastDeleteShiftsRing(t *testing.T) {
	m := NewManager()
	Store(m.GetOrCreate("1"), Chars("a"))
	Store(m.GetOrCreate("2"), Chars("b"))

	m.SetLastDelete(Lines("c\n"))

	assert.Equal(t, "c\n", m.GetOrCreate("1").Content().Text())
	assert.Equal(t, "a", m.GetOrCreate("2").Content().Text())
	assert.Equal(t, "b", m.GetOrCreate("3").Content().Text())
	assert.False(t, m.Has("4"))
	assert.False(t, m.Has(NameSmallDelete))
	assert.Equal(t, Lines("c\n"), m.Unnamed().Content())
}

func TestSetLastDeleteDropsNinth(t *testing.T) {
	m := NewManager()
	for i := 1; i <= 10; i++ {
		m.SetLastDelete(Lines(fmt.Sprintf("d%d\n", i)))
	}

	for n := 1; n <= 9; n++ {
		want := fmt.Sprintf("d%d\n", 11-n)
		assert.Equal(t, want, m.GetOrCreate(fmt.Sprint(n)).Content().Text(), "register %d", n)
	}
	assert.False(t, m.Has("10"))
}

func TestSetLastNamedRegister(t *testing.T) {
	m := NewManager()
	q := m.GetOrCreate("q")
	Store(q, Chars("macro"))

	m.SetLastNamedRegister(q)

	assert.Same(t, q, m.GetOrCreate(NameLastExecuted))
	assert.Equal(t, "macro", m.GetOrCreate(NameLastExecuted).Content().Text())
}

func TestSetActiveRegisterDirect(t *testing.T) {
	m := NewManager()
	r := m.GetOrCreate("z")

	m.SetActiveRegister(r)
	assert.Same(t, r, m.Active())
	assert.False(t, m.IsDefaultActive())
}

func TestLastActionSlots(t *testing.T) {
	m := NewManager()

	assert.True(t, m.LastEdit().IsAbsent())
	assert.True(t, m.LastInsertion().IsAbsent())
	assert.True(t, m.LastSubstitution().IsAbsent())
	assert.True(t, m.LastFindCharMotion().IsAbsent())
	assert.True(t, m.LastNavigatingMotion().IsAbsent())
	assert.True(t, m.LastActiveSelection().IsAbsent())
	assert.True(t, m.LastCommand().IsAbsent())

	m.SetLastEdit("dw")
	m.SetLastInsertion("ihello")
	m.SetLastSubstitution("s/a/b/")
	m.SetLastFindCharMotion("fx")
	m.SetLastNavigatingMotion("}")
	m.SetLastActiveSelection([2]int{1, 4})

	assert.Equal(t, "dw", m.LastEdit().MustGet())
	assert.Equal(t, "ihello", m.LastInsertion().MustGet())
	assert.Equal(t, "s/a/b/", m.LastSubstitution().MustGet())
	assert.Equal(t, "fx", m.LastFindCharMotion().MustGet())
	assert.Equal(t, "}", m.LastNavigatingMotion().MustGet())
	assert.Equal(t, [2]int{1, 4}, m.LastActiveSelection().MustGet())

	m.SetLastEdit(nil)
	assert.True(t, m.LastEdit().IsAbsent())
}

func TestNames(t *testing.T) {
	m := NewManager()
	m.GetOrCreate("b")
	m.GetOrCreate("A")

	names := m.Names()
	assert.Contains(t, names, "a")
	assert.Contains(t, names, "b")
	assert.NotContains(t, names, "A")
	assert.IsIncreasing(t, names)
}

func TestClipboardRegisters(t *testing.T) {
	cb := &stubClipboard{text: "from system"}
	m := NewManager(WithClipboard(cb))

	plus := m.GetOrCreate(NameClipboard)
	kind, ok := KindOf(plus)
	require.True(t, ok)
	assert.Equal(t, KindClipboard, kind)
	assert.Equal(t, Chars("from system"), plus.Content())

	Store(plus, Lines("line\n"))
	assert.Equal(t, "line\n", cb.text)
	assert.Equal(t, Lines("line\n"), m.GetOrCreate(NameSelection).Content())
	assert.Equal(t, Lines("line\n"), m.Unnamed().Content())
}

func TestClipboardFailuresDegrade(t *testing.T) {
	log := &recordingLogger{}
	cb := &stubClipboard{readErr: errors.New("no display"), writeErr: errors.New("no display")}
	m := NewManager(WithClipboard(cb), WithLogger(log))

	plus := m.GetOrCreate(NameClipboard)
	assert.Equal(t, Default, plus.Content())

	Store(plus, Chars("lost"))
	assert.Equal(t, Default, m.Unnamed().Content())
	assert.NotEmpty(t, log.lines)
}

func TestWithoutClipboardPlusIsNamed(t *testing.T) {
	m := NewManager()
	plus := m.GetOrCreate(NameClipboard)

	_, special := KindOf(plus)
	assert.False(t, special)
	Store(plus, Chars("local"))
	assert.Equal(t, Chars("local"), m.GetOrCreate(NameClipboard).Content())
}

func TestWithDefaultRegister(t *testing.T) {
	cb := &stubClipboard{}
	m := NewManager(WithClipboard(cb), WithDefaultRegister(NameClipboard))

	assert.Equal(t, NameClipboard, m.Default().Name())
	assert.True(t, m.IsDefaultActive())

	m.SetActive(NameBlackHole)
	m.Active().SetContent(Chars("x"), true)
	assert.Same(t, m.Default(), m.Active())

	Store(m.Active(), Chars("to clipboard"))
	assert.Equal(t, "to clipboard", cb.text)
}

func TestKindOf(t *testing.T) {
	m := NewManager()

	kind, ok := KindOf(m.GetOrCreate(NameBlackHole))
	require.True(t, ok)
	assert.Equal(t, KindBlackHole, kind)
	assert.True(t, kind.ReadOnly())
	assert.Equal(t, "black-hole", kind.String())

	_, ok = KindOf(m.GetOrCreate("a"))
	assert.False(t, ok)
	_, ok = KindOf(m.GetOrCreate("A"))
	assert.False(t, ok)
	assert.False(t, KindClipboard.ReadOnly())
}

func TestLoggerReceivesDebug(t *testing.T) {
	log := &recordingLogger{}
	m := NewManager(WithLogger(log))

	m.GetOrCreate("k")
	m.SetCurrentWorkingDirectory("tmp")

	assert.Contains(t, log.lines, "register k: created")
	assert.Contains(t, log.lines, "cwd: /tmp")
}

func TestNameHelpers(t *testing.T) {
	assert.True(t, IsAppendName("A"))
	assert.False(t, IsAppendName("a"))
	assert.False(t, IsAppendName(""))
	assert.False(t, IsAppendName("_"))
	assert.True(t, IsNumbered("1"))
	assert.True(t, IsNumbered("9"))
	assert.False(t, IsNumbered("0"))
	assert.False(t, IsNumbered("10"))
	assert.True(t, IsNamed("z"))
	assert.True(t, IsNamed("Z"))
	assert.False(t, IsNamed("-"))
}
