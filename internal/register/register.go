package register

// Register is a named slot holding one Content value.
//
// The set of implementations is closed: simpleRegister for stored content,
// specialRegister for registers derived from manager state, and
// appendRegister for the upper-case view of a named register.
type Register interface {
	// Name returns the name the register was resolved under.
	Name() string

	// Content returns the current content, or Default when empty.
	Content() Content

	// SetContent replaces the content. When copyToUnnamed is set, stored
	// registers mirror the write into the unnamed register.
	SetContent(c Content, copyToUnnamed bool)
}

// Store writes c into r and mirrors it into the unnamed register,
// the way an ordinary yank or delete into a named register does.
func Store(r Register, c Content) {
	r.SetContent(c, true)
}

// simpleRegister stores its own content. Registers created on lookup are
// linked to the unnamed register so that writes can be mirrored there.
type simpleRegister struct {
	name    string
	content Content
	unnamed *simpleRegister
}

func newSimpleRegister(name string, unnamed *simpleRegister) *simpleRegister {
	return &simpleRegister{name: name, content: Default, unnamed: unnamed}
}

func (r *simpleRegister) Name() string {
	return r.name
}

func (r *simpleRegister) Content() Content {
	return r.content
}

func (r *simpleRegister) SetContent(c Content, copyToUnnamed bool) {
	r.content = c
	if copyToUnnamed && r.unnamed != nil && r.unnamed != r {
		r.unnamed.SetContent(c, false)
	}
}

// appendRegister is the upper-case view of a named register: reads see the
// underlying storage and writes concatenate onto it.
type appendRegister struct {
	name  string
	inner Register
}

func (r *appendRegister) Name() string {
	return r.name
}

func (r *appendRegister) Content() Content {
	return r.inner.Content()
}

func (r *appendRegister) SetContent(c Content, copyToUnnamed bool) {
	r.inner.SetContent(concat(r.inner.Content(), c), copyToUnnamed)
}
