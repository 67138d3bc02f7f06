package register

import "strings"

// Shape describes how register text is laid out when it is put back into a buffer.
type Shape uint8

const (
	// Characterwise content is inserted inline at the cursor.
	Characterwise Shape = iota

	// Linewise content is inserted as whole lines.
	Linewise

	// Blockwise content is inserted as a rectangular column block.
	Blockwise
)

// String returns the single-letter type used by the :registers listing.
func (s Shape) String() string {
	switch s {
	case Characterwise:
		return "c"
	case Linewise:
		return "l"
	case Blockwise:
		return "b"
	default:
		return "?"
	}
}

// Content is the immutable value held by a register.
// A register write always replaces the whole value.
type Content struct {
	shape Shape
	text  string
}

// Default is the empty content returned by registers that were never written
// and by derived registers with nothing to mirror.
var Default = Content{}

// NewContent creates content with the given shape and text.
func NewContent(shape Shape, text string) Content {
	return Content{shape: shape, text: text}
}

// Chars creates characterwise content.
func Chars(text string) Content {
	return Content{shape: Characterwise, text: text}
}

// Lines creates linewise content.
func Lines(text string) Content {
	return Content{shape: Linewise, text: text}
}

// Block creates blockwise content.
func Block(text string) Content {
	return Content{shape: Blockwise, text: text}
}

// Shape returns the content shape.
func (c Content) Shape() Shape {
	return c.shape
}

// Text returns the stored text.
func (c Content) Text() string {
	return c.text
}

// IsEmpty reports whether the content holds no text.
func (c Content) IsEmpty() bool {
	return c.text == ""
}

// HasLineBreak reports whether the text spans more than one line.
// Both "\n" and a lone "\r" count as line breaks.
func (c Content) HasLineBreak() bool {
	return strings.ContainsAny(c.text, "\r\n")
}

// concat joins appended content onto existing content.
// Linewise wins over the other shapes; joining onto linewise or blockwise
// content starts the new text on its own line.
func concat(old, add Content) Content {
	if old.IsEmpty() {
		return add
	}
	switch {
	case old.shape == Linewise || add.shape == Linewise:
		return Lines(terminated(old.text) + terminated(add.text))
	case old.shape == Blockwise || add.shape == Blockwise:
		return Block(strings.TrimSuffix(old.text, "\n") + "\n" + add.text)
	default:
		return Chars(old.text + add.text)
	}
}

func terminated(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
