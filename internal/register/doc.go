// Package register implements Vim-style registers for a modal editor.
//
// A Manager owns every register of one editing session together with the
// state that repeat commands read back: the last edit, insertion,
// substitution, search, find-character motion, navigating motion, selection,
// executed command line, and a virtual working directory.
//
// # Register Names
//
//	""  or "   unnamed, the default target of yank, delete and put
//	0          last yank
//	1-9        multi-line delete history, most recent in 1
//	-          last delete that fit on one line
//	a-z        named registers, created on first use
//	A-Z        append view of the matching lower-case register
//	.          last inserted text (read-only)
//	/          last search keyword (read-only)
//	:          last command line (read-only)
//	%  #       current and alternate file name (read-only)
//	_          black hole: reads empty, discards writes
//	+  *       system clipboard and selection, when a Clipboard is configured
//	@          register replayed by @@
//
// # Failure Model
//
// Nothing in this package returns an error. Unknown names create registers,
// writes to read-only registers are dropped, and clipboard failures read as
// empty content.
//
// # Usage
//
//	m := register.NewManager()
//	m.SetLastDelete(register.Lines("first\n"))
//	m.GetOrCreate("A").SetContent(register.Chars("more"), true)
//	text := m.GetOrCreate("1").Content().Text()
package register
