package register

import (
	"strings"
	"unicode"
)

// Register names with fixed meaning.
const (
	// NameUnnamed is the default register targeted by yank, delete and put.
	NameUnnamed = `"`

	// NameLastInsert mirrors the last inserted text.
	NameLastInsert = "."

	// NameSearch holds the last search keyword.
	NameSearch = "/"

	// NameBlackHole discards writes.
	NameBlackHole = "_"

	// NameCommand holds the last executed command line.
	NameCommand = ":"

	// NameLastYank holds the most recent yank.
	NameLastYank = "0"

	// NameSmallDelete holds the most recent delete that fits on one line.
	NameSmallDelete = "-"

	// NameLastExecuted is the register replayed by @@.
	NameLastExecuted = "@"

	// NameFileName holds the current file name.
	NameFileName = "%"

	// NameAlternateFile holds the alternate file name.
	NameAlternateFile = "#"

	// NameClipboard is the system clipboard.
	NameClipboard = "+"

	// NameSelection is the primary selection.
	NameSelection = "*"
)

// numberedRingSize is the number of registers in the "1".."9" delete history.
const numberedRingSize = 9

// normalizeName maps a requested register name to its storage key.
// The empty name is an alias for the unnamed register.
func normalizeName(name string) string {
	if name == "" {
		return NameUnnamed
	}
	return strings.ToLower(name)
}

// IsAppendName reports whether writes through name append instead of replace.
func IsAppendName(name string) bool {
	return name != "" && normalizeName(name) != name
}

// IsNumbered reports whether name is one of the "1".."9" delete registers.
func IsNumbered(name string) bool {
	return len(name) == 1 && name[0] >= '1' && name[0] <= '9'
}

// IsNamed reports whether name is a single letter register, either case.
func IsNamed(name string) bool {
	r := []rune(name)
	return len(r) == 1 && unicode.IsLetter(r[0])
}

// displayRank orders register names the way :registers lists them.
func displayRank(name string) int {
	switch {
	case name == NameUnnamed:
		return 0
	case len(name) == 1 && name[0] >= '0' && name[0] <= '9':
		return 1 + int(name[0]-'0')
	case len(name) == 1 && name[0] >= 'a' && name[0] <= 'z':
		return 11 + int(name[0]-'a')
	}
	special := []string{
		NameSmallDelete, NameLastInsert, NameCommand, NameFileName,
		NameAlternateFile, NameSearch, NameClipboard, NameSelection, NameLastExecuted,
	}
	for i, s := range special {
		if name == s {
			return 37 + i
		}
	}
	return 100
}
