package register

import (
	"slices"
	"strings"
)

const pathSeparator = "/"

// ResolvePath applies dir to the virtual directory cwd.
//
// An absolute dir replaces cwd; a relative one is appended to it. When the
// result has a ".." segment it is collapsed: each ".." drops the preceding
// segment and never climbs above the root. Nothing here touches the real
// filesystem.
func ResolvePath(cwd, dir string) string {
	var p string
	if strings.HasPrefix(dir, pathSeparator) {
		p = dir
	} else {
		p = cwd
		if !strings.HasSuffix(p, pathSeparator) {
			p += pathSeparator
		}
		p += dir
	}

	segments := strings.Split(p, pathSeparator)
	if !slices.Contains(segments, "..") {
		return p
	}

	stack := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg != ".." {
			stack = append(stack, seg)
			continue
		}
		// The leading empty segment stands for the root.
		if len(stack) == 0 || (len(stack) == 1 && stack[0] == "") {
			continue
		}
		stack = stack[:len(stack)-1]
	}

	joined := strings.Join(stack, pathSeparator)
	if joined == "" {
		return pathSeparator
	}
	return joined
}

// CurrentWorkingDirectory returns the virtual working directory.
func (m *Manager) CurrentWorkingDirectory() string {
	return m.cwd
}

// SetCurrentWorkingDirectory changes the virtual working directory.
func (m *Manager) SetCurrentWorkingDirectory(dir string) {
	m.cwd = ResolvePath(m.cwd, dir)
	m.logger.Debug("cwd: %s", m.cwd)
}
