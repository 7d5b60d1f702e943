package indenter

import (
	"strings"
)

// indenter incrementally builds an indented multi-line rendering of a
// nested structure.
type indenter struct {
	buf   *strings.Builder
	level int
}

func Indenter() indenter {
	return indenter{buf: new(strings.Builder)}
}

func (i indenter) indent() string {
	return strings.Repeat("  ", i.level+1)
}

// Start opens a nesting level with the given delimiter.
func (i indenter) Start(str string) indenter {
	i.buf.WriteString(str)
	return i
}

func (i indenter) NestStrings(strs ...string) indenter {
	return i.NestStringsSep("", strs...)
}

// NestStringsSep renders the given strings one level deeper, separated
// by sep. A single string is rendered inline.
func (i indenter) NestStringsSep(sep string, strs ...string) indenter {
	if len(strs) == 0 {
		return i
	}
	if len(strs) == 1 {
		i.buf.WriteString(strs[0])
		return i
	}

	for j, str := range strs {
		i.buf.WriteString("\n" + i.indent() + str)
		if j < len(strs)-1 {
			i.buf.WriteString(sep)
		}
	}
	i.buf.WriteString("\n")
	return i
}

// End closes the nesting level and yields the accumulated rendering.
func (i indenter) End(str string) string {
	i.buf.WriteString(strings.Repeat("  ", i.level) + str)
	return i.buf.String()
}
