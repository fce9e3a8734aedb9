package translate

import (
	"bytes"
	"fmt"
	"strings"
)

const starlarkIndent = "    "

// SourceMap holds, for each line of a Starlark translation, the offset of the instruction
// it was emitted for, or -1.
type SourceMap []int

// Offset returns the instruction offset of a 1-based line.
func (s SourceMap) Offset(line int) (int, bool) {
	if line < 1 || line > len(s) || s[line-1] < 0 {
		return 0, false
	}
	return s[line-1], true
}

// translateStarlark emits top-level code for the host builtins provided by RunStarlark:
// left and right move the cursor with bounds checks, putchar and getchar do the I/O.
func translateStarlark(buf *bytes.Buffer, src []byte, size int, sourceMap *SourceMap) error {
	if err := balance(src); err != nil {
		return err
	}

	header := fmt.Sprintf("# THIS FILE WAS AUTOMATICALLY GENERATED\n\ncells = [0] * %d\nptr = 0\n\n", size)
	buf.WriteString(header)
	var lines SourceMap
	for range strings.Count(header, "\n") {
		lines = append(lines, -1)
	}

	depth := 0
	// the last line written opens a block that has no statement yet
	opened := false
	line := func(offset int, s string) {
		lines = append(lines, offset)
		buf.WriteString(strings.Repeat(starlarkIndent, depth))
		buf.WriteString(s)
		buf.WriteByte('\n')
	}

	for pos, c := range src {
		switch c {

		case '[':
			line(pos, "while cells[ptr] != 0:")
			depth++
			opened = true

		case ']':
			if opened {
				line(pos, "pass")
			}
			depth--
			opened = false

		case '>', '<', '+', '-', '.', ',':
			line(pos, starlarkStatements[c])
			opened = false

		}
	}

	if sourceMap != nil {
		*sourceMap = lines
	}
	return nil
}

var starlarkStatements = map[byte]string{
	'>': "ptr = right(ptr)",
	'<': "ptr = left(ptr)",
	'+': "cells[ptr] = (cells[ptr] + 1) % 256",
	'-': "cells[ptr] = (cells[ptr] + 255) % 256",
	'.': "putchar(cells[ptr])",
	',': "cells[ptr] = getchar(cells[ptr])",
}
