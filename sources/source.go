// Package sources obtains program text and renders diagnostics pointing into it.
package sources

import (
	"bytes"
	"sort"
)

type Source struct {
	Name    string
	Content []byte
	// offsets of line starts
	lines []int
}

func NewSource(name string, content []byte) *Source {
	lines := []int{0}
	for i, c := range content {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Source{
		Name:    name,
		Content: content,
		lines:   lines,
	}
}

// Pos is a 1-based line and column.
type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}

func (s *Source) Pos(offset int) Pos {
	line := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return Pos{
		Source: s,
		Offset: offset,
		Line:   line + 1,
		Column: offset - s.lines[line] + 1,
	}
}

func (s *Source) Line(n int) []byte {
	if n < 1 || n > len(s.lines) {
		return nil
	}
	start := s.lines[n-1]
	end := len(s.Content)
	if n < len(s.lines) {
		end = s.lines[n] - 1
	}
	return bytes.TrimSuffix(s.Content[start:end], []byte("\r"))
}
