package unidiff

import (
	"fmt"
	"strings"
)

// Hunk is one contiguous change block, with the extents declared by its
// `@@ -start,length +start,length @@` header.
type Hunk struct {
	// SourceStart is the starting line number in the source file.
	SourceStart int
	// SourceLength is the declared number of source lines covered.
	SourceLength int
	// TargetStart is the starting line number in the target file.
	TargetStart int
	// TargetLength is the declared number of target lines covered.
	TargetLength int
	// SectionHeader is the trailing context on the header line, typically
	// the enclosing function name.
	SectionHeader string

	added   int
	removed int
	lines   []Line
}

// NewHunk returns an empty hunk with the given declared extents.
func NewHunk(sourceStart, sourceLength, targetStart, targetLength int, sectionHeader string) *Hunk {
	return &Hunk{
		SourceStart:   sourceStart,
		SourceLength:  sourceLength,
		TargetStart:   targetStart,
		TargetLength:  targetLength,
		SectionHeader: sectionHeader,
	}
}

// Append adds a line to the hunk, keeping the added/removed counters in
// sync. Lines are expected in header-declared order; the hunk does not
// enforce ordering after construction.
func (h *Hunk) Append(line Line) {
	switch line.Type {
	case LineAdded:
		h.added++
	case LineRemoved:
		h.removed++
	}
	h.lines = append(h.lines, line)
}

// Added returns the count of added lines appended so far.
func (h *Hunk) Added() int {
	return h.added
}

// Removed returns the count of removed lines appended so far.
func (h *Hunk) Removed() int {
	return h.removed
}

// Len returns the number of lines in the hunk.
func (h *Hunk) Len() int {
	return len(h.lines)
}

// IsEmpty reports whether the hunk has no lines.
func (h *Hunk) IsEmpty() bool {
	return len(h.lines) == 0
}

// Lines returns the hunk body. The slice is the hunk's own backing storage,
// so callers may mutate individual lines in place.
func (h *Hunk) Lines() []Line {
	return h.lines
}

// Line returns a pointer to the line at index i, or an error when the index
// is out of range.
func (h *Hunk) Line(i int) (*Line, error) {
	if i < 0 || i >= len(h.lines) {
		return nil, fmt.Errorf("unidiff: line index %d out of range [0, %d)", i, len(h.lines))
	}
	return &h.lines[i], nil
}

// SourceLines returns copies of the lines present in the source file
// version (context and removed lines).
func (h *Hunk) SourceLines() []Line {
	out := make([]Line, 0, len(h.lines))
	for _, line := range h.lines {
		if line.IsContext() || line.IsRemoved() {
			out = append(out, line)
		}
	}
	return out
}

// TargetLines returns copies of the lines present in the target file
// version (context and added lines).
func (h *Hunk) TargetLines() []Line {
	out := make([]Line, 0, len(h.lines))
	for _, line := range h.lines {
		if line.IsContext() || line.IsAdded() {
			out = append(out, line)
		}
	}
	return out
}

// String re-serializes the hunk as its header line joined with its body
// lines.
func (h *Hunk) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@ %s\n", h.SourceStart, h.SourceLength, h.TargetStart, h.TargetLength, h.SectionHeader)
	for i, line := range h.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line.String())
	}
	return b.String()
}
