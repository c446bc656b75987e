package unidiff

// LineType classifies a single hunk body line.
type LineType int

// Line types.
const (
	// LineContext is a line unchanged between the two file versions.
	LineContext LineType = iota
	// LineAdded is a line present only in the target version.
	LineAdded
	// LineRemoved is a line present only in the source version.
	LineRemoved
	// LineEmpty is the `\ No newline at end of file` marker line. It is
	// diff annotation, not file content, and carries no line numbers.
	LineEmpty
)

// Marker returns the one-character prefix used when re-serializing a line
// of this type. The LineEmpty marker is a literal newline, which does not
// reproduce the original no-newline annotation text; re-serialization is a
// best-effort reconstruction, not a byte-identical round trip.
func (t LineType) Marker() string {
	switch t {
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	case LineEmpty:
		return "\n"
	}
	return " "
}

// Line is one line of a hunk body.
type Line struct {
	// SourceLineNo is the position in the source file version, 0 for pure
	// additions which have no source position.
	SourceLineNo int
	// TargetLineNo is the position in the target file version, 0 for pure
	// removals which have no target position.
	TargetLineNo int
	// DiffLineNo is the 1-based position within the raw diff text, kept for
	// diagnostics.
	DiffLineNo int
	// Type is the classification of the line.
	Type LineType
	// Value is the line content without its leading marker character.
	Value string
}

// IsAdded reports whether the line exists only in the target version.
func (l Line) IsAdded() bool {
	return l.Type == LineAdded
}

// IsRemoved reports whether the line exists only in the source version.
func (l Line) IsRemoved() bool {
	return l.Type == LineRemoved
}

// IsContext reports whether the line is unchanged between versions.
func (l Line) IsContext() bool {
	return l.Type == LineContext
}

// String re-serializes the line as its type marker followed by its value.
func (l Line) String() string {
	return l.Type.Marker() + l.Value
}
