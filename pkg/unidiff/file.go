package unidiff

import (
	"fmt"
	"strings"
)

// PatchedFile is one file changed by the diff: the `---`/`+++` header pair
// plus the ordered hunks that follow it.
type PatchedFile struct {
	// SourceFile is the raw source header name, including any `a/` prefix
	// or `/dev/null`.
	SourceFile string
	// TargetFile is the raw target header name, including any `b/` prefix
	// or `/dev/null`.
	TargetFile string
	// SourceTimestamp is the tab-separated timestamp on the source header,
	// empty when absent.
	SourceTimestamp string
	// TargetTimestamp is the tab-separated timestamp on the target header,
	// empty when absent.
	TargetTimestamp string

	hunks []*Hunk
}

// NewPatchedFile returns a file pair with no hunks.
func NewPatchedFile(sourceFile, targetFile string) *PatchedFile {
	return &PatchedFile{SourceFile: sourceFile, TargetFile: targetFile}
}

// Path derives the canonical relative path from the header names.
// Precedence matters: the a/-and-b/ pair wins, then a deleted file's a/
// name, then a created file's b/ name, falling back to the raw source
// name. The order resolves created/deleted/renamed files using header text
// alone, without consulting the filesystem.
func (f *PatchedFile) Path() string {
	switch {
	case strings.HasPrefix(f.SourceFile, "a/") && strings.HasPrefix(f.TargetFile, "b/"):
		return f.SourceFile[2:]
	case strings.HasPrefix(f.SourceFile, "a/") && f.TargetFile == "/dev/null":
		return f.SourceFile[2:]
	case strings.HasPrefix(f.TargetFile, "b/") && f.SourceFile == "/dev/null":
		return f.TargetFile[2:]
	}
	return f.SourceFile
}

// Added returns the total count of added lines across all hunks.
func (f *PatchedFile) Added() int {
	total := 0
	for _, h := range f.hunks {
		total += h.added
	}
	return total
}

// Removed returns the total count of removed lines across all hunks.
func (f *PatchedFile) Removed() int {
	total := 0
	for _, h := range f.hunks {
		total += h.removed
	}
	return total
}

// IsAddedFile reports whether the diff creates this file: a single hunk
// whose declared source start and length are both zero. The answer is
// recomputed from current hunk state on every call, so callers mutating
// hunks never observe a stale classification.
func (f *PatchedFile) IsAddedFile() bool {
	return len(f.hunks) == 1 && f.hunks[0].SourceStart == 0 && f.hunks[0].SourceLength == 0
}

// IsRemovedFile reports whether the diff deletes this file: a single hunk
// whose declared target start and length are both zero.
func (f *PatchedFile) IsRemovedFile() bool {
	return len(f.hunks) == 1 && f.hunks[0].TargetStart == 0 && f.hunks[0].TargetLength == 0
}

// IsModifiedFile reports whether the file is neither created nor deleted.
func (f *PatchedFile) IsModifiedFile() bool {
	return !f.IsAddedFile() && !f.IsRemovedFile()
}

// AppendHunk attaches a hunk to the file.
func (f *PatchedFile) AppendHunk(h *Hunk) {
	f.hunks = append(f.hunks, h)
}

// Len returns the number of hunks.
func (f *PatchedFile) Len() int {
	return len(f.hunks)
}

// IsEmpty reports whether the file has no hunks.
func (f *PatchedFile) IsEmpty() bool {
	return len(f.hunks) == 0
}

// Hunks returns the ordered hunks. The slice is the file's own backing
// storage, so callers may mutate hunks in place.
func (f *PatchedFile) Hunks() []*Hunk {
	return f.hunks
}

// Hunk returns the hunk at index i, or an error when the index is out of
// range.
func (f *PatchedFile) Hunk(i int) (*Hunk, error) {
	if i < 0 || i >= len(f.hunks) {
		return nil, fmt.Errorf("unidiff: hunk index %d out of range [0, %d)", i, len(f.hunks))
	}
	return f.hunks[i], nil
}

// String re-serializes the file pair as its two header lines followed by
// its hunks. Header timestamps are not replayed into the output.
func (f *PatchedFile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", f.SourceFile)
	fmt.Fprintf(&b, "+++ %s\n", f.TargetFile)
	for i, h := range f.hunks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(h.String())
	}
	return b.String()
}
