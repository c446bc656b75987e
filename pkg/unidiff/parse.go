package unidiff

import (
	"strconv"
	"strings"
)

const (
	sourceHeaderPrefix = "--- "
	targetHeaderPrefix = "+++ "

	noNewlineMarker = `\ No newline at end of file`
)

// Parse scans diff text line by line and appends the files it finds to the
// set. Calling Parse again on a non-empty set accumulates further files;
// callers wanting isolation must start from a fresh PatchSet. On error the
// files finalized before the failure remain in the set, without rollback.
func (p *PatchSet) Parse(input string) error {
	lines := splitLines(input)

	var (
		current         *PatchedFile
		sourceFile      string
		sourceTimestamp string
	)

	for i, line := range lines {
		// Source header: finalize any open file pair and remember the
		// source name for the target header that should follow.
		if name, timestamp, ok := matchFileHeader(line, sourceHeaderPrefix); ok {
			sourceFile, sourceTimestamp = name, timestamp
			if current != nil {
				p.files = append(p.files, current)
				current = nil
			}
			continue
		}

		// Target header: opens a new file pair from the recorded source.
		if name, timestamp, ok := matchFileHeader(line, targetHeaderPrefix); ok {
			if current != nil {
				return &ParseError{Code: CodeTargetWithoutSource, Line: line}
			}
			current = &PatchedFile{
				SourceFile:      sourceFile,
				TargetFile:      name,
				SourceTimestamp: sourceTimestamp,
				TargetTimestamp: timestamp,
			}
			continue
		}

		// Hunk header: hand the rest of the document to the hunk builder.
		// Hunk extents are length-prefixed, not delimiter-terminated, so
		// only the builder knows how many lines the hunk spans.
		if ext, section, ok := matchHunkHeader(line); ok {
			if current == nil {
				return &ParseError{Code: CodeUnexpectedHunk, Line: line}
			}
			hunk, err := buildHunk(ext, section, lines[i+1:], i+1)
			if err != nil {
				return err
			}
			current.hunks = append(current.hunks, hunk)
			continue
		}

		// Anything else (index lines, mode lines, blank separators) only
		// matters inside a hunk body; the top level skips it.
	}

	if current != nil {
		p.files = append(p.files, current)
	}
	return nil
}

// buildHunk reconstructs one hunk from its header extents and the
// remaining document lines. base is the 0-based document index of the
// first line after the header.
func buildHunk(ext hunkExtents, section string, tail []string, base int) (*Hunk, error) {
	hunk := NewHunk(ext.sourceStart, ext.sourceLength, ext.targetStart, ext.targetLength, section)

	sourceLineNo := ext.sourceStart
	targetLineNo := ext.targetStart
	expectedSourceEnd := ext.sourceStart + ext.sourceLength
	expectedTargetEnd := ext.targetStart + ext.targetLength

	for offset, raw := range tail {
		lineType, value, ok := classifyBodyLine(raw)
		if !ok {
			return nil, &ParseError{Code: CodeExpectLine, Line: raw}
		}

		line := Line{DiffLineNo: base + offset + 1, Type: lineType, Value: value}
		switch lineType {
		case LineAdded:
			line.TargetLineNo = targetLineNo
			targetLineNo++
		case LineRemoved:
			line.SourceLineNo = sourceLineNo
			sourceLineNo++
		case LineContext:
			line.SourceLineNo = sourceLineNo
			line.TargetLineNo = targetLineNo
			sourceLineNo++
			targetLineNo++
		}
		hunk.Append(line)

		// Stop once both declared extents are satisfied. Trailing lines
		// belong to the next header or file, and a hunk never consumes more
		// than its header promises even if plausible body lines follow.
		if sourceLineNo >= expectedSourceEnd && targetLineNo >= expectedTargetEnd {
			break
		}
	}
	return hunk, nil
}

// classifyBodyLine types a single hunk body line. The no-newline marker is
// typed LineEmpty no matter what character leads the line; an empty line
// counts as context so blank separator lines keep both cursors moving.
func classifyBodyLine(line string) (LineType, string, bool) {
	if strings.HasSuffix(line, noNewlineMarker) {
		return LineEmpty, line[1:], true
	}
	if line == "" {
		return LineContext, "", true
	}
	switch line[0] {
	case '+':
		return LineAdded, line[1:], true
	case '-':
		return LineRemoved, line[1:], true
	case ' ':
		return LineContext, line[1:], true
	}
	return LineContext, "", false
}

// matchFileHeader splits a `--- name<TAB>timestamp` style header into its
// fields. The filename must be non-empty and may not contain tabs; the
// timestamp is everything after the first tab.
func matchFileHeader(line, prefix string) (name, timestamp string, ok bool) {
	rest, found := strings.CutPrefix(line, prefix)
	if !found || rest == "" {
		return "", "", false
	}
	if tab := strings.IndexByte(rest, '\t'); tab >= 0 {
		if tab == 0 {
			return "", "", false
		}
		return rest[:tab], rest[tab+1:], true
	}
	return rest, "", true
}

// hunkExtents holds the four numbers declared by a `@@` header.
type hunkExtents struct {
	sourceStart  int
	sourceLength int
	targetStart  int
	targetLength int
}

// matchHunkHeader parses `@@ -start[,length] +start[,length] @@` plus an
// optional section header after at most one separating space.
//
// A missing `,length` yields length 0, not the conventional unified-diff
// default of 1. The quirk is inherited from the tooling this parser
// replaces and downstream consumers depend on it, so it must not be
// "fixed".
func matchHunkHeader(line string) (ext hunkExtents, section string, ok bool) {
	rest, found := strings.CutPrefix(line, "@@ -")
	if !found {
		return ext, "", false
	}
	if ext.sourceStart, rest, ok = scanInt(rest); !ok {
		return ext, "", false
	}
	if ext.sourceLength, rest, ok = scanLength(rest); !ok {
		return ext, "", false
	}
	if rest, found = strings.CutPrefix(rest, " +"); !found {
		return ext, "", false
	}
	if ext.targetStart, rest, ok = scanInt(rest); !ok {
		return ext, "", false
	}
	if ext.targetLength, rest, ok = scanLength(rest); !ok {
		return ext, "", false
	}
	if rest, found = strings.CutPrefix(rest, " @@"); !found {
		return ext, "", false
	}
	return ext, strings.TrimPrefix(rest, " "), true
}

// scanInt consumes a run of ASCII digits from the front of s.
func scanInt(s string) (value int, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	value, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, false
	}
	return value, s[i:], true
}

// scanLength consumes an optional `,<digits>` from the front of s; absence
// means length 0.
func scanLength(s string) (value int, rest string, ok bool) {
	if !strings.HasPrefix(s, ",") {
		return 0, s, true
	}
	return scanInt(s[1:])
}

func splitLines(input string) []string {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}
