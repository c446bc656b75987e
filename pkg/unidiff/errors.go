package unidiff

import "fmt"

// Parse failure codes. Each maps to exactly one malformed-input condition;
// the parser never retries or silently skips past any of them.
const (
	// CodeTargetWithoutSource reports a `+++` header seen while a file pair
	// was already open, without an intervening `---` header.
	CodeTargetWithoutSource = "TARGET_WITHOUT_SOURCE"
	// CodeUnexpectedHunk reports a `@@` header seen with no file pair open.
	CodeUnexpectedHunk = "UNEXPECTED_HUNK"
	// CodeExpectLine reports a line inside a hunk's declared span that could
	// not be classified as a valid hunk body line.
	CodeExpectLine = "EXPECT_LINE"
)

// ParseError describes a malformed diff. It carries the offending line
// verbatim so callers can point at the exact input that failed.
type ParseError struct {
	Code string
	Line string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Code {
	case CodeTargetWithoutSource:
		return fmt.Sprintf("target without source: %s", e.Line)
	case CodeUnexpectedHunk:
		return fmt.Sprintf("unexpected hunk found: %s", e.Line)
	case CodeExpectLine:
		return fmt.Sprintf("hunk line expected: %s", e.Line)
	}
	return "malformed diff"
}
