package unidiff

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// PatchSet is a whole parsed diff: the ordered collection of files it
// changes. The zero value is not ready for use; construct one with New or
// NewWithEncoding.
type PatchSet struct {
	files    []*PatchedFile
	encoding encoding.Encoding
}

// New returns an empty PatchSet. ParseBytes on it treats input as UTF-8.
func New() *PatchSet {
	return &PatchSet{}
}

// NewWithEncoding returns an empty PatchSet whose ParseBytes decodes raw
// input through the character encoding named by the IANA label, for
// example "latin1" or "shift_jis". Unknown or unsupported labels are an
// error.
func NewWithEncoding(label string) (*PatchSet, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unidiff: unknown encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unidiff: unsupported encoding %q", label)
	}
	return &PatchSet{encoding: enc}, nil
}

// ParseBytes decodes raw bytes with the configured encoding and parses the
// resulting text. The core parser only ever operates on decoded text;
// decoding is strictly a pre-processing step.
func (p *PatchSet) ParseBytes(input []byte) error {
	if p.encoding == nil {
		return p.Parse(string(input))
	}
	decoded, err := p.encoding.NewDecoder().Bytes(input)
	if err != nil {
		return fmt.Errorf("unidiff: decode input: %w", err)
	}
	return p.Parse(string(decoded))
}

// Len returns the number of patched files.
func (p *PatchSet) Len() int {
	return len(p.files)
}

// IsEmpty reports whether the set holds no files.
func (p *PatchSet) IsEmpty() bool {
	return len(p.files) == 0
}

// Files returns the patched files in input order. The slice is the set's
// own backing storage, so callers may mutate files in place.
func (p *PatchSet) Files() []*PatchedFile {
	return p.files
}

// File returns the file at index i, or an error when the index is out of
// range.
func (p *PatchSet) File(i int) (*PatchedFile, error) {
	if i < 0 || i >= len(p.files) {
		return nil, fmt.Errorf("unidiff: file index %d out of range [0, %d)", i, len(p.files))
	}
	return p.files[i], nil
}

// AddedFiles returns the files the diff creates.
func (p *PatchSet) AddedFiles() []*PatchedFile {
	var out []*PatchedFile
	for _, f := range p.files {
		if f.IsAddedFile() {
			out = append(out, f)
		}
	}
	return out
}

// RemovedFiles returns the files the diff deletes.
func (p *PatchSet) RemovedFiles() []*PatchedFile {
	var out []*PatchedFile
	for _, f := range p.files {
		if f.IsRemovedFile() {
			out = append(out, f)
		}
	}
	return out
}

// ModifiedFiles returns the files the diff neither creates nor deletes.
func (p *PatchSet) ModifiedFiles() []*PatchedFile {
	var out []*PatchedFile
	for _, f := range p.files {
		if f.IsModifiedFile() {
			out = append(out, f)
		}
	}
	return out
}

// String re-serializes the whole set in canonical unified-diff form.
func (p *PatchSet) String() string {
	parts := make([]string, 0, len(p.files))
	for _, f := range p.files {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "\n")
}
