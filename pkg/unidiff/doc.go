// Package unidiff parses unified-diff text (the format produced by
// `diff -u` and `git diff`) into a structured, navigable model.
//
// The model is a PatchSet of PatchedFiles, each holding ordered Hunks of
// individually typed and numbered Lines. Consumers can inspect which lines
// were added, removed, or kept, compute per-file and per-hunk statistics,
// and classify files as added, removed, or modified without re-parsing raw
// text themselves. The package parses diff metadata only; it never applies
// patches to file contents.
package unidiff
