package unidiff

import (
	"strings"
	"testing"
)

func TestPatchedFilePathPrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		source string
		target string
		want   string
	}{
		{name: "modified pair", source: "a/foo.txt", target: "b/foo.txt", want: "foo.txt"},
		{name: "deleted", source: "a/foo.txt", target: "/dev/null", want: "foo.txt"},
		{name: "created", source: "/dev/null", target: "b/foo.txt", want: "foo.txt"},
		{name: "no prefixes", source: "foo.txt", target: "foo.txt", want: "foo.txt"},
		{name: "rename keeps source", source: "a/old.txt", target: "b/new.txt", want: "old.txt"},
		{name: "unprefixed target", source: "a/foo.txt", target: "foo.txt", want: "a/foo.txt"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			file := NewPatchedFile(tc.source, tc.target)
			if got := file.Path(); got != tc.want {
				t.Fatalf("Path() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPatchedFileClassificationRecomputed(t *testing.T) {
	t.Parallel()

	file := NewPatchedFile("/dev/null", "b/new.txt")
	file.AppendHunk(NewHunk(0, 0, 1, 2, ""))
	if !file.IsAddedFile() {
		t.Fatalf("expected added classification")
	}

	// Classification must follow current hunk state, not a cached flag.
	file.AppendHunk(NewHunk(5, 2, 5, 2, ""))
	if file.IsAddedFile() {
		t.Fatalf("two-hunk file still classified as added")
	}
	if !file.IsModifiedFile() {
		t.Fatalf("expected modified classification")
	}
}

func TestPatchedFileCountsSumAcrossHunks(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"--- a/file",
		"+++ b/file",
		"@@ -1,2 +1,2 @@",
		"-one",
		"+uno",
		" two",
		"@@ -10,2 +10,3 @@",
		" ten",
		"+ten and a half",
		" eleven",
	}, "\n")

	patch := mustParse(t, input)
	file := patch.Files()[0]
	if got, want := file.Len(), 2; got != want {
		t.Fatalf("hunk count = %d, want %d", got, want)
	}
	if got, want := file.Added(), 2; got != want {
		t.Fatalf("Added() = %d, want %d", got, want)
	}
	if got, want := file.Removed(), 1; got != want {
		t.Fatalf("Removed() = %d, want %d", got, want)
	}
}

func TestPatchedFileHunkAccessor(t *testing.T) {
	t.Parallel()

	patch := mustParse(t, sampleModifiedDiff)
	file := patch.Files()[0]

	hunk, err := file.Hunk(0)
	if err != nil {
		t.Fatalf("Hunk(0) returned error: %v", err)
	}
	if hunk.SourceStart != 1 {
		t.Fatalf("unexpected hunk: %+v", hunk)
	}
	if _, err := file.Hunk(1); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}

func TestPatchedFileString(t *testing.T) {
	t.Parallel()

	patch := mustParse(t, sampleModifiedDiff)
	got := patch.Files()[0].String()

	want := strings.Join([]string{
		"--- a/modified_file",
		"+++ b/modified_file",
		"@@ -1,3 +1,4 @@ section heading",
		" a",
		"-b",
		"+c",
		"+d",
		" e",
	}, "\n")
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
