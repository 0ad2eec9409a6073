package markupconv

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src")
	writeTestFile(t, filepath.Join(src, "a.txt"), "a")
	writeTestFile(t, filepath.Join(src, "sub", "b.txt"), "b")
	if err := os.Symlink(filepath.Join(src, "a.txt"), filepath.Join(src, "link.txt")); err != nil {
		t.Fatal(err)
	}
	linked := filepath.Join(t.TempDir(), "linked")
	writeTestFile(t, filepath.Join(linked, "c.txt"), "c")
	if err := os.Symlink(linked, filepath.Join(src, "linkdir")); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "dst")
	if err := copyDir(src, dst); err != nil {
		t.Fatalf("copyDir failed: %v", err)
	}
	for path, want := range map[string]string{
		"a.txt":         "a",
		"sub/b.txt":     "b",
		"link.txt":      "a",
		"linkdir/c.txt": "c",
	} {
		if got := readTestFile(t, filepath.Join(dst, filepath.FromSlash(path))); got != want {
			t.Errorf("%s: expected %q, got %q", path, want, got)
		}
	}

	// The destination exists now.
	err := copyDir(src, dst)
	var persistErr *PersistError
	if !errors.As(err, &persistErr) || !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected a *PersistError wrapping fs.ErrExist, got %v", err)
	}
}

func TestWriteFailuresArePropagated(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "file")
	var persistErr *PersistError

	if err := writeJSON(missing, []int{1}); !errors.As(err, &persistErr) || persistErr.Path != missing {
		t.Errorf("writeJSON: expected a *PersistError for %q, got %v", missing, err)
	}
	if err := writeText(missing, "x"); !errors.As(err, &persistErr) {
		t.Errorf("writeText: expected a *PersistError, got %v", err)
	}
	if err := writeCSV(missing, CSVHeader, nil); !errors.As(err, &persistErr) {
		t.Errorf("writeCSV: expected a *PersistError, got %v", err)
	}
}
