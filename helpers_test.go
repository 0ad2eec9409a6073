package markupconv

import (
	"bytes"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// writeTestImage encodes a uniform image of the given size at path. The encoding follows the
// file extension.
func writeTestImage(t *testing.T, path string, width, height int) {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 40, G: 120, B: 200, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to save test image %q: %v", path, err)
	}
}

// writeTestFile writes content to path, creating parent directories.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %q: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %q: %v", path, err)
	}
	return string(data)
}

// newInputDir creates an input folder with an images folder holding the given images, keyed by
// file name with {width, height} values.
func newInputDir(t *testing.T, images map[string][2]int) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "in")
	imageDir := filepath.Join(dir, ImagesDirName)
	if err := os.MkdirAll(imageDir, 0755); err != nil {
		t.Fatalf("failed to create %q: %v", imageDir, err)
	}
	for name, size := range images {
		writeTestImage(t, filepath.Join(imageDir, name), size[0], size[1])
	}
	return dir
}

// newOutputDir returns a path for an output folder that does not exist yet.
func newOutputDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "out")
}

// assertSameFiles checks that both directories contain the same files with identical content.
func assertSameFiles(t *testing.T, want, got string) {
	t.Helper()
	entries, err := os.ReadDir(want)
	if err != nil {
		t.Fatalf("failed to read %q: %v", want, err)
	}
	gotEntries, err := os.ReadDir(got)
	if err != nil {
		t.Fatalf("failed to read %q: %v", got, err)
	}
	if len(entries) != len(gotEntries) {
		t.Fatalf("expected %d entries in %q, got %d", len(entries), got, len(gotEntries))
	}
	for _, e := range entries {
		wantData := readTestFile(t, filepath.Join(want, e.Name()))
		gotData := readTestFile(t, filepath.Join(got, e.Name()))
		if wantData != gotData {
			t.Errorf("content of %q differs from %q", filepath.Join(got, e.Name()), e.Name())
		}
	}
}

// captureLog redirects the standard logger into a buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}
