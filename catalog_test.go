package markupconv

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestListImagesSortedByName(t *testing.T) {
	dir := newInputDir(t, map[string][2]int{
		"c.png": {30, 10},
		"a.jpg": {100, 50},
		"b.gif": {20, 40},
		"d.bmp": {12, 7},
		"e.tif": {5, 9},
	})
	imageDir := filepath.Join(dir, ImagesDirName)

	want := []ImageInfo{
		{FileName: "a.jpg", Width: 100, Height: 50},
		{FileName: "b.gif", Width: 20, Height: 40},
		{FileName: "c.png", Width: 30, Height: 10},
		{FileName: "d.bmp", Width: 12, Height: 7},
		{FileName: "e.tif", Width: 5, Height: 9},
	}

	// Every call re-reads the directory and yields the same order.
	for call := 0; call < 2; call++ {
		images, err := ListImages(imageDir)
		if err != nil {
			t.Fatalf("ListImages failed: %v", err)
		}
		if len(images) != len(want) {
			t.Fatalf("expected %d images, got %d", len(want), len(images))
		}
		for i := range want {
			if images[i] != want[i] {
				t.Errorf("call %d, image %d: expected %+v, got %+v", call, i, want[i], images[i])
			}
		}
	}
}

func TestListImagesSkipsNonImages(t *testing.T) {
	dir := newInputDir(t, map[string][2]int{"a.png": {8, 6}})
	imageDir := filepath.Join(dir, ImagesDirName)
	writeTestFile(t, filepath.Join(imageDir, "notes.txt"), "not an image")
	writeTestFile(t, filepath.Join(imageDir, "sub", "b.txt"), "nested")

	logs := captureLog(t)
	images, err := ListImages(imageDir)
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	for _, name := range []string{`"notes.txt"`, `"sub"`} {
		if !strings.Contains(logs.String(), name) {
			t.Errorf("expected a warning naming %s, got log %q", name, logs.String())
		}
	}
	if strings.Contains(logs.String(), `"a.png"`) {
		t.Errorf("unexpected warning for a.png: %q", logs.String())
	}
	if len(images) != 1 {
		t.Fatalf("expected 1 image, got %d: %+v", len(images), images)
	}
	if images[0] != (ImageInfo{FileName: "a.png", Width: 8, Height: 6}) {
		t.Errorf("unexpected image %+v", images[0])
	}
}

func TestListImagesMissingDir(t *testing.T) {
	if _, err := ListImages(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
