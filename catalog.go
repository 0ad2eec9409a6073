package markupconv

// Image file enumeration.

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	_ "golang.org/x/image/tiff" // Register TIFF decoder.
	_ "golang.org/x/image/webp" // Register WebP decoder.
)

// ListImages returns the images found directly in imageDir, sorted by file name.
//
// Every call re-reads the directory. Entries that cannot be decoded as images are skipped with a
// warning; only a failure to read imageDir itself is an error.
func ListImages(imageDir string) ([]ImageInfo, error) {
	entries, err := os.ReadDir(imageDir) // Sorted by file name.
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %q: %w", imageDir, err)
	}

	images := make([]ImageInfo, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		config, _, err := decodeImageConfig(filepath.Join(imageDir, name))
		if err != nil {
			log.Printf("Found wrong file, not an image, skipping %q: %v", name, err)
			continue
		}
		images = append(images, ImageInfo{FileName: name, Width: config.Width, Height: config.Height})
	}

	return images, nil
}

// decodeImageConfig opens the file at path and returns the results of image.DecodeConfig.
func decodeImageConfig(path string) (config image.Config, format string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", err
	}
	defer file.Close()

	return image.DecodeConfig(file)
}
