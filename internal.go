package markupconv

// Internal format specific functionality.

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// InternalBox is a single box within an Internal markup file.
type InternalBox struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	X1    int    `json:"x1"`
	Y1    int    `json:"y1"`
	Label string `json:"label"`
}

// InternalAnnotatedImage defines the Internal markup of a single image.
type InternalAnnotatedImage struct {
	Boxes    []InternalBox
	FileName string
}

// InternalMeta is the content of meta.json.
type InternalMeta struct {
	Labels []string `json:"labels"`
}

func (b InternalBox) box() Box {
	return Box{Coords: [4]int{b.X, b.Y, b.X1, b.Y1}, Label: b.Label}
}

func internalBoxFrom(b Box) InternalBox {
	return InternalBox{X: b.Coords[0], Y: b.Coords[1], X1: b.Coords[2], Y1: b.Coords[3], Label: b.Label}
}

// internalMarkupPath is the markup file of img within markupDir.
func internalMarkupPath(markupDir string, img ImageInfo) string {
	return filepath.Join(markupDir, imageStem(img.FileName)+".json")
}

// readInternalBoxes reads and parses the Internal markup file at path.
func readInternalBoxes(path string) ([]InternalBox, error) {
	enc, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}

	// Coordinates are decoded as numbers and rounded like CSV and XML coordinates.
	var raw []struct {
		X     json.Number `json:"x"`
		Y     json.Number `json:"y"`
		X1    json.Number `json:"x1"`
		Y1    json.Number `json:"y1"`
		Label string      `json:"label"`
	}
	if err := json.Unmarshal(enc, &raw); err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}

	boxes := make([]InternalBox, len(raw))
	for i, r := range raw {
		boxes[i].Label = r.Label
		coords := []struct {
			v *int
			n json.Number
		}{{&boxes[i].X, r.X}, {&boxes[i].Y, r.Y}, {&boxes[i].X1, r.X1}, {&boxes[i].Y1, r.Y1}}
		for _, c := range coords {
			v, err := parseCoord(c.n.String())
			if err != nil {
				return nil, &SourceError{Path: path, Err: fmt.Errorf("box %d: %v", i, err)}
			}
			*c.v = v
		}
	}

	return boxes, nil
}

// ToInternal converts the canonical representation to Internal format.
func ToInternal(data AnnotatedImages) ([]InternalAnnotatedImage, InternalMeta) {
	intData := make([]InternalAnnotatedImage, 0, len(data))
	for _, d := range data {
		// Must not be nil as that becomes JSON null.
		intImage := InternalAnnotatedImage{
			Boxes:    make([]InternalBox, len(d.Boxes)),
			FileName: d.Image.FileName,
		}
		for i, b := range d.Boxes {
			intImage.Boxes[i] = internalBoxFrom(b)
		}
		intData = append(intData, intImage)
	}

	return intData, InternalMeta{Labels: data.Labels()}
}

// WriteInternal writes one markup file per image to outputDir/markup and the label set to
// outputDir/meta.json.
func WriteInternal(outputDir string, data []InternalAnnotatedImage, meta InternalMeta) error {
	markupDir := filepath.Join(outputDir, MarkupDirName)
	if err := os.MkdirAll(markupDir, 0755); err != nil {
		return &PersistError{Path: markupDir, Err: err}
	}

	for _, d := range data {
		path := internalMarkupPath(markupDir, ImageInfo{FileName: d.FileName})
		if err := writeJSON(path, d.Boxes); err != nil {
			return err
		}
	}

	log.Printf("Writing %d labels", len(meta.Labels))
	return writeJSON(filepath.Join(outputDir, MetaFileName), meta)
}
