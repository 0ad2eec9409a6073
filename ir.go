package markupconv

// The canonical annotation representation shared by all formats.

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Box is the canonical form of a labelled bounding box.
//
// Coords are not validated: boxes are carried from source to target as they were found.
type Box struct {
	Coords [4]int // Absolute xmin, ymin, xmax, ymax offsets from the top-left corner.
	Label  string
}

// Width is the box width from b.Coords.
func (b Box) Width() int {
	return b.Coords[2] - b.Coords[0]
}

// Height is the box height from b.Coords.
func (b Box) Height() int {
	return b.Coords[3] - b.Coords[1]
}

// ImageInfo describes one image file of a dataset.
type ImageInfo struct {
	FileName string // Base name within the images folder.
	Width    int
	Height   int
}

// AnnotatedImage is an image together with its boxes.
type AnnotatedImage struct {
	Image ImageInfo
	Boxes []Box
}

// AnnotatedImages is the annotation data of a whole dataset, in catalog order.
type AnnotatedImages []AnnotatedImage

// Labels returns the distinct labels of all boxes, sorted.
func (data AnnotatedImages) Labels() []string {
	seen := make(map[string]struct{})
	for _, d := range data {
		for _, b := range d.Boxes {
			seen[b.Label] = struct{}{}
		}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// NumBoxes is the total number of boxes in data.
func (data AnnotatedImages) NumBoxes() int {
	n := 0
	for _, d := range data {
		n += len(d.Boxes)
	}
	return n
}

// labelReplacement is one old=new label mapping.
type labelReplacement struct{ old, new string }

// parseLabelMappings parses mappings of the form old=new.
func parseLabelMappings(mappings []string) ([]labelReplacement, error) {
	replacements := make([]labelReplacement, len(mappings))
	for i, v := range mappings {
		a := strings.Split(v, "=")
		if len(a) != 2 {
			return nil, fmt.Errorf("invalid mapping: %v", v)
		}

		replacements[i].old = a[0]
		replacements[i].new = a[1]
	}
	return replacements, nil
}

// MapLabels replaces label (sub-)strings with substitution values, as specified in mappings.
//
// The format of mappings is old=new.
func (data AnnotatedImages) MapLabels(mappings []string) error {
	if len(mappings) == 0 {
		return nil
	}

	replacements, err := parseLabelMappings(mappings)
	if err != nil {
		return err
	}

	// Apply the replacements, in order, to all labels.
	count := 0
	for _, d := range data {
		for i := range d.Boxes {
			b := &d.Boxes[i]

			oldLabel := b.Label
			for _, r := range replacements {
				b.Label = strings.Replace(b.Label, r.old, r.new, -1)
			}

			if b.Label != oldLabel {
				count++
			}
		}
	}

	log.Printf("The label mappings changed %d labels", count)
	return nil
}
