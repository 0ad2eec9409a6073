package markupconv

// Opening a dataset in one of the known formats.

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Dataset layout names.
const (
	ImagesDirName = "images"
	MarkupDirName = "markup"     // Internal per-image JSON files.
	MarkupCSVName = "markup.csv" // InternalCSV table.
	MarkupXMLName = "markup.xml" // PascalVOC document.
	MetaFileName  = "meta.json"  // Internal label set.
)

// Source is a dataset opened for conversion. Its loaded markup is read-only.
type Source struct {
	Format    Format
	InputDir  string
	OutputDir string

	csvRows []CSVRow     // InternalCSV only.
	vocDoc  *VOCDocument // PascalVOC only.
}

// Open validates the input and output folders and loads the markup of a dataset in the given
// format.
//
// The output folder is created if it does not exist, but it must not contain an images folder.
// InternalCSV and PascalVOC markup is loaded eagerly; Internal markup is read per image.
func Open(format Format, inputDir, outputDir string) (*Source, error) {
	if _, ok := formatNames[format]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	s := &Source{Format: format, InputDir: inputDir, OutputDir: outputDir}
	if err := s.checkPaths(); err != nil {
		return nil, err
	}

	var err error
	switch format {
	case InternalCSV:
		s.csvRows, err = readCSVTable(filepath.Join(inputDir, MarkupCSVName))
	case PascalVOC:
		s.vocDoc, err = readVOCDocument(filepath.Join(inputDir, MarkupXMLName))
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// checkPaths validates the folder layout and creates the output folder if needed.
func (s *Source) checkPaths() error {
	log.Printf("Opening input folder %q", s.InputDir)
	if !dirExists(s.InputDir) {
		return fmt.Errorf("%w: %q", ErrInputDirNotFound, s.InputDir)
	}

	log.Printf("Opening folder with images %q", s.ImageDir())
	if !dirExists(s.ImageDir()) {
		return fmt.Errorf("%w: %q", ErrImageDirNotFound, s.ImageDir())
	}

	if dirExists(s.OutputDir) {
		log.Printf("Opening output folder %q", s.OutputDir)
	} else {
		log.Printf("Creating output folder %q", s.OutputDir)
		if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
			return &PersistError{Path: s.OutputDir, Err: err}
		}
	}

	if pathExists(s.outputImageDir()) {
		return fmt.Errorf("%w: %q", ErrOutputImagesExist, s.outputImageDir())
	}

	return nil
}

// ImageDir is the input images folder.
func (s *Source) ImageDir() string {
	return filepath.Join(s.InputDir, ImagesDirName)
}

// imageFolder is the name of the images folder as referenced from markup.
func (s *Source) imageFolder() string {
	return filepath.Base(s.ImageDir())
}

func (s *Source) outputImageDir() string {
	return filepath.Join(s.OutputDir, s.imageFolder())
}

// Images lists the images of the dataset in catalog order.
func (s *Source) Images() ([]ImageInfo, error) {
	return ListImages(s.ImageDir())
}

// Boxes returns the canonical boxes of img, in source order.
func (s *Source) Boxes(img ImageInfo) ([]Box, error) {
	switch s.Format {
	case Internal:
		path := internalMarkupPath(filepath.Join(s.InputDir, MarkupDirName), img)
		intBoxes, err := readInternalBoxes(path)
		if err != nil {
			return nil, err
		}
		boxes := make([]Box, len(intBoxes))
		for i, b := range intBoxes {
			boxes[i] = b.box()
		}
		return boxes, nil

	case InternalCSV:
		rows := csvRowsByImage(s.csvRows, s.imageFolder(), img)
		boxes := make([]Box, len(rows))
		for i, r := range rows {
			boxes[i] = r.box()
		}
		return boxes, nil

	case PascalVOC:
		objects := s.vocDoc.objectsByImage(img)
		boxes := make([]Box, len(objects))
		for i, o := range objects {
			b, err := o.box()
			if err != nil {
				return nil, &SourceError{Path: filepath.Join(s.InputDir, MarkupXMLName),
					Err: fmt.Errorf("image %q: %v", img.FileName, err)}
			}
			boxes[i] = b
		}
		return boxes, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, s.Format)
}

// Read returns the images of the dataset with their boxes, in catalog order.
func (s *Source) Read() (AnnotatedImages, error) {
	images, err := s.Images()
	if err != nil {
		return nil, err
	}

	data := make(AnnotatedImages, 0, len(images))
	for _, img := range images {
		log.Printf("Converting image %s", img.FileName)
		boxes, err := s.Boxes(img)
		if err != nil {
			return nil, err
		}
		data = append(data, AnnotatedImage{Image: img, Boxes: boxes})
	}

	return data, nil
}

// copyImages copies the images folder verbatim to the output folder.
func (s *Source) copyImages() error {
	log.Printf("Copying images to %q", s.outputImageDir())
	return copyDir(s.ImageDir(), s.outputImageDir())
}
