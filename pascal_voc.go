package markupconv

// PascalVOC format specific functionality.

import (
	"encoding/xml"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Constant values written to PascalVOC output.
const (
	vocRootElement = "root"
	vocDatabase    = "ORI_Markup"
	vocDepth       = 3
	vocPose        = "Unspecified"
)

// VOCBndBox is the bounding box of a PascalVOC object. Values are kept as text when reading.
type VOCBndBox struct {
	XMin string `xml:"xmin"`
	YMin string `xml:"ymin"`
	XMax string `xml:"xmax"`
	YMax string `xml:"ymax"`
}

// VOCObject is a single object within a PascalVOC annotation.
type VOCObject struct {
	Name      string    `xml:"name"`
	Pose      string    `xml:"pose"`
	Truncated string    `xml:"truncated"`
	Difficult string    `xml:"difficult"`
	BndBox    VOCBndBox `xml:"bndbox"`
}

// VOCSource names the database an annotation comes from.
type VOCSource struct {
	Database string `xml:"database"`
}

// VOCSize holds the image dimensions of an annotation.
type VOCSize struct {
	Width  string `xml:"width"`
	Height string `xml:"height"`
	Depth  string `xml:"depth"`
}

// VOCAnnotation defines the PascalVOC annotation of a single image.
type VOCAnnotation struct {
	Folder    string      `xml:"folder"`
	FileName  string      `xml:"filename"`
	Path      string      `xml:"path"`
	Source    VOCSource   `xml:"source"`
	Size      VOCSize     `xml:"size"`
	Segmented string      `xml:"segmented"`
	Objects   []VOCObject `xml:"object"`
}

// VOCDocument is a PascalVOC markup file with one annotation per image. The root element name is
// not significant when reading.
type VOCDocument struct {
	XMLName     xml.Name
	Annotations []VOCAnnotation `xml:"annotation"`
}

func (o VOCObject) box() (Box, error) {
	b := Box{Label: strings.TrimSpace(o.Name)}
	for i, s := range []string{o.BndBox.XMin, o.BndBox.YMin, o.BndBox.XMax, o.BndBox.YMax} {
		v, err := parseCoord(s)
		if err != nil {
			return b, err
		}
		b.Coords[i] = v
	}
	return b, nil
}

func newVOCObject(b Box) VOCObject {
	return VOCObject{
		Name:      b.Label,
		Pose:      vocPose,
		Truncated: "0",
		Difficult: "0",
		BndBox: VOCBndBox{
			XMin: strconv.Itoa(b.Coords[0]),
			YMin: strconv.Itoa(b.Coords[1]),
			XMax: strconv.Itoa(b.Coords[2]),
			YMax: strconv.Itoa(b.Coords[3]),
		},
	}
}

// newVOCAnnotation creates the annotation for img without objects. The path is the location of
// the image in outputImageDir.
func newVOCAnnotation(imageFolder, outputImageDir string, img ImageInfo) VOCAnnotation {
	return VOCAnnotation{
		Folder:   imageFolder,
		FileName: img.FileName,
		Path:     filepath.Join(outputImageDir, img.FileName),
		Source:   VOCSource{Database: vocDatabase},
		Size: VOCSize{
			Width:  strconv.Itoa(img.Width),
			Height: strconv.Itoa(img.Height),
			Depth:  strconv.Itoa(vocDepth),
		},
		Segmented: "0",
	}
}

// readVOCDocument reads and parses the PascalVOC markup file at path. A file whose root element
// is a single annotation is accepted as well.
func readVOCDocument(path string) (*VOCDocument, error) {
	enc, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}

	var doc VOCDocument
	if err := xml.Unmarshal(enc, &doc); err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}

	if doc.XMLName.Local == "annotation" {
		var a VOCAnnotation
		if err := xml.Unmarshal(enc, &a); err != nil {
			return nil, &SourceError{Path: path, Err: err}
		}
		doc.Annotations = []VOCAnnotation{a}
	}

	return &doc, nil
}

// objectsByImage returns the objects of the first annotation for img.
func (doc *VOCDocument) objectsByImage(img ImageInfo) []VOCObject {
	for _, a := range doc.Annotations {
		if strings.TrimSpace(a.FileName) == img.FileName {
			return a.Objects
		}
	}

	log.Printf("No annotation found for image %q", img.FileName)
	return nil
}

// ToPascalVOC converts the canonical representation to a PascalVOC document with one annotation
// per image. Image paths point into outputImageDir.
func ToPascalVOC(data AnnotatedImages, imageFolder, outputImageDir string) VOCDocument {
	doc := VOCDocument{
		XMLName:     xml.Name{Local: vocRootElement},
		Annotations: make([]VOCAnnotation, 0, len(data)),
	}
	for _, d := range data {
		a := newVOCAnnotation(imageFolder, outputImageDir, d.Image)
		a.Objects = make([]VOCObject, len(d.Boxes))
		for i, b := range d.Boxes {
			a.Objects[i] = newVOCObject(b)
		}
		doc.Annotations = append(doc.Annotations, a)
	}
	return doc
}

// WritePascalVOC writes the document to outFile, indented with tabs.
func WritePascalVOC(outFile string, doc VOCDocument) error {
	enc, err := xml.MarshalIndent(doc, "", "\t")
	if err != nil {
		return &PersistError{Path: outFile, Err: err}
	}

	return writeText(outFile, string(enc)+"\n")
}
