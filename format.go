package markupconv

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Format is an on-disk annotation format.
type Format int

// The known annotation formats.
const (
	Unknown     Format = iota // If an unknown format is specified.
	Internal                  // Per-image JSON markup plus meta.json.
	InternalCSV               // A single markup.csv table.
	PascalVOC                 // A single markup.xml document.
)

var formatNames = map[Format]string{
	Internal:    "int",
	InternalCSV: "int_csv",
	PascalVOC:   "pascal_voc",
}

// Formats lists the known formats.
func Formats() []Format {
	return []Format{Internal, InternalCSV, PascalVOC}
}

// ParseFormat returns the format named s ("int", "int_csv" or "pascal_voc").
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return Unknown, fmt.Errorf("%w %q, available formats are: %s", ErrUnknownFormat, s,
		strings.Join(FormatNames(), ", "))
}

// FormatNames returns the names of all known formats.
func FormatNames() []string {
	names := make([]string, 0, len(formatNames))
	for _, f := range Formats() {
		names = append(names, f.String())
	}
	return names
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Options tune a conversion.
type Options struct {
	LabelMappings []string // old=new label (sub-)string replacements, applied in order.
}

// ConversionFunc converts the dataset opened by src into another format.
type ConversionFunc func(src *Source, opts Options) error

// Conversion is a pair of source and target formats.
type Conversion struct{ From, To Format }

func (c Conversion) String() string {
	return c.From.String() + " -> " + c.To.String()
}

// Direct conversions. Internal and PascalVOC convert to each other through InternalCSV.
var conversions = map[Conversion]ConversionFunc{
	{Internal, InternalCSV}:  convertToCSV,
	{InternalCSV, Internal}:  convertToInternal,
	{InternalCSV, PascalVOC}: convertToPascalVOC,
	{PascalVOC, InternalCSV}: convertToCSV,
}

// Lookup returns the conversion from one format to another, if there is one.
func Lookup(from, to Format) (ConversionFunc, bool) {
	fn, ok := conversions[Conversion{from, to}]
	return fn, ok
}

// Conversions lists the direct conversions, ordered by source and target format.
func Conversions() []Conversion {
	list := make([]Conversion, 0, len(conversions))
	for c := range conversions {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].From != list[j].From {
			return list[i].From < list[j].From
		}
		return list[i].To < list[j].To
	})
	return list
}

// Supported reports whether there is a direct conversion from one format to another.
func Supported(from, to Format) bool {
	_, ok := Lookup(from, to)
	return ok
}

// Convert converts the dataset in inputDir from one format to another and writes it to outputDir.
//
// Unsupported conversions fail with ErrUnsupportedConversion before the filesystem is touched.
// Otherwise the output is written step by step and is left as is if a later step fails.
func Convert(from, to Format, inputDir, outputDir string, opts Options) error {
	convert, ok := Lookup(from, to)
	if !ok {
		return fmt.Errorf("%w: %v to %v", ErrUnsupportedConversion, from, to)
	}
	if _, err := parseLabelMappings(opts.LabelMappings); err != nil {
		return err
	}

	src, err := Open(from, inputDir, outputDir)
	if err != nil {
		return err
	}

	log.Printf("Converting %v to %v", from, to)
	return convert(src, opts)
}
