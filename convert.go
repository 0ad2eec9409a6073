package markupconv

// The direct conversions between formats.

import (
	"path/filepath"
)

// readForConversion reads the source dataset and applies the label mappings.
func readForConversion(src *Source, opts Options) (AnnotatedImages, error) {
	data, err := src.Read()
	if err != nil {
		return nil, err
	}
	if err := data.MapLabels(opts.LabelMappings); err != nil {
		return nil, err
	}
	return data, nil
}

// convertToCSV serves both Internal and PascalVOC sources.
func convertToCSV(src *Source, opts Options) error {
	data, err := readForConversion(src, opts)
	if err != nil {
		return err
	}
	rows := ToInternalCSV(data, src.imageFolder())
	if err := WriteInternalCSV(filepath.Join(src.OutputDir, MarkupCSVName), rows); err != nil {
		return err
	}
	return src.copyImages()
}

func convertToInternal(src *Source, opts Options) error {
	data, err := readForConversion(src, opts)
	if err != nil {
		return err
	}
	intData, meta := ToInternal(data)
	if err := WriteInternal(src.OutputDir, intData, meta); err != nil {
		return err
	}
	return src.copyImages()
}

func convertToPascalVOC(src *Source, opts Options) error {
	data, err := readForConversion(src, opts)
	if err != nil {
		return err
	}

	// Annotations reference the copied images by absolute path.
	outputImageDir, err := filepath.Abs(src.outputImageDir())
	if err != nil {
		return err
	}
	doc := ToPascalVOC(data, src.imageFolder(), outputImageDir)
	if err := WritePascalVOC(filepath.Join(src.OutputDir, MarkupXMLName), doc); err != nil {
		return err
	}
	return src.copyImages()
}
