package markupconv

// InternalCSV format specific functionality.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
)

// CSVHeader is the column header of an InternalCSV table.
var CSVHeader = []string{"filename", "width", "height", "class", "xmin", "ymin", "xmax", "ymax"}

// CSVRow is a single box row of an InternalCSV table.
type CSVRow struct {
	FileName string // <images folder>/<image file name>, always with forward slashes.
	Width    int
	Height   int
	Class    string
	XMin     int
	YMin     int
	XMax     int
	YMax     int
}

func (r CSVRow) box() Box {
	return Box{Coords: [4]int{r.XMin, r.YMin, r.XMax, r.YMax}, Label: r.Class}
}

func newCSVRow(imageFolder string, img ImageInfo, b Box) CSVRow {
	return CSVRow{
		FileName: csvFileName(imageFolder, img),
		Width:    img.Width,
		Height:   img.Height,
		Class:    b.Label,
		XMin:     b.Coords[0],
		YMin:     b.Coords[1],
		XMax:     b.Coords[2],
		YMax:     b.Coords[3],
	}
}

func (r CSVRow) record() []string {
	return []string{r.FileName, strconv.Itoa(r.Width), strconv.Itoa(r.Height), r.Class,
		strconv.Itoa(r.XMin), strconv.Itoa(r.YMin), strconv.Itoa(r.XMax), strconv.Itoa(r.YMax)}
}

// csvFileName is the filename column value for img.
func csvFileName(imageFolder string, img ImageInfo) string {
	return path.Join(imageFolder, img.FileName)
}

// csvRowsByImage returns the rows of table that belong to img, in table order.
func csvRowsByImage(table []CSVRow, imageFolder string, img ImageInfo) []CSVRow {
	name := csvFileName(imageFolder, img)
	var rows []CSVRow
	for _, r := range table {
		if r.FileName == name {
			rows = append(rows, r)
		}
	}
	return rows
}

// readCSVTable reads and parses the InternalCSV table at path. Columns are matched by header
// name; width and height are optional.
func readCSVTable(path string) ([]CSVRow, error) {
	rows, err := parseCSVTable(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return rows, nil
}

func parseCSVTable(path string) (rows []CSVRow, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeWithErrCheck(file, &err)

	r := csv.NewReader(file)
	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("missing header")
	} else if err != nil {
		return nil, err
	}

	// Spreadsheet exports may start with a UTF-8 byte order mark.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	// Map column names to indices.
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range []string{"filename", "class", "xmin", "ymin", "xmax", "ymax"} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		line, _ := r.FieldPos(0)
		row, err := parseCSVRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseCSVRecord converts one table record to a CSVRow.
func parseCSVRecord(record []string, columns map[string]int) (CSVRow, error) {
	row := CSVRow{
		FileName: record[columns["filename"]],
		Class:    record[columns["class"]],
	}

	ints := []struct {
		column string
		v      *int
	}{
		{"width", &row.Width},
		{"height", &row.Height},
		{"xmin", &row.XMin},
		{"ymin", &row.YMin},
		{"xmax", &row.XMax},
		{"ymax", &row.YMax},
	}
	for _, c := range ints {
		i, ok := columns[c.column]
		if !ok {
			continue
		}
		v, err := parseCoord(record[i])
		if err != nil {
			return row, fmt.Errorf("column %q: %v", c.column, err)
		}
		*c.v = v
	}

	return row, nil
}

// ToInternalCSV converts the canonical representation to InternalCSV rows, one per box.
func ToInternalCSV(data AnnotatedImages, imageFolder string) []CSVRow {
	rows := make([]CSVRow, 0, data.NumBoxes())
	for _, d := range data {
		for _, b := range d.Boxes {
			rows = append(rows, newCSVRow(imageFolder, d.Image, b))
		}
	}
	return rows
}

// WriteInternalCSV writes the rows with a header to outFile.
func WriteInternalCSV(outFile string, rows []CSVRow) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}
	return writeCSV(outFile, CSVHeader, records)
}
