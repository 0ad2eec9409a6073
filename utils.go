package markupconv

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// imageStem returns the image file name up to its first dot. Internal markup files are named
// after it.
func imageStem(fileName string) string {
	if i := strings.Index(fileName, "."); i >= 0 {
		return fileName[:i]
	}
	return fileName
}

// parseCoord parses a textual box coordinate. Decimal values are rounded to the nearest integer.
func parseCoord(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return int(math.Round(f)), nil
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// pathExists reports whether anything exists at path.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// closeWithErrCheck calls c.Close(). If it returns an error, and (*e == nil), e is set to that
// error.
func closeWithErrCheck(c io.Closer, e *error) {
	err := c.Close()
	if err != nil && *e == nil {
		*e = err
	}
}
