package markupconv

import (
	"errors"
	"fmt"
)

// Errors reported before any annotation data is read or written.
var (
	ErrUnknownFormat         = errors.New("unknown format")
	ErrUnsupportedConversion = errors.New("conversion not supported")
	ErrInputDirNotFound      = errors.New("input folder not found")
	ErrImageDirNotFound      = errors.New("images folder not found")
	ErrOutputImagesExist     = errors.New("images folder already exists in output")
)

// SourceError reports a source markup file that could not be read or parsed.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("problem occurred with file %q: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// PersistError reports an output file or directory that could not be written.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("couldn't save %q: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
