package markupconv

// Output primitives. All failures are reported as *PersistError.

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// writeJSON writes v as JSON to path.
func writeJSON(path string, v interface{}) error {
	log.Printf("Saving %q", path)
	enc, err := json.Marshal(v)
	if err != nil {
		return &PersistError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, enc, 0644); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	return nil
}

// writeText writes data to path.
func writeText(path, data string) error {
	log.Printf("Saving %q", path)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	return nil
}

// writeCSV writes the header followed by records to path.
func writeCSV(path string, header []string, records [][]string) error {
	log.Printf("Saving %q", path)
	if err := writeCSVFile(path, header, records); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	return nil
}

func writeCSVFile(path string, header []string, records [][]string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeWithErrCheck(file, &err)

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return nil
}

// copyDir recursively copies the directory src to dst, which must not exist yet.
func copyDir(src, dst string) error {
	if pathExists(dst) {
		return &PersistError{Path: dst, Err: fs.ErrExist}
	}
	if err := copyTree(src, dst); err != nil {
		return &PersistError{Path: dst, Err: err}
	}
	return nil
}

// copyTree copies the directory src to dst. Symlinks are copied as the files or directories they
// point to.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.Mkdir(target, info.Mode().Perm()|0700)
		}

		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		switch {
		case info.IsDir():
			resolved, err := filepath.EvalSymlinks(path)
			if err != nil {
				return err
			}
			return copyTree(resolved, target)
		case info.Mode().IsRegular():
			return copyFile(path, target, info.Mode().Perm())
		default:
			return fmt.Errorf("cannot copy %q: not a regular file", path)
		}
	})
}

// copyFile copies the content of the regular file src to the new file dst.
func copyFile(src, dst string, perm fs.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer closeWithErrCheck(out, &err)

	_, err = io.Copy(out, in)
	return err
}
