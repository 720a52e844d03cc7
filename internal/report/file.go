package report

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/modname/internal/errors"
	"github.com/thoreinstein/modname/internal/rename"
)

// WriteFile renders results into the file at path. The summary is written
// to a temporary file in the same directory which then replaces path, so an
// interrupted write leaves any previous summary intact.
//
// The caller is responsible for ensuring the parent directory exists.
func WriteFile(fs afero.Fs, path string, format Format, results []rename.Result) error {
	var buf bytes.Buffer
	if err := Write(&buf, format, results); err != nil {
		return err
	}
	return atomicWriteFile(fs, path, buf.Bytes(), 0o644)
}

func atomicWriteFile(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	// Same directory, so the final rename stays on one filesystem
	tmp, err := afero.TempFile(fs, filepath.Dir(path), ".modname-summary-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Only present if the rename did not happen
		if exists, _ := afero.Exists(fs, tmpName); exists {
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := fs.Chmod(tmpName, perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := fs.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}
