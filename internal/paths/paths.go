package paths

import (
	"strings"

	"github.com/thoreinstein/modname/internal/errors"
)

// Separator is the path separator recognised by Split and Join.
const Separator = "/"

// DirFilename is a path split into its directory and filename components.
type DirFilename struct {
	Directory string
	Filename  string
}

// TrimTrailingSeparators removes every trailing separator from path.
// It is idempotent.
func TrimTrailingSeparators(path string) string {
	return strings.TrimRight(path, Separator)
}

// IsRooted reports whether path starts at the filesystem root.
func IsRooted(path string) bool {
	return strings.HasPrefix(path, Separator)
}

// Split divides path at its last separator.
//
// Without a separator the whole path is the filename. The separator itself
// belongs to neither component, so "/file" yields an empty directory and
// "dir/" an empty filename. Repeated separators in front of the filename are
// dropped with it ("dir//file" yields "dir"), keeping Directory free of a
// trailing separator.
func Split(path string) DirFilename {
	i := strings.LastIndex(path, Separator)
	if i < 0 {
		return DirFilename{Filename: path}
	}
	return DirFilename{
		Directory: TrimTrailingSeparators(path[:i]),
		Filename:  path[i+1:],
	}
}

// Join recombines a directory and a filename.
//
// An empty directory yields filename unchanged, and an empty filename yields
// directory unchanged. directory must not end with a separator and filename
// must not start with one; a violation is reported as an assertion failure.
func Join(directory, filename string) (string, error) {
	if strings.HasSuffix(directory, Separator) {
		return "", errors.AssertionFailedf("directory %q ends with a separator", directory)
	}
	if strings.HasPrefix(filename, Separator) {
		return "", errors.AssertionFailedf("filename %q starts with a separator", filename)
	}

	switch {
	case directory == "":
		return filename, nil
	case filename == "":
		return directory, nil
	default:
		return directory + Separator + filename, nil
	}
}
