package file

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPrefix is the naming convention for Snapmatic container files.
const DefaultPrefix = "PGTA"

// JPEGSuffix is appended to the container name for the converted output.
const JPEGSuffix = ".jpg"

var numRe = regexp.MustCompile(`\d+`)

// ListContainers returns the names of container files in dir, in directory
// order. Entries not starting with prefix, and subdirectories, are skipped.
func ListContainers(dir string, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing containers in %s", dir)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

// Intersect splits requested into the names present in found (in requested
// order) and the names that are not.
func Intersect(found []string, requested []string) (matched []string, missing []string) {
	lookup := make(map[string]struct{}, len(found))
	for _, name := range found {
		lookup[name] = struct{}{}
	}

	for _, name := range requested {
		if _, ok := lookup[name]; ok {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}

	return matched, missing
}

// JPEGName returns the output file name for a container file.
func JPEGName(name string) string {
	return name + JPEGSuffix
}

// ExtractPhotoNum pulls the photo number out of a container file name.
func ExtractPhotoNum(name string) (int, error) {
	match := numRe.FindString(name)

	if match != "" {
		return strconv.Atoi(match)
	}

	return 0, errors.Errorf("no photo number in container name %s", name)
}

// IsNotFound reports whether err (possibly wrapped) is a missing file or
// directory error from the filesystem.
func IsNotFound(err error) bool {
	return os.IsNotExist(errors.Cause(err))
}
