// Package fsutil provides the small file-system helpers the application
// shell needs.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindMatrixFiles resolves a user-supplied path to the list of matrix files
// to generate from. A file path is returned as-is; a directory is walked
// recursively for files with the given extension. Results are sorted so a
// directory of configs is always processed in the same order.
func FindMatrixFiles(path string, extension string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found under %s", extension, path)
	}
	sort.Strings(files)
	return files, nil
}
