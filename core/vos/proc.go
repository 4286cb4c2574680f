package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(vos VOS, file string) error {
	d, err := vos.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// the PATH environment variable. If file contains a slash, it is tried directly
// and the PATH is not consulted. Relative results are resolved against the
// working directory so they stay valid for a child started elsewhere.
func LookPath(vos VOS, file string) (string, error) {
	if strings.Contains(file, "/") {
		if err := findExecutable(vos, file); err != nil {
			return "", err
		}
		return absPath(vos, file), nil
	}
	path := vos.Getenv("PATH")
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(vos, path); err == nil {
			return absPath(vos, path), nil
		}
	}
	return "", ErrNotFound
}

func absPath(vos VOS, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(vos.Getwd(), name)
}
