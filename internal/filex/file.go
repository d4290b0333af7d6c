// Package filex resolves and prepares on-disk locations for local data.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDataDir makes sure dir exists and returns its absolute path.
// A relative dir is resolved against the working directory; an empty one
// means the working directory itself.
func EnsureDataDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// DataFile returns the path of name inside dir, creating dir when missing.
// An absolute name is returned unchanged.
func DataFile(dir, name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}

	base, err := EnsureDataDir(dir)
	if err != nil {
		return "", err
	}

	return filepath.Join(base, name), nil
}
