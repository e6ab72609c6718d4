package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// readInput loads the whole file into memory.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return data, nil
}

// writeOutput writes the output of fn to a temporary file next to path and
// renames it into place once fn and the close have both succeeded.  On any
// failure the temporary file is removed and path is left untouched.
func writeOutput(path string, fn func(w io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create output for %q: %w", path, err)
	}
	tmpName := tmp.Name()

	needClose, needRemove := true, true
	defer func() {
		if needClose {
			_ = tmp.Close()
		}
		if needRemove {
			_ = os.Remove(tmpName)
		}
	}()

	if err := fn(tmp); err != nil {
		return err
	}

	needClose = false
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to rename output to %q: %w", path, err)
	}
	needRemove = false
	return nil
}
