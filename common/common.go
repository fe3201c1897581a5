package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputPath places the output next to the input, replacing the
// input's extension with ext: "dir/hello.wsasm" becomes "dir/hello.ws".
func DefaultOutputPath(input, ext string) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(dir, stem+ext)
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over path, so a failed run never leaves a partial output behind.
func WriteFileAtomic(path string, data []byte) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("unable to determine absolute path: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*")
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("unable to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("unable to set output permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), absPath); err != nil {
		return fmt.Errorf("unable to move output into place: %w", err)
	}
	return nil
}
