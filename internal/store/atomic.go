package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// file is one image waiting to be written.
type file struct {
	path string
	data []byte
}

// writeAtomic replaces path with data so that readers see either the old
// image or the new one, never a partial write.
func writeAtomic(path string, data []byte) error {
	return publish([]file{{path: path, data: data}})
}

// publish writes every file to a temporary sibling first and only then
// swaps them into place. If any file cannot be staged, nothing is replaced.
func publish(files []file) error {
	staged := make([]string, 0, len(files))
	discard := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}
	for _, f := range files {
		tmp, err := stage(f)
		if err != nil {
			discard()
			return err
		}
		staged = append(staged, tmp)
	}
	for i, f := range files {
		if err := commit(staged[i], f.path); err != nil {
			staged = staged[i:]
			discard()
			return err
		}
	}
	return nil
}

// stage writes f to a uniquely named temporary file in its target
// directory and returns the temp path.
func stage(f file) (string, error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // G301: output directories are world-readable
		return "", fmt.Errorf("creating parent directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	_, err = tmp.Write(f.data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), filePerm)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	return tmp.Name(), nil
}

// commit moves tmp over target, replacing any existing file.
func commit(tmp, target string) error {
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("renaming temp to target: %w", err)
	}
	return nil
}
