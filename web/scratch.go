package web

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// WithScratchFile creates a private directory under dir (os.TempDir() when
// empty), fills a file called name through write, rewinds it and passes it
// to use. The directory and everything in it is removed before
// WithScratchFile returns, whatever the outcome.
func WithScratchFile(dir, name string, write func(io.Writer) error, use func(*os.File) error) error {
	tmpDir, err := os.MkdirTemp(dir, "favicons-")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.Printf("Warning: Failed to remove scratch directory %s: %v", tmpDir, err)
		}
	}()

	path := filepath.Join(tmpDir, filepath.Base(name))
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", name, err)
	}

	return use(f)
}
