package favicon

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"
)

// ArchiveName returns the download name for a bundle created at t.
func ArchiveName(t time.Time) string {
	return fmt.Sprintf("favicons-%d.zip", t.Unix())
}

// WriteArchive streams every file of the result into a ZIP archive, at the
// archive root and in name order.
func (r *Result) WriteArchive(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, name := range r.Files.Names() {
		fh, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: r.Created,
		})
		if err != nil {
			zw.Close()
			return fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		if _, err := fh.Write(r.Files[name]); err != nil {
			zw.Close()
			return fmt.Errorf("failed to write %s to archive: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

// Archive returns the ZIP archive as bytes.
func (r *Result) Archive() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteArchive(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
