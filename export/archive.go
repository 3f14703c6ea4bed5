package export

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// ArchiveEntry is one named file inside an export bundle.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// ArchiveBuilder packs named entries into a single archive buffer,
// preserving entry order.
type ArchiveBuilder interface {
	Build(entries []ArchiveEntry) ([]byte, error)
}

// ZipBuilder builds the bundle as an in-memory ZIP.
type ZipBuilder struct{}

// NewZipBuilder creates a ZIP archive builder.
func NewZipBuilder() *ZipBuilder {
	return &ZipBuilder{}
}

// Build writes the entries into a ZIP in the order given.
func (b *ZipBuilder) Build(entries []ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("creating archive entry %s: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("writing archive entry %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}
