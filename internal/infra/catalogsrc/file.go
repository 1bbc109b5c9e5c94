package catalogsrc

import (
	"context"
	"fmt"
	"os"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
)

// FileSource reads the catalog from a YAML, JSON or TOML file on every Load.
type FileSource struct {
	path   string
	format Format
}

// NewFileSource validates the extension up front so misconfiguration fails at startup.
func NewFileSource(path string) (*FileSource, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{path: path, format: format}, nil
}

func (s *FileSource) Name() string { return "file:" + s.path }

func (s *FileSource) Load(_ context.Context) ([]faq.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Decode(data, s.format)
}

var _ faq.CatalogSource = (*FileSource)(nil)
