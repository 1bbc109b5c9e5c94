package catalogsrc

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
)

// Format names a catalog document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

type document struct {
	Entries []faq.Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// FormatFromPath infers the catalog format from a file or object key extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
	}
}

// Decode parses a catalog document with a top-level "entries" list.
func Decode(data []byte, format Format) ([]faq.Entry, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", format, err)
	}
	return doc.Entries, nil
}

// Encode renders entries as a catalog document.
func Encode(entries []faq.Entry, format Format) ([]byte, error) {
	doc := document{Entries: entries}
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatTOML:
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(doc); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}
