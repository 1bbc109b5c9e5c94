package catalogsrc

import (
	"context"
	_ "embed"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the built-in OMX Digital catalog source.
func NewEmbeddedSource() EmbeddedSource { return EmbeddedSource{} }

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Load(_ context.Context) ([]faq.Entry, error) {
	return Decode(defaultCatalog, FormatYAML)
}

var _ faq.CatalogSource = EmbeddedSource{}
