package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/storefront/backend/internal/domain"
)

// fileCatalog is the on-disk layout of a catalog seed file. JSON files parse too.
type fileCatalog struct {
	Products []domain.Product `yaml:"products"`
}

// FileSource reads products from a YAML or JSON file on every call
type FileSource struct {
	path string
}

var _ domain.CatalogSource = (*FileSource)(nil)

// NewFileSource creates a source backed by the file at path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ListProducts reads and validates the catalog file
func (s *FileSource) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseProducts(data)
}

// ParseProducts decodes a catalog document and checks that ids are present and unique
func ParseProducts(data []byte) ([]domain.Product, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Products))
	for i, p := range doc.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: product %d has no id", domain.ErrInvalidCatalog, i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %q", domain.ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return doc.Products, nil
}
