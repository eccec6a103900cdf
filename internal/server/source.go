package server

import (
	"context"

	"hara/internal/catalog"
	"hara/internal/index"
	"hara/internal/manifest"
)

// Source answers record queries for the API handlers.
type Source interface {
	Search(ctx context.Context, q catalog.Query) (catalog.Catalog, error)
}

// manifestSource reads the manifest file on each query.
type manifestSource struct {
	path   string
	format manifest.Format
}

// NewManifestSource returns a Source backed by the manifest file at path.
func NewManifestSource(path string, format manifest.Format) Source {
	return &manifestSource{path: path, format: format}
}

func (m *manifestSource) Search(_ context.Context, q catalog.Query) (catalog.Catalog, error) {
	c, err := manifest.ReadFormat(m.path, m.format)
	if err != nil {
		return nil, err
	}
	return c.Search(q), nil
}

// indexSource queries the SQLite search index.
type indexSource struct {
	store *index.Store
}

// NewIndexSource returns a Source backed by an open index.
func NewIndexSource(store *index.Store) Source {
	return &indexSource{store: store}
}

func (s *indexSource) Search(ctx context.Context, q catalog.Query) (catalog.Catalog, error) {
	return s.store.Search(ctx, q)
}
