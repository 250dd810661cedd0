package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jaki95/playlist-library/internal/playlist"
	"github.com/jaki95/playlist-library/internal/storage"
)

// Importer builds a playlist from a given source.
type Importer interface {
	Import(ctx context.Context, source string) (*playlist.Playlist, error)
	Supports(source string) bool
	Name() string
}

const (
	CSVSource  = "csv"
	HTMLSource = "html"
	WebSource  = "web"
)

// CompositeImporter hands a source to each importer that supports it, in
// sequence, until one succeeds.
type CompositeImporter struct {
	importers []Importer
}

func (c *CompositeImporter) Name() string {
	return "composite"
}

func NewCompositeImporter(importers ...Importer) *CompositeImporter {
	return &CompositeImporter{importers: importers}
}

// NewImporter returns the importer used by the library: web pages, HTML
// tables and record files, in that order.
func NewImporter(store storage.Storage) Importer {
	return NewCompositeImporter(
		NewWebImporter(),
		NewHTMLImporter(store),
		NewCSVImporter(store),
	)
}

func (c *CompositeImporter) Supports(source string) bool {
	for _, importer := range c.importers {
		if importer.Supports(source) {
			return true
		}
	}
	return false
}

func (c *CompositeImporter) Import(ctx context.Context, source string) (*playlist.Playlist, error) {
	var errors []error
	for _, importer := range c.importers {
		if !importer.Supports(source) {
			continue
		}
		p, err := importer.Import(ctx, source)
		if err == nil {
			return p, nil
		}
		errors = append(errors, fmt.Errorf("%s: %w", importer.Name(), err))
	}
	if len(errors) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, source)
	}
	if len(errors) == 1 {
		return nil, errors[0]
	}
	return nil, fmt.Errorf("all importers failed: %v", errors)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func isHTML(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".html", ".htm":
		return true
	}
	return false
}
