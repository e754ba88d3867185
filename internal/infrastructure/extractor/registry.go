// Package extractor routes stored documents to a format-specific text
// extractor by file extension.
package extractor

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/avelsher/estatedocs/internal/core/domain"
	"github.com/avelsher/estatedocs/internal/core/ports"
)

type Registry struct {
	byExt    map[string]ports.TextExtractor
	fallback ports.TextExtractor
}

func NewRegistry(plain, pdf, xlsx ports.TextExtractor) *Registry {
	return &Registry{
		byExt: map[string]ports.TextExtractor{
			".pdf":  pdf,
			".xlsx": xlsx,
		},
		fallback: plain,
	}
}

func (r *Registry) Extract(ctx context.Context, doc *domain.Document) (string, error) {
	ext := strings.ToLower(filepath.Ext(doc.Filename))
	if e, ok := r.byExt[ext]; ok {
		return e.Extract(ctx, doc)
	}
	return r.fallback.Extract(ctx, doc)
}
