package ports

import (
	"context"
	"io"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, body io.Reader) (*domain.Document, error)
}

// DocumentAnalyzer runs the full intelligence pipeline over already
// extracted text and returns the assembled result.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, documentID, fileName, text string) (*domain.ProcessedDocument, error)
}

// DocumentProcessor is the inbound contract for asynchronous document processing.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// DocumentReader is the inbound read model for document metadata/state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}
