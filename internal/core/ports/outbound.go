package ports

import (
	"context"
	"io"
	"time"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveAnalysisSummary(ctx context.Context, id string, result *domain.ProcessedDocument) error
}

// AnalysisRepository stores the full pipeline output per document.
type AnalysisRepository interface {
	Save(ctx context.Context, result *domain.ProcessedDocument) error
	GetByDocumentID(ctx context.Context, documentID string) (*domain.ProcessedDocument, error)
}

// TaskStore persists the remediation tasks generated for a document.
type TaskStore interface {
	SaveTasks(ctx context.Context, documentID string, tasks []domain.Task) error
	ListByDocument(ctx context.Context, documentID string) ([]domain.Task, error)
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes upload events.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor extracts plain text from a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, error)
}

// Classifier maps extracted text plus the original file name to a
// document type. Implementations are total: empty or unrecognized input
// yields the low-confidence unknown classification, never an error.
type Classifier interface {
	Classify(text, fileName string) (domain.Classification, error)
}

// MetadataExtractor builds the per-run metadata record, including any
// labeled fields the form's schema defines.
type MetadataExtractor interface {
	Extract(text string, cls domain.Classification) (domain.DocumentMetadata, error)
}

// RiskAssessor runs the per-type rule sets and aggregates findings into
// a compliance score and overall risk level.
type RiskAssessor interface {
	Assess(text string, cls domain.Classification, meta domain.DocumentMetadata) (domain.RiskAssessment, error)
}

// Summarizer produces the narrative summary and structured key details.
type Summarizer interface {
	Summarize(text string, cls domain.Classification, meta domain.DocumentMetadata) (domain.Summarization, error)
}

// TaskGenerator converts qualifying risk findings into remediation tasks.
type TaskGenerator interface {
	Generate(documentID, documentName string, risks []domain.RiskIssue) ([]domain.Task, error)
}

// PlacementPlanner derives the suggested archival location and tags.
type PlacementPlanner interface {
	Plan(cls domain.Classification, meta domain.DocumentMetadata, fileName string, riskLevel domain.RiskLevel) (domain.DocumentPlacement, error)
}

// Clock supplies the pipeline's notion of now so deadline arithmetic is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies unique identifiers for findings and tasks.
type IDGenerator interface {
	NewID() string
}
