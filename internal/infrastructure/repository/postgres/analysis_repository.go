package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

// AnalysisRepository stores the full pipeline result as a JSONB blob
// keyed by document. A re-run replaces the previous result.
type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) Save(ctx context.Context, result *domain.ProcessedDocument) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO analyses (document_id, result, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (document_id) DO UPDATE SET result = EXCLUDED.result, created_at = EXCLUDED.created_at
`, result.DocumentID, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

func (r *AnalysisRepository) GetByDocumentID(ctx context.Context, documentID string) (*domain.ProcessedDocument, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT result
FROM analyses
WHERE document_id = $1
`, documentID)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("analysis for document %s: %w", documentID, domain.ErrAnalysisNotFound)
		}
		return nil, fmt.Errorf("scan analysis: %w", err)
	}

	var result domain.ProcessedDocument
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal analysis result: %w", err)
	}
	return &result, nil
}
