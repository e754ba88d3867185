package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelsher/estatedocs/internal/core/domain"
	"github.com/avelsher/estatedocs/internal/core/ports"
)

// ProcessDocumentUseCase drives the asynchronous path: load the stored
// document, extract its text, run the analysis pipeline and persist the
// result, updating the document status along the way.
type ProcessDocumentUseCase struct {
	repo      ports.DocumentRepository
	analyses  ports.AnalysisRepository
	tasks     ports.TaskStore
	extractor ports.TextExtractor
	analyzer  ports.DocumentAnalyzer
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	analyses ports.AnalysisRepository,
	tasks ports.TaskStore,
	extractor ports.TextExtractor,
	analyzer ports.DocumentAnalyzer,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:      repo,
		analyses:  analyses,
		tasks:     tasks,
		extractor: extractor,
		analyzer:  analyzer,
	}
}

func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.markStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	result, err := uc.processPipeline(ctx, documentID)
	if err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.persistResult(ctx, result); err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.markStatus(ctx, documentID, domain.StatusReady, ""); err != nil {
		return fmt.Errorf("set status=ready: %w", err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) processPipeline(ctx context.Context, documentID string) (*domain.ProcessedDocument, error) {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetch document by id: %w", err)
	}

	text, err := uc.extractText(ctx, doc)
	if err != nil {
		return nil, err
	}

	result, err := uc.analyzer.Analyze(ctx, doc.ID, doc.Filename, text)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ProcessDocumentUseCase) extractText(ctx context.Context, doc *domain.Document) (string, error) {
	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	if text == "" {
		return "", domain.WrapError(domain.ErrInvalidInput, "extract text", errors.New("empty extracted text"))
	}
	return text, nil
}

func (uc *ProcessDocumentUseCase) persistResult(ctx context.Context, result *domain.ProcessedDocument) error {
	if err := uc.analyses.Save(ctx, result); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	if err := uc.tasks.SaveTasks(ctx, result.DocumentID, result.Tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	if err := uc.repo.SaveAnalysisSummary(ctx, result.DocumentID, result); err != nil {
		return fmt.Errorf("save analysis summary: %w", err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) markStatus(ctx context.Context, documentID string, status domain.DocumentStatus, errMessage string) error {
	return uc.repo.UpdateStatus(ctx, documentID, status, errMessage)
}

func (uc *ProcessDocumentUseCase) markFailed(ctx context.Context, documentID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.markStatus(ctx, documentID, domain.StatusFailed, processErr.Error())
}
