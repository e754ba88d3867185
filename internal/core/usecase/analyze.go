package usecase

import (
	"context"
	"fmt"

	"github.com/avelsher/estatedocs/internal/core/domain"
	"github.com/avelsher/estatedocs/internal/core/ports"
)

// AnalyzeDocumentUseCase is the pipeline orchestrator. It calls the six
// analysis components in a fixed sequence, threading each stage's output
// into the next, and assembles the combined result. It owns no logic
// beyond sequencing and error wrapping, and performs no retries.
type AnalyzeDocumentUseCase struct {
	classifier ports.Classifier
	metadata   ports.MetadataExtractor
	risks      ports.RiskAssessor
	summarizer ports.Summarizer
	tasks      ports.TaskGenerator
	placement  ports.PlacementPlanner
}

func NewAnalyzeDocumentUseCase(
	classifier ports.Classifier,
	metadata ports.MetadataExtractor,
	risks ports.RiskAssessor,
	summarizer ports.Summarizer,
	tasks ports.TaskGenerator,
	placement ports.PlacementPlanner,
) *AnalyzeDocumentUseCase {
	return &AnalyzeDocumentUseCase{
		classifier: classifier,
		metadata:   metadata,
		risks:      risks,
		summarizer: summarizer,
		tasks:      tasks,
		placement:  placement,
	}
}

func (uc *AnalyzeDocumentUseCase) Analyze(_ context.Context, documentID, fileName, text string) (*domain.ProcessedDocument, error) {
	result, err := uc.run(documentID, fileName, text)
	if err != nil {
		return nil, fmt.Errorf("document processing failed: %w", err)
	}
	return result, nil
}

func (uc *AnalyzeDocumentUseCase) run(documentID, fileName, text string) (*domain.ProcessedDocument, error) {
	cls, err := uc.classifier.Classify(text, fileName)
	if err != nil {
		return nil, fmt.Errorf("classify document: %w", err)
	}

	meta, err := uc.metadata.Extract(text, cls)
	if err != nil {
		return nil, fmt.Errorf("extract metadata: %w", err)
	}

	assessment, err := uc.risks.Assess(text, cls, meta)
	if err != nil {
		return nil, fmt.Errorf("assess risks: %w", err)
	}

	summary, err := uc.summarizer.Summarize(text, cls, meta)
	if err != nil {
		return nil, fmt.Errorf("summarize document: %w", err)
	}

	tasks, err := uc.tasks.Generate(documentID, fileName, assessment.Issues)
	if err != nil {
		return nil, fmt.Errorf("generate tasks: %w", err)
	}

	plan, err := uc.placement.Plan(cls, meta, fileName, assessment.OverallRiskLevel)
	if err != nil {
		return nil, fmt.Errorf("plan placement: %w", err)
	}

	return &domain.ProcessedDocument{
		DocumentID:           documentID,
		Classification:       cls,
		Metadata:             meta,
		Summary:              summary.Summary,
		KeyDetails:           summary.KeyDetails,
		Risks:                assessment.Issues,
		RiskLevel:            assessment.OverallRiskLevel,
		ComplianceScore:      assessment.ComplianceScore,
		TimelineRequirements: assessment.TimelineRequirements,
		Tasks:                tasks,
		DocumentPlacement:    plan,
	}, nil
}
