// Package bootstrap wires configuration, infrastructure adapters and
// use cases into a runnable application for both binaries.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/avelsher/estatedocs/internal/analysis/classifier"
	"github.com/avelsher/estatedocs/internal/analysis/metadata"
	"github.com/avelsher/estatedocs/internal/analysis/placement"
	"github.com/avelsher/estatedocs/internal/analysis/risk"
	"github.com/avelsher/estatedocs/internal/analysis/summarize"
	"github.com/avelsher/estatedocs/internal/analysis/taskgen"
	"github.com/avelsher/estatedocs/internal/config"
	"github.com/avelsher/estatedocs/internal/core/ports"
	"github.com/avelsher/estatedocs/internal/core/usecase"
	"github.com/avelsher/estatedocs/internal/infrastructure/extractor"
	"github.com/avelsher/estatedocs/internal/infrastructure/extractor/pdftext"
	"github.com/avelsher/estatedocs/internal/infrastructure/extractor/plaintext"
	"github.com/avelsher/estatedocs/internal/infrastructure/extractor/xlsxtext"
	"github.com/avelsher/estatedocs/internal/infrastructure/queue/nats"
	"github.com/avelsher/estatedocs/internal/infrastructure/repository/postgres"
	"github.com/avelsher/estatedocs/internal/infrastructure/resilience"
	"github.com/avelsher/estatedocs/internal/infrastructure/storage/localfs"
	"github.com/avelsher/estatedocs/internal/infrastructure/system"
)

type App struct {
	Config config.Config

	Queue    ports.MessageQueue
	Repo     ports.DocumentRepository
	Analyses ports.AnalysisRepository
	Tasks    ports.TaskStore

	IngestUC  ports.DocumentIngestor
	ProcessUC ports.DocumentProcessor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	analyses := postgres.NewAnalysisRepository(db)
	tasks := postgres.NewTaskRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: resilience.NewExecutor(resilience.DefaultConfig()),
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	roleOverrides, err := config.LoadRoleMap(cfg.RoleMapPath)
	if err != nil {
		return nil, fmt.Errorf("load role map: %w", err)
	}

	clock := system.Clock{}
	ids := system.UUIDGenerator{}

	texts := extractor.NewRegistry(
		plaintext.NewExtractor(storage),
		pdftext.New(storage),
		xlsxtext.New(storage),
	)

	analyzeUC := usecase.NewAnalyzeDocumentUseCase(
		classifier.New(),
		metadata.New(clock),
		risk.New(clock, ids),
		summarize.New(),
		taskgen.New(clock, ids, roleOverrides),
		placement.New(clock),
	)

	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue, ids)
	processUC := usecase.NewProcessDocumentUseCase(repo, analyses, tasks, texts, analyzeUC)

	return &App{
		Config: cfg,

		Queue:    queue,
		Repo:     repo,
		Analyses: analyses,
		Tasks:    tasks,

		IngestUC:  ingestUC,
		ProcessUC: processUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
