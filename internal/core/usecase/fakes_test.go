package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

type statusCall struct {
	status domain.DocumentStatus
	errMsg string
}

type repoFake struct {
	doc           *domain.Document
	getErr        error
	summaryErr    error
	statusErr     error
	failStatusErr error
	statusCalls   []statusCall
	summarySaved  *domain.ProcessedDocument
	created       *domain.Document
	createErr     error
}

func (f *repoFake) Create(_ context.Context, doc *domain.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	copyDoc := *doc
	f.created = &copyDoc
	return nil
}

func (f *repoFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copyDoc := *f.doc
	return &copyDoc, nil
}

func (f *repoFake) UpdateStatus(_ context.Context, _ string, status domain.DocumentStatus, errMessage string) error {
	f.statusCalls = append(f.statusCalls, statusCall{status: status, errMsg: errMessage})
	if status == domain.StatusFailed && f.failStatusErr != nil {
		return f.failStatusErr
	}
	if f.statusErr != nil {
		return f.statusErr
	}
	return nil
}

func (f *repoFake) SaveAnalysisSummary(_ context.Context, _ string, result *domain.ProcessedDocument) error {
	if f.summaryErr != nil {
		return f.summaryErr
	}
	f.summarySaved = result
	return nil
}

type analysesStoreFake struct {
	saved *domain.ProcessedDocument
	err   error
}

func (f *analysesStoreFake) Save(_ context.Context, result *domain.ProcessedDocument) error {
	if f.err != nil {
		return f.err
	}
	f.saved = result
	return nil
}

func (f *analysesStoreFake) GetByDocumentID(context.Context, string) (*domain.ProcessedDocument, error) {
	if f.saved == nil {
		return nil, domain.ErrAnalysisNotFound
	}
	return f.saved, nil
}

type taskStoreFake struct {
	documentID string
	saved      []domain.Task
	err        error
}

func (f *taskStoreFake) SaveTasks(_ context.Context, documentID string, tasks []domain.Task) error {
	if f.err != nil {
		return f.err
	}
	f.documentID = documentID
	f.saved = tasks
	return nil
}

func (f *taskStoreFake) ListByDocument(context.Context, string) ([]domain.Task, error) {
	return f.saved, nil
}

type extractorFake struct {
	text string
	err  error
}

func (f *extractorFake) Extract(context.Context, *domain.Document) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type analyzerFake struct {
	result *domain.ProcessedDocument
	err    error
	gotID  string
	gotTxt string
}

func (f *analyzerFake) Analyze(_ context.Context, documentID, _, text string) (*domain.ProcessedDocument, error) {
	f.gotID = documentID
	f.gotTxt = text
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &domain.ProcessedDocument{DocumentID: documentID}, nil
}

type storageFake struct {
	savedKey  string
	savedBody string
	err       error
}

func (f *storageFake) Save(_ context.Context, key string, data io.Reader) error {
	if f.err != nil {
		return f.err
	}
	raw, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	f.savedKey = key
	f.savedBody = string(raw)
	return nil
}

func (f *storageFake) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

type queueFake struct {
	documentID string
	err        error
}

func (f *queueFake) PublishDocumentUploaded(_ context.Context, documentID string) error {
	if f.err != nil {
		return f.err
	}
	f.documentID = documentID
	return nil
}

func (f *queueFake) SubscribeDocumentUploaded(context.Context, func(context.Context, string) error) error {
	return errors.New("not implemented")
}

type idsFake struct {
	next int
}

func (f *idsFake) NewID() string {
	f.next++
	return fmt.Sprintf("id-%d", f.next)
}
