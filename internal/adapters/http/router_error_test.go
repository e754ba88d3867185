package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

type ingestErrFake struct {
	err error
}

func (f ingestErrFake) Upload(context.Context, string, string, io.Reader) (*domain.Document, error) {
	return nil, f.err
}

type docsFake struct {
	err error
}

func (f docsFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Document{ID: "doc-1", Filename: "a", MimeType: "text/plain", StoragePath: "a", Status: domain.StatusReady}, nil
}

type analysesFake struct {
	err    error
	result *domain.ProcessedDocument
}

func (f analysesFake) Save(context.Context, *domain.ProcessedDocument) error { return nil }

func (f analysesFake) GetByDocumentID(_ context.Context, documentID string) (*domain.ProcessedDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &domain.ProcessedDocument{DocumentID: documentID}, nil
}

type tasksFake struct {
	err   error
	tasks []domain.Task
}

func (f tasksFake) SaveTasks(context.Context, string, []domain.Task) error { return nil }

func (f tasksFake) ListByDocument(context.Context, string) ([]domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks, nil
}

func TestGetDocumentByIDReturns404ForNotFound(t *testing.T) {
	handler := NewRouter(
		ingestErrFake{},
		docsFake{err: domain.WrapError(domain.ErrDocumentNotFound, "get", errors.New("id=missing"))},
		analysesFake{},
		tasksFake{},
		testConfig(),
		nil,
	).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/missing", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestGetAnalysisReturns404BeforeProcessingFinished(t *testing.T) {
	handler := NewRouter(
		ingestErrFake{},
		docsFake{},
		analysesFake{err: domain.WrapError(domain.ErrAnalysisNotFound, "get analysis", errors.New("no rows"))},
		tasksFake{},
		testConfig(),
		nil,
	).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/analysis", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestGetAnalysisReturnsStoredResult(t *testing.T) {
	handler := NewRouter(
		ingestErrFake{},
		docsFake{},
		analysesFake{result: &domain.ProcessedDocument{
			DocumentID: "doc-1",
			RiskLevel:  domain.RiskRed,
		}},
		tasksFake{},
		testConfig(),
		nil,
	).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/analysis", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["riskLevel"] != "RED" {
		t.Fatalf("expected riskLevel RED, got %v", resp["riskLevel"])
	}
}

func TestGetTasksReturnsTaskList(t *testing.T) {
	handler := NewRouter(
		ingestErrFake{},
		docsFake{},
		analysesFake{},
		tasksFake{tasks: []domain.Task{{
			TaskID:   "task-1",
			Severity: domain.SeverityHigh,
			Status:   domain.TaskStatusOpen,
		}}},
		testConfig(),
		nil,
	).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/doc-1/tasks", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var resp struct {
		DocumentID string        `json:"documentId"`
		Tasks      []domain.Task `json:"tasks"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.DocumentID != "doc-1" || len(resp.Tasks) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
