package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

func TestSaveTasksReplacesPreviousRunInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewTaskRepository(db)
	due := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM tasks").
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO tasks").
		WithArgs("task-1", "doc-1", "risk-1", "Add missing debtor signature", "Debtor signature missing",
			string(domain.TaskSignatureRequired), string(domain.SeverityCritical), string(domain.TaskStatusOpen),
			due, 1, "trustee", "OBTAIN_SIGNATURE", "Obtain debtor signature", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.SaveTasks(context.Background(), "doc-1", []domain.Task{{
		TaskID:          "task-1",
		SourceReference: "risk-1",
		TaskTitle:       "Add missing debtor signature",
		TaskDescription: "Debtor signature missing",
		TaskType:        domain.TaskSignatureRequired,
		Severity:        domain.SeverityCritical,
		Status:          domain.TaskStatusOpen,
		DueDate:         &due,
		DaysRemaining:   1,
		AssignedTo:      domain.TaskAssignment{UserRole: "trustee"},
		ActionRequired: domain.TaskAction{
			ActionType:         "OBTAIN_SIGNATURE",
			ActionInstructions: "Obtain debtor signature",
		},
	}})
	if err != nil {
		t.Fatalf("SaveTasks() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListByDocumentScansTaskRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewTaskRepository(db)
	due := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "document_id", "source_reference", "title", "description", "task_type",
		"severity", "status", "due_at", "days_remaining", "assigned_role", "action_type", "action_instructions",
	}).AddRow(
		"task-1", "doc-1", "risk-1", "Complete creditor provisions", "Creditor provisions incomplete",
		string(domain.TaskDocumentCorrection), string(domain.SeverityMedium), string(domain.TaskStatusOpen),
		due, 7, "case_manager", "UPDATE_DOCUMENT", "Fill in the creditor provisions section",
	)

	mock.ExpectQuery("FROM tasks").
		WithArgs("doc-1").
		WillReturnRows(rows)

	tasks, err := repo.ListByDocument(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("ListByDocument() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].AssignedTo.UserRole != "case_manager" {
		t.Fatalf("assigned role = %q", tasks[0].AssignedTo.UserRole)
	}
	if len(tasks[0].DocumentReferences) != 1 || tasks[0].DocumentReferences[0].DocumentID != "doc-1" {
		t.Fatalf("document references = %+v", tasks[0].DocumentReferences)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
