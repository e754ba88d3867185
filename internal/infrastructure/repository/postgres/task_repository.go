package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// SaveTasks replaces the task set for a document inside one transaction.
// Re-running the pipeline regenerates tasks from scratch, so stale rows
// from the previous run must not survive.
func (r *TaskRepository) SaveTasks(ctx context.Context, documentID string, tasks []domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tasks tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("delete previous tasks: %w", err)
	}

	now := time.Now().UTC()
	for _, task := range tasks {
		_, err := tx.ExecContext(ctx, `
INSERT INTO tasks (
	id, document_id, source_reference, title, description, task_type, severity, status,
	due_at, days_remaining, assigned_role, action_type, action_instructions, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
`,
			task.TaskID, documentID, task.SourceReference, task.TaskTitle, task.TaskDescription,
			string(task.TaskType), string(task.Severity), string(task.Status),
			task.DueDate, task.DaysRemaining, task.AssignedTo.UserRole,
			task.ActionRequired.ActionType, task.ActionRequired.ActionInstructions, now,
		)
		if err != nil {
			return fmt.Errorf("insert task %s: %w", task.TaskID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tasks tx: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByDocument(ctx context.Context, documentID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, document_id, source_reference, title, description, task_type, severity, status,
	due_at, days_remaining, assigned_role, action_type, action_instructions
FROM tasks
WHERE document_id = $1
ORDER BY created_at, id
`, documentID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

type taskScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row taskScanner) (domain.Task, error) {
	var task domain.Task
	var documentID, taskType, severity, status string
	err := row.Scan(
		&task.TaskID,
		&documentID,
		&task.SourceReference,
		&task.TaskTitle,
		&task.TaskDescription,
		&taskType,
		&severity,
		&status,
		&task.DueDate,
		&task.DaysRemaining,
		&task.AssignedTo.UserRole,
		&task.ActionRequired.ActionType,
		&task.ActionRequired.ActionInstructions,
	)
	if err != nil {
		return domain.Task{}, err
	}
	task.TaskType = domain.TaskType(taskType)
	task.Severity = domain.Severity(severity)
	task.Status = domain.TaskStatus(status)
	task.DocumentReferences = []domain.DocumentReference{{DocumentID: documentID}}
	return task, nil
}
