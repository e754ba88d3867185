package domain

import "time"

type TaskType string

const (
	TaskDocumentCorrection  TaskType = "DOCUMENT_CORRECTION"
	TaskSignatureRequired   TaskType = "SIGNATURE_REQUIRED"
	TaskDataCorrection      TaskType = "DATA_CORRECTION"
	TaskTimelineRequirement TaskType = "TIMELINE_REQUIREMENT"
	TaskPrivacySecurity     TaskType = "PRIVACY_SECURITY"
	TaskVerification        TaskType = "VERIFICATION"
	TaskGeneral             TaskType = "GENERAL_TASK"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskAssignment struct {
	UserRole string `json:"userRole"`
}

type DocumentReference struct {
	DocumentID   string `json:"documentId"`
	DocumentName string `json:"documentName,omitempty"`
	Page         int    `json:"page,omitempty"`
	Field        string `json:"field,omitempty"`
}

type TaskAction struct {
	ActionType         string `json:"actionType"`
	ActionInstructions string `json:"actionInstructions"`
}

// Task is a remediation item derived from one risk finding. The pipeline
// creates tasks as open and never mutates them; lifecycle transitions
// belong to the consuming system.
type Task struct {
	TaskID             string              `json:"taskId"`
	SourceReference    string              `json:"sourceReference"`
	TaskTitle          string              `json:"taskTitle"`
	TaskDescription    string              `json:"taskDescription"`
	TaskType           TaskType            `json:"taskType"`
	Severity           Severity            `json:"severity"`
	Status             TaskStatus          `json:"status"`
	DueDate            *time.Time          `json:"dueDate,omitempty"`
	DaysRemaining      int                 `json:"daysRemaining,omitempty"`
	AssignedTo         TaskAssignment      `json:"assignedTo"`
	DocumentReferences []DocumentReference `json:"documentReferences"`
	ActionRequired     TaskAction          `json:"actionRequired"`
}
