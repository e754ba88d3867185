package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

// Document is the stored record of an uploaded file together with the
// headline results of its latest analysis.
type Document struct {
	ID              string         `json:"id"`
	Filename        string         `json:"filename"`
	MimeType        string         `json:"mime_type"`
	StoragePath     string         `json:"storage_path"`
	DocumentType    string         `json:"document_type,omitempty"`
	Category        string         `json:"category,omitempty"`
	FormNumber      string         `json:"form_number,omitempty"`
	ClientName      string         `json:"client_name,omitempty"`
	Confidence      float64        `json:"confidence,omitempty"`
	RiskLevel       string         `json:"risk_level,omitempty"`
	ComplianceScore float64        `json:"compliance_score,omitempty"`
	Summary         string         `json:"summary,omitempty"`
	Status          DocumentStatus `json:"status"`
	Error           string         `json:"error,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
