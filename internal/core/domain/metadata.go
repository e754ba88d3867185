package domain

import "time"

type ProcessingStatus string

const (
	ProcessingPending  ProcessingStatus = "pending"
	ProcessingComplete ProcessingStatus = "complete"
	ProcessingFailed   ProcessingStatus = "failed"
)

// DocumentMetadata is built once per pipeline run and never mutated
// afterwards. Fields that could not be extracted are simply absent from
// ExtractedFields; absence is not an error.
type DocumentMetadata struct {
	DocumentType     string            `json:"document_type"`
	FormType         string            `json:"form_type,omitempty"`
	FormNumber       string            `json:"form_number,omitempty"`
	ConfidenceScore  float64           `json:"confidence_score"`
	ProcessingStatus ProcessingStatus  `json:"processing_status"`
	UploadTimestamp  time.Time         `json:"upload_timestamp"`
	ClientName       string            `json:"client_name,omitempty"`
	ExtractedFields  map[string]string `json:"extracted_fields,omitempty"`
}
