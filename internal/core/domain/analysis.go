package domain

// DocumentPlacement is a suggested archival location. Planning only; no
// filesystem operation is ever performed on it by this service.
type DocumentPlacement struct {
	Folder   string   `json:"folder"`
	Category string   `json:"category"`
	FileName string   `json:"fileName"`
	Path     string   `json:"path"`
	Tags     []string `json:"tags"`
}

// ProcessedDocument is the complete output of one pipeline run. It is
// produced fresh per invocation and never cached by the pipeline itself.
type ProcessedDocument struct {
	DocumentID           string                `json:"documentId"`
	Classification       Classification        `json:"classification"`
	Metadata             DocumentMetadata      `json:"metadata"`
	Summary              string                `json:"summary"`
	KeyDetails           KeyDetails            `json:"keyDetails"`
	Risks                []RiskIssue           `json:"risks"`
	RiskLevel            RiskLevel             `json:"riskLevel"`
	ComplianceScore      float64               `json:"complianceScore"`
	TimelineRequirements []TimelineRequirement `json:"timelineRequirements,omitempty"`
	Tasks                []Task                `json:"tasks"`
	DocumentPlacement    DocumentPlacement     `json:"documentPlacement"`
}
