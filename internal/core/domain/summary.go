package domain

// FinancialSnapshot captures the monetary figures a summary could pull
// out of the text. Breakdown values keep their currency prefix.
type FinancialSnapshot struct {
	TotalAmount string            `json:"totalAmount,omitempty"`
	Currency    string            `json:"currency,omitempty"`
	Breakdown   map[string]string `json:"breakdown,omitempty"`
}

type KeyDetails struct {
	DocumentType      string             `json:"documentType"`
	Parties           []string           `json:"parties,omitempty"`
	Dates             map[string]string  `json:"dates,omitempty"`
	FinancialSnapshot *FinancialSnapshot `json:"financialSnapshot,omitempty"`
	LegalImplications []string           `json:"legalImplications,omitempty"`
	NextSteps         []string           `json:"nextSteps,omitempty"`
}

type Summarization struct {
	Summary    string     `json:"summary"`
	KeyDetails KeyDetails `json:"keyDetails"`
}
