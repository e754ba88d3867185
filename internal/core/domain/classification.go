package domain

type DocumentCategory string

const (
	CategoryOSBForm        DocumentCategory = "OSB_FORM"
	CategoryFinancial      DocumentCategory = "FINANCIAL"
	CategoryCreditor       DocumentCategory = "CREDITOR"
	CategoryIdentity       DocumentCategory = "IDENTITY"
	CategoryLegal          DocumentCategory = "LEGAL"
	CategoryCorrespondence DocumentCategory = "CORRESPONDENCE"
	CategoryUnknown        DocumentCategory = "UNKNOWN"
)

type Language string

const (
	LanguageEnglish   Language = "EN"
	LanguageFrench    Language = "FR"
	LanguageBilingual Language = "Bilingual"
)

// Classification is the outcome of the detector cascade. At most one
// document type is selected per run; Confidence is the confidence of the
// winning detector.
type Classification struct {
	DocumentType string           `json:"documentType"`
	Category     DocumentCategory `json:"documentCategory"`
	FormNumber   string           `json:"formNumber,omitempty"`
	FormVersion  string           `json:"formVersion,omitempty"`
	FormTitle    string           `json:"formTitle,omitempty"`
	Language     Language         `json:"language,omitempty"`
	Confidence   float64          `json:"confidence"`
}
