package metadata

import (
	"regexp"
	"strings"

	"github.com/avelsher/estatedocs/internal/core/domain"
	"github.com/avelsher/estatedocs/internal/core/ports"
)

// fieldPattern is one labeled-field regex. The first capture group is
// the extracted value.
type fieldPattern struct {
	field string
	re    *regexp.Regexp
}

// Extraction schemas exist only for forms 31 and 47; every other
// document gets the base record with no extracted fields.
var fieldSchemas = map[string][]fieldPattern{
	"31": {
		{"debtor_name", regexp.MustCompile(`(?i)(?:name of )?debtor(?:'s name)?\s*[:\-]\s*([^\n]{2,80})`)},
		{"debtor_name", regexp.MustCompile(`(?i)in the matter of the bankruptcy of\s+([^\n,]{2,80})`)},
		{"creditor_name", regexp.MustCompile(`(?i)(?:name of )?creditor(?:'s name)?\s*[:\-]\s*([^\n]{2,80})`)},
		{"claim_amount", regexp.MustCompile(`(?i)amount of claim\s*[:\-]?\s*\$?\s*([\d,]+(?:\.\d{2})?)`)},
		{"estate_number", regexp.MustCompile(`(?i)estate\s*(?:no\.?|number)\s*[:\-]?\s*([0-9][0-9\-/]{0,20})`)},
		{"date_of_bankruptcy", regexp.MustCompile(`(?i)date of (?:bankruptcy|initial bankruptcy event)\s*[:\-]?\s*([^\n]{4,40})`)},
	},
	"47": {
		{"debtor_name", regexp.MustCompile(`(?i)(?:consumer )?debtor(?:'s name)?\s*[:\-]\s*([^\n]{2,80})`)},
		{"debtor_name", regexp.MustCompile(`(?i)in the matter of the consumer proposal of\s+([^\n,]{2,80})`)},
		{"administrator_name", regexp.MustCompile(`(?i)administrator(?:'s name)?\s*[:\-]\s*([^\n]{2,80})`)},
		{"filing_date", regexp.MustCompile(`(?i)(?:date of filing|filing date|filed on)\s*[:\-]?\s*([^\n]{4,40})`)},
		{"estate_number", regexp.MustCompile(`(?i)estate\s*(?:no\.?|number)\s*[:\-]?\s*([0-9][0-9\-/]{0,20})`)},
	},
}

// Extractor builds the immutable per-run metadata record. It never
// fails: fields that do not match are reported by omission.
type Extractor struct {
	clock ports.Clock
}

func New(clock ports.Clock) *Extractor {
	return &Extractor{clock: clock}
}

func (e *Extractor) Extract(text string, cls domain.Classification) (domain.DocumentMetadata, error) {
	meta := domain.DocumentMetadata{
		DocumentType:     cls.DocumentType,
		FormType:         cls.FormTitle,
		FormNumber:       cls.FormNumber,
		ConfidenceScore:  cls.Confidence,
		ProcessingStatus: domain.ProcessingComplete,
		UploadTimestamp:  e.clock.Now(),
	}

	schema, ok := fieldSchemas[cls.FormNumber]
	if !ok {
		return meta, nil
	}

	fields := map[string]string{}
	for _, pattern := range schema {
		if _, seen := fields[pattern.field]; seen {
			continue
		}
		match := pattern.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value := cleanValue(match[1])
		if value == "" {
			continue
		}
		fields[pattern.field] = value
		if pattern.field == "debtor_name" && meta.ClientName == "" {
			meta.ClientName = value
		}
	}
	if len(fields) > 0 {
		meta.ExtractedFields = fields
	}
	return meta, nil
}

func cleanValue(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.Trim(value, ".,;:")
	return strings.TrimSpace(value)
}
