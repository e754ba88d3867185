package classifier

import (
	"regexp"
	"strings"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

const (
	// winThreshold is the confidence a detector must exceed to
	// short-circuit the cascade.
	winThreshold = 0.7
	// keywordConfidence is assigned to strong keyword co-occurrence
	// matches that carry no explicit form number.
	keywordConfidence = 0.85
	// defaultConfidence is the floor returned for unrecognized input.
	defaultConfidence = 0.3
)

// detector is one entry in the priority-ordered cascade. It reports a
// candidate classification and whether it matched at all.
type detector struct {
	name   string
	detect func(text string) (domain.Classification, bool)
}

// Classifier runs category detectors in a fixed priority order and
// returns the first result whose confidence clears the threshold.
// It is a pure function of its inputs and never fails.
type Classifier struct {
	detectors []detector
}

func New() *Classifier {
	return &Classifier{
		detectors: []detector{
			{name: "osb_form", detect: detectOSBForm},
			{name: "financial", detect: detectFinancial},
			{name: "creditor", detect: detectCreditor},
			{name: "identity", detect: detectIdentity},
			{name: "legal", detect: detectLegal},
			{name: "correspondence", detect: detectCorrespondence},
		},
	}
}

func (c *Classifier) Classify(text, fileName string) (domain.Classification, error) {
	norm := normalize(text)
	if norm == "" {
		return unknownClassification(), nil
	}

	for _, d := range c.detectors {
		res, ok := d.detect(norm)
		if ok && res.Confidence > winThreshold {
			res.Language = detectLanguage(norm)
			return res, nil
		}
	}

	if res, ok := detectFromFilename(fileName); ok && res.Confidence > defaultConfidence {
		res.Language = detectLanguage(norm)
		return res, nil
	}
	return unknownClassification(), nil
}

func unknownClassification() domain.Classification {
	return domain.Classification{
		DocumentType: "unknown",
		Category:     domain.CategoryUnknown,
		Confidence:   defaultConfidence,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalize lower-cases the text and collapses runs of whitespace so
// keyword checks are layout-independent.
func normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(text), " "))
}

var frenchMarkers = []string{
	"formulaire", "faillite", "proposition de consommateur", "syndic",
	"créancier", "débiteur", "séquestre officiel",
}

var englishMarkers = []string{
	"form", "bankruptcy", "consumer proposal", "trustee", "creditor",
	"debtor", "official receiver",
}

func detectLanguage(norm string) domain.Language {
	fr := containsAny(norm, frenchMarkers)
	en := containsAny(norm, englishMarkers)
	switch {
	case fr && en:
		return domain.LanguageBilingual
	case fr:
		return domain.LanguageFrench
	case en:
		return domain.LanguageEnglish
	default:
		return ""
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsAll(text string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}
