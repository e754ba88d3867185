package classifier

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

// formNumberRe matches explicit references such as "form 47" or
// "form no. 31" in normalized text.
var formNumberRe = regexp.MustCompile(`\bform\s*(?:no\.?\s*)?(\d{1,3})\b`)

func detectOSBForm(text string) (domain.Classification, bool) {
	for _, match := range formNumberRe.FindAllStringSubmatch(text, -1) {
		number := match[1]
		title, known := formTitles[number]
		if !known {
			continue
		}
		confidence := 0.9
		if strings.Contains(text, "form "+number) {
			confidence = 0.95
		}
		return osbClassification(number, title, confidence), true
	}

	// No usable form number; fall back to category-defining keyword
	// co-occurrence at a fixed lower confidence.
	type keywordRule struct {
		number   string
		keywords []string
	}
	rules := []keywordRule{
		{"47", []string{"consumer proposal", "division ii"}},
		{"31", []string{"proof of claim"}},
		{"79", []string{"statement of affairs", "business"}},
		{"78", []string{"statement of affairs"}},
		{"65", []string{"monthly income", "expense"}},
		{"76", []string{"report of the trustee on"}},
		{"76", []string{"report of trustee"}},
		{"33", []string{"notice of bankruptcy", "first meeting"}},
		{"69", []string{"notice of bankruptcy", "automatic discharge"}},
		{"1", []string{"assignment for the general benefit of creditors"}},
	}
	for _, rule := range rules {
		if containsAll(text, rule.keywords) {
			return osbClassification(rule.number, formTitles[rule.number], keywordConfidence), true
		}
	}
	return domain.Classification{}, false
}

func osbClassification(number, title string, confidence float64) domain.Classification {
	return domain.Classification{
		DocumentType: osbDocumentType(number),
		Category:     domain.CategoryOSBForm,
		FormNumber:   number,
		FormTitle:    title,
		Confidence:   confidence,
	}
}

func detectFinancial(text string) (domain.Classification, bool) {
	switch {
	case strings.Contains(text, "bank statement"),
		containsAll(text, []string{"opening balance", "closing balance"}):
		return financialClassification("bank_statement", keywordConfidence), true
	case strings.Contains(text, "credit card statement"):
		return financialClassification("credit_card_statement", keywordConfidence), true
	case strings.Contains(text, "notice of assessment"),
		strings.Contains(text, "income tax return"),
		strings.Contains(text, "t1 general"):
		return financialClassification("tax_document", keywordConfidence), true
	case strings.Contains(text, "pay stub"),
		strings.Contains(text, "statement of earnings"):
		return financialClassification("pay_stub", keywordConfidence), true
	case containsAll(text, []string{"account statement", "transaction"}):
		return financialClassification("bank_statement", 0.75), true
	}
	return domain.Classification{}, false
}

func financialClassification(docType string, confidence float64) domain.Classification {
	return domain.Classification{
		DocumentType: docType,
		Category:     domain.CategoryFinancial,
		Confidence:   confidence,
	}
}

func detectCreditor(text string) (domain.Classification, bool) {
	switch {
	case strings.Contains(text, "collection notice"),
		strings.Contains(text, "collection agency"):
		return creditorClassification("collection_notice", keywordConfidence), true
	case strings.Contains(text, "demand for payment"),
		strings.Contains(text, "final demand"),
		strings.Contains(text, "demand letter"):
		return creditorClassification("demand_letter", keywordConfidence), true
	case containsAll(text, []string{"statement of account", "amount owing"}):
		return creditorClassification("creditor_statement", 0.75), true
	}
	return domain.Classification{}, false
}

func creditorClassification(docType string, confidence float64) domain.Classification {
	return domain.Classification{
		DocumentType: docType,
		Category:     domain.CategoryCreditor,
		Confidence:   confidence,
	}
}

func detectIdentity(text string) (domain.Classification, bool) {
	switch {
	case strings.Contains(text, "driver's licence"),
		strings.Contains(text, "driver's license"),
		strings.Contains(text, "driver licence"):
		return identityClassification("drivers_licence", keywordConfidence), true
	case strings.Contains(text, "passport"):
		return identityClassification("passport", keywordConfidence), true
	case strings.Contains(text, "birth certificate"):
		return identityClassification("birth_certificate", keywordConfidence), true
	case strings.Contains(text, "permanent resident card"):
		return identityClassification("pr_card", keywordConfidence), true
	case containsAll(text, []string{"social insurance", "card"}):
		return identityClassification("sin_card", 0.75), true
	}
	return domain.Classification{}, false
}

func identityClassification(docType string, confidence float64) domain.Classification {
	return domain.Classification{
		DocumentType: docType,
		Category:     domain.CategoryIdentity,
		Confidence:   confidence,
	}
}

func detectLegal(text string) (domain.Classification, bool) {
	switch {
	case strings.Contains(text, "court order"):
		return legalClassification("court_order", keywordConfidence), true
	case strings.Contains(text, "affidavit"):
		return legalClassification("affidavit", keywordConfidence), true
	case strings.Contains(text, "power of attorney"):
		return legalClassification("power_of_attorney", keywordConfidence), true
	case strings.Contains(text, "judgment"), strings.Contains(text, "judgement"):
		return legalClassification("judgment", 0.75), true
	}
	return domain.Classification{}, false
}

func legalClassification(docType string, confidence float64) domain.Classification {
	return domain.Classification{
		DocumentType: docType,
		Category:     domain.CategoryLegal,
		Confidence:   confidence,
	}
}

func detectCorrespondence(text string) (domain.Classification, bool) {
	letter := strings.Contains(text, "dear ") &&
		(strings.Contains(text, "sincerely") || strings.Contains(text, "regards"))
	email := containsAll(text, []string{"from:", "subject:"})
	switch {
	case letter:
		return correspondenceClassification("letter"), true
	case email:
		return correspondenceClassification("email"), true
	}
	return domain.Classification{}, false
}

func correspondenceClassification(docType string) domain.Classification {
	return domain.Classification{
		DocumentType: docType,
		Category:     domain.CategoryCorrespondence,
		Confidence:   0.75,
	}
}

var formFileRe = regexp.MustCompile(`form[\s_-]?(\d{1,3})`)

// detectFromFilename is the last resort before the unknown default.
// Filename-only matches carry a reduced 0.6-0.7 confidence.
func detectFromFilename(fileName string) (domain.Classification, bool) {
	base := strings.ToLower(filepath.Base(fileName))
	if base == "" || base == "." {
		return domain.Classification{}, false
	}

	if match := formFileRe.FindStringSubmatch(base); match != nil {
		if title, known := formTitles[match[1]]; known {
			return osbClassification(match[1], title, 0.7), true
		}
	}

	switch {
	case strings.Contains(base, "proposal"):
		return osbClassification("47", formTitles["47"], 0.65), true
	case strings.Contains(base, "claim"):
		return osbClassification("31", formTitles["31"], 0.6), true
	case strings.Contains(base, "bank") && strings.Contains(base, "statement"):
		return financialClassification("bank_statement", 0.65), true
	case strings.Contains(base, "statement"):
		return financialClassification("bank_statement", 0.6), true
	case strings.Contains(base, "passport"):
		return identityClassification("passport", 0.65), true
	case strings.Contains(base, "licence"), strings.Contains(base, "license"):
		return identityClassification("drivers_licence", 0.6), true
	case strings.Contains(base, "affidavit"):
		return legalClassification("affidavit", 0.65), true
	case strings.Contains(base, "letter"):
		return domain.Classification{
			DocumentType: "letter",
			Category:     domain.CategoryCorrespondence,
			Confidence:   0.6,
		}, true
	}
	return domain.Classification{}, false
}
