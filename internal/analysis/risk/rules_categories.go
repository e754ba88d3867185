package risk

import (
	"regexp"
	"strings"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

func financialRules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if !containsAny(norm, []string{"account no", "account number", "account #"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_ACCOUNT_IDENTIFIER",
			Description: "No account identifier found on the financial document",
			Severity:    domain.SeverityMedium,
			Impact:      "The statement cannot be tied to a specific account",
			Solution:    "Request a statement copy that shows the account number",
		})
	}
	if !containsAny(norm, []string{"statement period", "period from", "for the period"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_STATEMENT_PERIOD",
			Description: "The statement period is not identified",
			Severity:    domain.SeverityMedium,
			Impact:      "Income and expense review cannot be matched to a reporting month",
			Solution:    "Obtain a statement covering an identified period",
		})
	}
	if !containsAny(norm, []string{"balance"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_BALANCE_INFORMATION",
			Description: "No balance figures appear in the document",
			Severity:    domain.SeverityHigh,
			Impact:      "The account position cannot be verified",
			Solution:    "Obtain a complete statement including balances",
		})
	}
	return issues
}

func creditorRules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if !containsAny(norm, []string{"$"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_AMOUNT_OWING",
			Description: "No amount owing is stated",
			Severity:    domain.SeverityHigh,
			Impact:      "The debt cannot be scheduled without an amount",
			Solution:    "Confirm the outstanding balance with the creditor",
		})
	}
	if !containsAny(norm, []string{"creditor", "collection", "on behalf of"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_CREDITOR_IDENTIFICATION",
			Description: "The creditor behind the demand is not identified",
			Severity:    domain.SeverityMedium,
			Impact:      "The debt cannot be attributed to a creditor of record",
			Solution:    "Identify the original creditor and any assignee",
		})
	}
	return issues
}

func identityRules(norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if strings.Contains(norm, "expired") {
		issues = append(issues, domain.RiskIssue{
			Type:        "EXPIRED_IDENTITY_DOCUMENT",
			Description: "The identity document appears to be expired",
			Severity:    domain.SeverityHigh,
			Impact:      "Expired identification does not satisfy verification requirements",
			Solution:    "Request a piece of current government-issued identification",
		})
	}
	if !containsAny(norm, []string{"expiry", "expires", "expiration", "valid until"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_EXPIRY_DATE",
			Description: "No expiry date is visible on the identity document",
			Severity:    domain.SeverityMedium,
			Impact:      "Validity of the identification cannot be confirmed",
			Solution:    "Capture the document side showing the expiry date",
		})
	}
	if !containsAny(norm, []string{"date of birth", "birth date", "dob"}) {
		issues = append(issues, domain.RiskIssue{
			Type:        "MISSING_DATE_OF_BIRTH",
			Description: "Date of birth is not visible on the identity document",
			Severity:    domain.SeverityMedium,
			Impact:      "Identity verification is incomplete without the date of birth",
			Solution:    "Capture the document side showing the date of birth",
		})
	}
	return issues
}

var (
	sinSpacedRe  = regexp.MustCompile(`\b\d{3}[-\s]\d{3}[-\s]\d{3}\b`)
	sinLabeledRe = regexp.MustCompile(`(?i)\bsin\b\s*[:#]?\s*\d{3}`)
)

var placeholderMarkers = []string{
	"____", "[insert", "[name]", "[date]", "[amount]", "[address]", "«insert",
}

// universalRules run against every document regardless of type. The raw
// text is needed alongside the normalized form because the length check
// should see the original content.
func universalRules(raw, norm string) []domain.RiskIssue {
	var issues []domain.RiskIssue
	if sinSpacedRe.MatchString(norm) || sinLabeledRe.MatchString(norm) {
		issues = append(issues, domain.RiskIssue{
			Type:        "PRIVACY_SIN_EXPOSED",
			Description: "A social insurance number appears in the document text",
			Severity:    domain.SeverityHigh,
			Regulation:  "PIPEDA Principle 7",
			Impact:      "Unredacted personal identifiers expose the client to identity theft",
			Solution:    "Redact the SIN from any copy shared outside the estate file",
		})
	}
	if containsAny(norm, placeholderMarkers) {
		issues = append(issues, domain.RiskIssue{
			Type:        "UNFILLED_PLACEHOLDER",
			Description: "The document contains unfilled placeholder markup",
			Severity:    domain.SeverityMedium,
			Impact:      "Template fields were left blank when the document was prepared",
			Solution:    "Fill in the remaining template fields and regenerate the document",
		})
	}
	if len(strings.TrimSpace(raw)) < minTextLength {
		issues = append(issues, domain.RiskIssue{
			Type:        "INSUFFICIENT_TEXT_CONTENT",
			Description: "Extracted text is suspiciously short",
			Severity:    domain.SeverityMedium,
			Impact:      "The scan may be unreadable or text extraction may have failed",
			Solution:    "Re-scan the document or verify the source file",
		})
	}
	issues = append(issues, domain.RiskIssue{
		Type:        "DOCUMENT_RETENTION_REQUIREMENT",
		Description: "Document is subject to the regulatory retention period",
		Severity:    domain.SeverityLow,
		Regulation:  "BIA Section 26",
		Impact:      "Estate records must remain retrievable for the retention period",
		Solution:    "Archive the document in the estate file per the retention schedule",
	})
	return issues
}

const minTextLength = 100
