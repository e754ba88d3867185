package summarize

import (
	"strings"
	"testing"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

func TestSummarizeBankStatementMasksAccountNumber(t *testing.T) {
	s := New()
	text := `TD Canada Trust
Account holder: Jane Roe
Account No: 1234 5678 9012
Statement period 2026-01-01 to 2026-01-31
Opening balance: $5,000.00
Closing balance: $3,250.75
Total deposits: $1,200.00
Total withdrawals: $2,949.25`

	result, err := s.Summarize(text, domain.Classification{
		DocumentType: "bank_statement",
		Category:     domain.CategoryFinancial,
	}, domain.DocumentMetadata{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if strings.Contains(result.Summary, "1234 5678") {
		t.Fatalf("summary leaks the full account number: %q", result.Summary)
	}
	if !strings.Contains(result.Summary, "****9012") {
		t.Fatalf("summary missing masked account suffix: %q", result.Summary)
	}
	if !strings.Contains(result.Summary, "TD Canada Trust") {
		t.Fatalf("summary missing institution: %q", result.Summary)
	}

	snap := result.KeyDetails.FinancialSnapshot
	if snap == nil {
		t.Fatalf("expected a financial snapshot")
	}
	if snap.Breakdown["opening_balance"] != "$5,000.00" {
		t.Fatalf("opening_balance = %q", snap.Breakdown["opening_balance"])
	}
	if snap.Breakdown["closing_balance"] != "$3,250.75" {
		t.Fatalf("closing_balance = %q", snap.Breakdown["closing_balance"])
	}
	if snap.TotalAmount != "$3,250.75" {
		t.Fatalf("snapshot total = %q", snap.TotalAmount)
	}
	if result.KeyDetails.Dates["period_start"] != "2026-01-01" || result.KeyDetails.Dates["period_end"] != "2026-01-31" {
		t.Fatalf("period dates = %v", result.KeyDetails.Dates)
	}
}

func TestSummarizeProofOfClaim(t *testing.T) {
	s := New()
	text := `Form 31 Proof of Claim
Name of creditor: ABC Collections Ltd
In the matter of the bankruptcy of Jane Roe
Amount of claim: $12,500.00
Dated March 3, 2026`

	result, err := s.Summarize(text, domain.Classification{
		DocumentType: "OSB_Form_31",
		Category:     domain.CategoryOSBForm,
		FormNumber:   "31",
		FormTitle:    "Proof of Claim",
	}, domain.DocumentMetadata{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	for _, want := range []string{"Proof of Claim (Form 31)", "ABC Collections Ltd", "Jane Roe", "$12,500.00"} {
		if !strings.Contains(result.Summary, want) {
			t.Fatalf("summary missing %q: %q", want, result.Summary)
		}
	}
	if len(result.KeyDetails.Parties) != 2 {
		t.Fatalf("parties = %v", result.KeyDetails.Parties)
	}
	if result.KeyDetails.Dates["filing_date"] != "March 3, 2026" {
		t.Fatalf("filing_date = %q", result.KeyDetails.Dates["filing_date"])
	}
	if len(result.KeyDetails.NextSteps) == 0 || len(result.KeyDetails.LegalImplications) == 0 {
		t.Fatalf("proof of claim summary needs implications and next steps: %+v", result.KeyDetails)
	}
}

func TestSummarizeKnownFormUsesNarrative(t *testing.T) {
	s := New()
	result, err := s.Summarize("Form 65 monthly income and expense statement", domain.Classification{
		DocumentType: "OSB_Form_65",
		Category:     domain.CategoryOSBForm,
		FormNumber:   "65",
		FormTitle:    "Monthly Income and Expense Statement",
	}, domain.DocumentMetadata{ClientName: "John Q Public"})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if !strings.Contains(result.Summary, "surplus income") {
		t.Fatalf("form 65 summary missing narrative: %q", result.Summary)
	}
	// Debtor falls back to metadata when the text has no labeled party.
	if !strings.Contains(result.Summary, "John Q Public") {
		t.Fatalf("summary missing metadata client name: %q", result.Summary)
	}
	if len(result.KeyDetails.NextSteps) == 0 {
		t.Fatalf("known forms carry next steps, got %+v", result.KeyDetails)
	}
}

func TestSummarizeGenericFallback(t *testing.T) {
	s := New()
	result, err := s.Summarize("Dear Sir, regarding your file. Date: 2026-02-14. Total $42.00 enclosed.", domain.Classification{
		DocumentType: "letter",
		Category:     domain.CategoryCorrespondence,
	}, domain.DocumentMetadata{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if !strings.HasPrefix(result.Summary, "Correspondence") {
		t.Fatalf("summary = %q", result.Summary)
	}
	if result.KeyDetails.Dates["document_date"] != "2026-02-14" {
		t.Fatalf("document_date = %q", result.KeyDetails.Dates["document_date"])
	}
	if result.KeyDetails.FinancialSnapshot == nil || result.KeyDetails.FinancialSnapshot.TotalAmount != "$42.00" {
		t.Fatalf("snapshot = %+v", result.KeyDetails.FinancialSnapshot)
	}
}

func TestExtractAmountTieredFallback(t *testing.T) {
	// Tier 1: amount directly after the hint.
	if got := extractAmount("opening balance: $100.00 and later $999.99", "opening balance"); got != "$100.00" {
		t.Fatalf("tier-1 amount = %q", got)
	}
	// Tier 3: no hint present, first amount anywhere wins.
	if got := extractAmount("the cheque of $77.50 was returned", "opening balance"); got != "$77.50" {
		t.Fatalf("tier-3 amount = %q", got)
	}
	if got := extractAmount("no figures here", "total"); got != "" {
		t.Fatalf("expected empty amount, got %q", got)
	}
}

func TestExtractDateTieredFallback(t *testing.T) {
	if got := extractDate("Dated March 3, 2026 at Toronto", "dated"); got != "March 3, 2026" {
		t.Fatalf("tier-1 date = %q", got)
	}
	// Tier 2: the date precedes the hint inside the window.
	if got := extractDate("2026-01-15 is when it was dated by the parties", "dated"); got != "2026-01-15" {
		t.Fatalf("window date = %q", got)
	}
	if got := extractDate("no dates at all", "dated"); got != "" {
		t.Fatalf("expected empty date, got %q", got)
	}
}

func TestMaskedAccountSuffix(t *testing.T) {
	if got := maskedAccountSuffix("Account Number: 9876-5432-1000"); got != "****1000" {
		t.Fatalf("masked suffix = %q", got)
	}
	if got := maskedAccountSuffix("no account identifiers"); got != "" {
		t.Fatalf("expected empty suffix, got %q", got)
	}
}
