package placement

import (
	"testing"
	"time"

	"github.com/avelsher/estatedocs/internal/core/domain"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestPlanOSBFormPlacement(t *testing.T) {
	p := New(fixedClock{t: testNow})
	placement, err := p.Plan(domain.Classification{
		DocumentType: "OSB_Form_31",
		Category:     domain.CategoryOSBForm,
		FormNumber:   "31",
	}, domain.DocumentMetadata{ClientName: "Jane Roe"}, "scan.pdf", domain.RiskOrange)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if placement.Folder != "Jane Roe" {
		t.Fatalf("folder = %q", placement.Folder)
	}
	if placement.Category != "Forms/OSB_Forms/Form31" {
		t.Fatalf("category folder = %q", placement.Category)
	}
	if placement.FileName != "osb_form_31_2026-03-01.pdf" {
		t.Fatalf("file name = %q", placement.FileName)
	}
	if placement.Path != "Jane Roe/Forms/OSB_Forms/Form31/osb_form_31_2026-03-01.pdf" {
		t.Fatalf("path = %q", placement.Path)
	}

	wantTags := []string{"OSB_FORM", "OSB_Form_31", "Form_31", "Risk_ORANGE"}
	if len(placement.Tags) != len(wantTags) {
		t.Fatalf("tags = %v", placement.Tags)
	}
	for i, tag := range wantTags {
		if placement.Tags[i] != tag {
			t.Fatalf("tag %d = %q, want %q", i, placement.Tags[i], tag)
		}
	}
}

func TestPlanUnknownClientFallsBackToSharedFolder(t *testing.T) {
	p := New(fixedClock{t: testNow})
	placement, err := p.Plan(domain.Classification{
		DocumentType: "unknown",
		Category:     domain.CategoryUnknown,
	}, domain.DocumentMetadata{}, "blob", domain.RiskGreen)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if placement.Folder != "Unknown Client" {
		t.Fatalf("folder = %q", placement.Folder)
	}
	if placement.Category != "Unsorted" {
		t.Fatalf("category = %q", placement.Category)
	}
	// Extensionless uploads get a .pdf default.
	if placement.FileName != "unknown_2026-03-01.pdf" {
		t.Fatalf("file name = %q", placement.FileName)
	}
}

func TestPlanFinancialSubtypes(t *testing.T) {
	p := New(fixedClock{t: testNow})
	cases := []struct {
		docType string
		want    string
	}{
		{"bank_statement", "Financial/Bank_Statements"},
		{"credit_card_statement", "Financial/Credit_Card_Statements"},
		{"tax_document", "Financial/Tax_Documents"},
		{"invoice", "Financial/Other"},
	}
	for _, tc := range cases {
		placement, err := p.Plan(domain.Classification{
			DocumentType: tc.docType,
			Category:     domain.CategoryFinancial,
		}, domain.DocumentMetadata{ClientName: "John Q Public"}, "stmt.XLSX", domain.RiskYellow)
		if err != nil {
			t.Fatalf("Plan(%s) error = %v", tc.docType, err)
		}
		if placement.Category != tc.want {
			t.Fatalf("category for %s = %q, want %q", tc.docType, placement.Category, tc.want)
		}
		// Extensions are lowered on the generated name.
		if got := placement.FileName; got != tc.docType+"_2026-03-01.xlsx" {
			t.Fatalf("file name for %s = %q", tc.docType, got)
		}
	}
}

func TestPlanCategoryFolders(t *testing.T) {
	p := New(fixedClock{t: testNow})
	cases := []struct {
		category domain.DocumentCategory
		want     string
	}{
		{domain.CategoryCreditor, "Creditors"},
		{domain.CategoryIdentity, "Identity"},
		{domain.CategoryLegal, "Legal/Court_Documents"},
		{domain.CategoryCorrespondence, "Correspondence"},
	}
	for _, tc := range cases {
		placement, err := p.Plan(domain.Classification{
			DocumentType: "letter",
			Category:     tc.category,
		}, domain.DocumentMetadata{ClientName: "Jane Roe"}, "doc.pdf", domain.RiskGreen)
		if err != nil {
			t.Fatalf("Plan(%s) error = %v", tc.category, err)
		}
		if placement.Category != tc.want {
			t.Fatalf("category folder for %s = %q, want %q", tc.category, placement.Category, tc.want)
		}
	}
}
