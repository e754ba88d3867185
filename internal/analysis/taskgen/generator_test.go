package taskgen

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avelsher/estatedocs/internal/config"
	"github.com/avelsher/estatedocs/internal/core/domain"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type seqIDs struct {
	next int
}

func (s *seqIDs) NewID() string {
	s.next++
	return fmt.Sprintf("task-%d", s.next)
}

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestGenerator(roleOverrides map[string]string) *Generator {
	return New(fixedClock{t: testNow}, &seqIDs{}, roleOverrides)
}

func TestGenerateSkipsLowSeverityFindings(t *testing.T) {
	g := newTestGenerator(nil)
	tasks, err := g.Generate("doc-1", "form31.pdf", []domain.RiskIssue{
		{ID: "r-1", Type: "DOCUMENT_RETENTION_REQUIREMENT", Severity: domain.SeverityLow},
		{ID: "r-2", Type: "MISSING_BALANCE_INFORMATION", Severity: domain.SeverityHigh, Description: "No balance figures"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].SourceReference != "r-2" {
		t.Fatalf("task traces to %q, want the high-severity finding", tasks[0].SourceReference)
	}
}

func TestGenerateSeverityDueDates(t *testing.T) {
	g := newTestGenerator(nil)
	tasks, err := g.Generate("doc-1", "doc.pdf", []domain.RiskIssue{
		{ID: "r-1", Type: "SOMETHING_CRITICAL", Severity: domain.SeverityCritical},
		{ID: "r-2", Type: "SOMETHING_HIGH", Severity: domain.SeverityHigh},
		{ID: "r-3", Type: "SOMETHING_MEDIUM", Severity: domain.SeverityMedium},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	wantDays := []int{1, 3, 7}
	for i, task := range tasks {
		if task.DaysRemaining != wantDays[i] {
			t.Fatalf("task %d days remaining = %d, want %d", i, task.DaysRemaining, wantDays[i])
		}
		if task.DueDate == nil || !task.DueDate.Equal(testNow.AddDate(0, 0, wantDays[i])) {
			t.Fatalf("task %d due date = %v", i, task.DueDate)
		}
		if task.Status != domain.TaskStatusOpen {
			t.Fatalf("task %d status = %q", i, task.Status)
		}
	}
}

func TestGenerateBeforeFilingDeadlineIsNextDay(t *testing.T) {
	g := newTestGenerator(nil)
	tasks, err := g.Generate("doc-1", "form31.pdf", []domain.RiskIssue{
		{ID: "r-1", Type: "MISSING_DEBTOR_SIGNATURE", Severity: domain.SeverityCritical, Deadline: "BEFORE_FILING"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	task := tasks[0]
	if task.DaysRemaining != 1 {
		t.Fatalf("days remaining = %d", task.DaysRemaining)
	}
	if !task.DueDate.Equal(testNow.AddDate(0, 0, 1)) {
		t.Fatalf("due date = %v", task.DueDate)
	}
}

func TestGenerateExplicitDeadlineParsed(t *testing.T) {
	g := newTestGenerator(nil)
	tasks, err := g.Generate("doc-1", "doc.pdf", []domain.RiskIssue{
		{ID: "r-1", Type: "FILING_OVERDUE", Severity: domain.SeverityHigh, Deadline: "2026-03-11"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !tasks[0].DueDate.Equal(want) {
		t.Fatalf("due date = %v, want %v", tasks[0].DueDate, want)
	}
}

func TestGenerateRoleRouting(t *testing.T) {
	g := newTestGenerator(nil)
	cases := []struct {
		riskType string
		wantRole string
	}{
		{"MISSING_DEBTOR_SIGNATURE", "trustee"},
		{"SURPLUS_CALCULATION_ERROR", "financial_analyst"},
		{"FILING_DEADLINE_AT_RISK", "administrator"},
		{"PRIVACY_SIN_EXPOSED", "privacy_officer"},
		{"MISSING_STATEMENT_PERIOD", "case_manager"},
		{"UNFILLED_PLACEHOLDER", "case_manager"},
	}
	for _, tc := range cases {
		tasks, err := g.Generate("doc-1", "doc.pdf", []domain.RiskIssue{
			{ID: "r-1", Type: tc.riskType, Severity: domain.SeverityHigh},
		})
		if err != nil {
			t.Fatalf("Generate(%s) error = %v", tc.riskType, err)
		}
		if got := tasks[0].AssignedTo.UserRole; got != tc.wantRole {
			t.Fatalf("role for %s = %q, want %q", tc.riskType, got, tc.wantRole)
		}
	}
}

func TestGenerateRoleOverridesBeatKeywordTable(t *testing.T) {
	g := newTestGenerator(map[string]string{"MISSING_DEBTOR_SIGNATURE": "senior_trustee"})
	tasks, err := g.Generate("doc-1", "doc.pdf", []domain.RiskIssue{
		{ID: "r-1", Type: "MISSING_DEBTOR_SIGNATURE", Severity: domain.SeverityCritical, Deadline: "BEFORE_FILING"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := tasks[0].AssignedTo.UserRole; got != "senior_trustee" {
		t.Fatalf("role = %q, want override", got)
	}
}

func TestGenerateKeywordShapedOverrides(t *testing.T) {
	cases := []struct {
		name      string
		overrides map[string]string
		riskType  string
		wantRole  string
	}{
		{
			name:      "routing keyword rebinds its role",
			overrides: map[string]string{"signature": "senior_trustee"},
			riskType:  "MISSING_DEBTOR_SIGNATURE",
			wantRole:  "senior_trustee",
		},
		{
			name:      "override on a secondary keyword of the matched entry",
			overrides: map[string]string{"sin": "compliance_officer"},
			riskType:  "PRIVACY_SIN_EXPOSED",
			wantRole:  "compliance_officer",
		},
		{
			name:      "unrelated override leaves the table routing intact",
			overrides: map[string]string{"deadline": "operations"},
			riskType:  "MISSING_DEBTOR_SIGNATURE",
			wantRole:  "trustee",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(tc.overrides)
			tasks, err := g.Generate("doc-1", "doc.pdf", []domain.RiskIssue{
				{ID: "r-1", Type: tc.riskType, Severity: domain.SeverityHigh},
			})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got := tasks[0].AssignedTo.UserRole; got != tc.wantRole {
				t.Fatalf("role = %q, want %q", got, tc.wantRole)
			}
		})
	}
}

func TestGenerateWithLoadedRoleMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	content := "roles:\n  signature: senior_trustee\n  deadline: operations\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write role map: %v", err)
	}

	overrides, err := config.LoadRoleMap(path)
	if err != nil {
		t.Fatalf("LoadRoleMap() error = %v", err)
	}

	g := New(fixedClock{t: testNow}, &seqIDs{}, overrides)
	tasks, err := g.Generate("doc-1", "form31.pdf", []domain.RiskIssue{
		{ID: "r-1", Type: "MISSING_DEBTOR_SIGNATURE", Severity: domain.SeverityCritical, Deadline: "BEFORE_FILING"},
		{ID: "r-2", Type: "FILING_DEADLINE_AT_RISK", Severity: domain.SeverityHigh},
		{ID: "r-3", Type: "MISSING_STATEMENT_PERIOD", Severity: domain.SeverityMedium},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := tasks[0].AssignedTo.UserRole; got != "senior_trustee" {
		t.Fatalf("signature role = %q, want the loaded override", got)
	}
	if got := tasks[1].AssignedTo.UserRole; got != "operations" {
		t.Fatalf("deadline role = %q, want the loaded override", got)
	}
	if got := tasks[2].AssignedTo.UserRole; got != "case_manager" {
		t.Fatalf("unmapped finding role = %q, want the built-in default", got)
	}
}

func TestGenerateTitlesFromTypeTags(t *testing.T) {
	g := newTestGenerator(nil)
	tasks, err := g.Generate("doc-1", "doc.pdf", []domain.RiskIssue{
		{ID: "r-1", Type: "MISSING_ACCOUNT_IDENTIFIER", Severity: domain.SeverityMedium},
		{ID: "r-2", Type: "INCOMPLETE_CREDITOR_LIST", Severity: domain.SeverityMedium},
		{ID: "r-3", Type: "EXPIRED_IDENTITY_DOCUMENT", Severity: domain.SeverityHigh, Description: "The identity document appears to be expired"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if tasks[0].TaskTitle != "Add missing account identifier" {
		t.Fatalf("title = %q", tasks[0].TaskTitle)
	}
	if tasks[1].TaskTitle != "Complete creditor list" {
		t.Fatalf("title = %q", tasks[1].TaskTitle)
	}
	if tasks[2].TaskTitle != "The identity document appears to be expired" {
		t.Fatalf("fallback title = %q", tasks[2].TaskTitle)
	}
}

func TestGenerateTaskTypeAndAction(t *testing.T) {
	g := newTestGenerator(nil)
	tasks, err := g.Generate("doc-1", "form31.pdf", []domain.RiskIssue{
		{
			ID:       "r-1",
			Type:     "MISSING_DEBTOR_SIGNATURE",
			Severity: domain.SeverityCritical,
			Solution: "Obtain the debtor's signature on page 2",
		},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	task := tasks[0]
	if task.TaskType != domain.TaskSignatureRequired {
		t.Fatalf("task type = %q", task.TaskType)
	}
	if task.ActionRequired.ActionType != "obtain_signature" {
		t.Fatalf("action type = %q", task.ActionRequired.ActionType)
	}
	if task.ActionRequired.ActionInstructions != "Obtain the debtor's signature on page 2" {
		t.Fatalf("instructions = %q", task.ActionRequired.ActionInstructions)
	}
	if len(task.DocumentReferences) != 1 || task.DocumentReferences[0].DocumentName != "form31.pdf" {
		t.Fatalf("document references = %+v", task.DocumentReferences)
	}
}
