package risk

import (
	"regexp"
	"strings"
	"time"

	"github.com/avelsher/estatedocs/internal/core/domain"
	"github.com/avelsher/estatedocs/internal/core/ports"
)

const osbFormPrefix = "OSB_Form_"

// Assessor runs the per-type rule sets over normalized text and
// aggregates the findings. Each rule is a pure function returning its
// own issue list; the assessor concatenates them in evaluation order,
// so rules cannot modify one another's findings.
type Assessor struct {
	clock ports.Clock
	ids   ports.IDGenerator
}

func New(clock ports.Clock, ids ports.IDGenerator) *Assessor {
	return &Assessor{clock: clock, ids: ids}
}

func (a *Assessor) Assess(text string, cls domain.Classification, meta domain.DocumentMetadata) (domain.RiskAssessment, error) {
	norm := normalize(text)

	var issues []domain.RiskIssue
	if strings.HasPrefix(cls.DocumentType, osbFormPrefix) {
		issues = append(issues, formRuleSet(cls.FormNumber)(norm)...)
	} else {
		switch cls.Category {
		case domain.CategoryFinancial:
			issues = append(issues, financialRules(norm)...)
		case domain.CategoryCreditor:
			issues = append(issues, creditorRules(norm)...)
		case domain.CategoryIdentity:
			issues = append(issues, identityRules(norm)...)
		}
	}
	issues = append(issues, universalRules(text, norm)...)

	for i := range issues {
		issues[i].ID = a.ids.NewID()
		issues[i].Status = domain.IssueOpen
	}

	counts := countBySeverity(issues)
	score := complianceScore(counts)

	assessment := domain.RiskAssessment{
		OverallRiskLevel: overallRiskLevel(counts, score),
		ComplianceScore:  score,
		IssuesSummary:    counts,
		Issues:           issues,
	}
	if cls.Category == domain.CategoryOSBForm {
		assessment.TimelineRequirements = a.timelineRequirements(cls.FormNumber)
	}
	return assessment, nil
}

func countBySeverity(issues []domain.RiskIssue) domain.IssueCounts {
	var counts domain.IssueCounts
	for _, issue := range issues {
		switch issue.Severity {
		case domain.SeverityCritical:
			counts.Critical++
		case domain.SeverityHigh:
			counts.Moderate++
		default:
			counts.Minor++
		}
	}
	return counts
}

// complianceScore weights findings by severity: 0.20 per critical, 0.10
// per high, 0.05 per medium/low, clamped to [0,1]. Zero findings score
// exactly 1.0.
func complianceScore(counts domain.IssueCounts) float64 {
	score := 1.0 -
		0.20*float64(counts.Critical) -
		0.10*float64(counts.Moderate) -
		0.05*float64(counts.Minor)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// overallRiskLevel derives the traffic-light level from the counts. A
// compliance score under 0.5 forces RED regardless of the counts.
func overallRiskLevel(counts domain.IssueCounts, score float64) domain.RiskLevel {
	if counts.Critical > 0 || score < 0.5 {
		return domain.RiskRed
	}
	if counts.Moderate > 0 {
		return domain.RiskOrange
	}
	if counts.Minor > 0 {
		return domain.RiskYellow
	}
	return domain.RiskGreen
}

// timelineRequirements is implemented for forms 31 and 47 only. Forms
// 65/76/79 carry regulatory deadlines in principle but produce no
// timeline here; inventing offsets for them is worse than the gap.
func (a *Assessor) timelineRequirements(formNumber string) []domain.TimelineRequirement {
	now := a.clock.Now()
	switch formNumber {
	case "31":
		return []domain.TimelineRequirement{
			deadlineIn(now, 5, "File proof of claim with the official receiver", "BIA Section 124"),
			deadlineIn(now, 10, "Notify creditors of the claim determination", "BIA Section 135"),
		}
	case "47":
		return []domain.TimelineRequirement{
			deadlineIn(now, 5, "File consumer proposal with the official receiver", "BIA Section 66.13"),
			deadlineIn(now, 45, "Hold meeting of creditors", "BIA Section 66.15"),
		}
	}
	return nil
}

func deadlineIn(now time.Time, days int, requirement, regulation string) domain.TimelineRequirement {
	deadline := now.AddDate(0, 0, days)
	return domain.TimelineRequirement{
		Requirement:   requirement,
		Deadline:      deadline,
		DaysRemaining: int(deadline.Sub(now).Hours() / 24),
		Status:        domain.TimelinePending,
		Regulation:    regulation,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(text), " "))
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
