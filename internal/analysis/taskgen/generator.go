package taskgen

import (
	"strings"
	"time"

	"github.com/avelsher/estatedocs/internal/core/domain"
	"github.com/avelsher/estatedocs/internal/core/ports"
)

// Due-date offsets applied when a risk carries no explicit deadline.
var severityDueDays = map[domain.Severity]int{
	domain.SeverityCritical: 1,
	domain.SeverityHigh:     3,
	domain.SeverityMedium:   7,
	domain.SeverityLow:      14,
}

// beforeFilingSentinel is the deadline value meaning "this must be
// resolved before the document can be filed"; it maps to a next-day due
// date.
const beforeFilingSentinel = "BEFORE_FILING"

// Generator converts risk findings at or above medium severity into
// remediation tasks. Low-severity findings never produce a task.
type Generator struct {
	clock ports.Clock
	ids   ports.IDGenerator
	// roleOverrides rebinds assignee roles, taking precedence over the
	// built-in keyword table. Keys are either a full risk type tag
	// ("MISSING_DEBTOR_SIGNATURE") or one of the routing keywords
	// ("signature", "deadline", ...).
	roleOverrides map[string]string
}

func New(clock ports.Clock, ids ports.IDGenerator, roleOverrides map[string]string) *Generator {
	return &Generator{clock: clock, ids: ids, roleOverrides: roleOverrides}
}

func (g *Generator) Generate(documentID, documentName string, risks []domain.RiskIssue) ([]domain.Task, error) {
	now := g.clock.Now()
	tasks := make([]domain.Task, 0, len(risks))
	for _, risk := range risks {
		if !qualifies(risk.Severity) {
			continue
		}

		dueDate, daysRemaining := g.dueDate(now, risk)
		taskType := classifyTaskType(risk.Type)

		tasks = append(tasks, domain.Task{
			TaskID:          g.ids.NewID(),
			SourceReference: risk.ID,
			TaskTitle:       taskTitle(risk),
			TaskDescription: risk.Description,
			TaskType:        taskType,
			Severity:        risk.Severity,
			Status:          domain.TaskStatusOpen,
			DueDate:         dueDate,
			DaysRemaining:   daysRemaining,
			AssignedTo:      domain.TaskAssignment{UserRole: g.assigneeRole(risk.Type)},
			DocumentReferences: []domain.DocumentReference{
				{DocumentID: documentID, DocumentName: documentName},
			},
			ActionRequired: domain.TaskAction{
				ActionType:         actionType(taskType),
				ActionInstructions: actionInstructions(risk),
			},
		})
	}
	return tasks, nil
}

func qualifies(severity domain.Severity) bool {
	switch severity {
	case domain.SeverityCritical, domain.SeverityHigh, domain.SeverityMedium:
		return true
	}
	return false
}

// dueDate resolves the task deadline: the BEFORE_FILING sentinel means
// next day, an explicit date string is used as-is, and anything else
// falls back to the severity-based offset.
func (g *Generator) dueDate(now time.Time, risk domain.RiskIssue) (*time.Time, int) {
	if risk.Deadline == beforeFilingSentinel {
		due := now.AddDate(0, 0, 1)
		return &due, 1
	}
	if risk.Deadline != "" {
		if due, ok := parseDeadline(risk.Deadline); ok {
			return &due, int(due.Sub(now).Hours() / 24)
		}
	}
	days := severityDueDays[risk.Severity]
	due := now.AddDate(0, 0, days)
	return &due, days
}

var deadlineLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
}

func parseDeadline(value string) (time.Time, bool) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Ordered keyword table: the first matching entry wins.
var taskTypeKeywords = []struct {
	keywords []string
	taskType domain.TaskType
}{
	{[]string{"signature"}, domain.TaskSignatureRequired},
	{[]string{"privacy", "sin", "security"}, domain.TaskPrivacySecurity},
	{[]string{"deadline", "timeline", "retention", "date"}, domain.TaskTimelineRequirement},
	{[]string{"amount", "calculation", "total", "balance"}, domain.TaskDataCorrection},
	{[]string{"expired", "verify", "verification"}, domain.TaskVerification},
	{[]string{"missing", "incomplete", "insufficient"}, domain.TaskDocumentCorrection},
}

func classifyTaskType(riskType string) domain.TaskType {
	tag := strings.ToLower(riskType)
	for _, entry := range taskTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(tag, kw) {
				return entry.taskType
			}
		}
	}
	return domain.TaskGeneral
}

// Ordered role table: the first matching entry wins; case manager is
// the default owner.
var roleKeywords = []struct {
	keywords []string
	role     string
}{
	{[]string{"signature"}, "trustee"},
	{[]string{"calculation", "amount", "total", "balance"}, "financial_analyst"},
	{[]string{"deadline", "date", "timeline"}, "administrator"},
	{[]string{"legal", "compliance", "retention"}, "compliance_officer"},
	{[]string{"privacy", "security", "sin"}, "privacy_officer"},
	{[]string{"incomplete", "missing"}, "case_manager"},
}

const defaultRole = "case_manager"

func (g *Generator) assigneeRole(riskType string) string {
	if role, ok := g.roleOverrides[riskType]; ok {
		return role
	}
	tag := strings.ToLower(riskType)
	for _, entry := range roleKeywords {
		matched := false
		for _, kw := range entry.keywords {
			if !strings.Contains(tag, kw) {
				continue
			}
			if role, ok := g.roleOverrides[kw]; ok {
				return role
			}
			matched = true
		}
		if matched {
			return entry.role
		}
	}
	return defaultRole
}

// taskTitle synthesizes a title from MISSING_/INCOMPLETE_ type tags and
// otherwise falls back to the finding's description verbatim.
func taskTitle(risk domain.RiskIssue) string {
	switch {
	case strings.HasPrefix(risk.Type, "MISSING_"):
		return "Add missing " + humanizeTag(strings.TrimPrefix(risk.Type, "MISSING_"))
	case strings.HasPrefix(risk.Type, "INCOMPLETE_"):
		return "Complete " + humanizeTag(strings.TrimPrefix(risk.Type, "INCOMPLETE_"))
	default:
		return risk.Description
	}
}

func humanizeTag(tag string) string {
	return strings.ToLower(strings.ReplaceAll(tag, "_", " "))
}

var taskActionTypes = map[domain.TaskType]string{
	domain.TaskDocumentCorrection:  "correct_document",
	domain.TaskSignatureRequired:   "obtain_signature",
	domain.TaskDataCorrection:      "correct_data",
	domain.TaskTimelineRequirement: "meet_deadline",
	domain.TaskPrivacySecurity:     "remediate_privacy",
	domain.TaskVerification:        "verify_document",
	domain.TaskGeneral:             "review",
}

func actionType(taskType domain.TaskType) string {
	return taskActionTypes[taskType]
}

func actionInstructions(risk domain.RiskIssue) string {
	if risk.Solution != "" {
		return risk.Solution
	}
	return "Review the document and resolve the identified issue"
}
