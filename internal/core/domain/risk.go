package domain

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

type IssueStatus string

const (
	IssueOpen       IssueStatus = "open"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
)

// RiskIssue is one compliance or quality finding produced by a single
// rule. Rules only ever append issues; they never modify findings made
// by other rules.
type RiskIssue struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Severity    Severity    `json:"severity"`
	Regulation  string      `json:"regulation,omitempty"`
	Impact      string      `json:"impact,omitempty"`
	Solution    string      `json:"solution,omitempty"`
	Deadline    string      `json:"deadline,omitempty"`
	Status      IssueStatus `json:"status"`
}

type RiskLevel string

const (
	RiskRed    RiskLevel = "RED"
	RiskOrange RiskLevel = "ORANGE"
	RiskYellow RiskLevel = "YELLOW"
	RiskGreen  RiskLevel = "GREEN"
)

// IssueCounts buckets findings by severity: Moderate counts high
// findings, Minor counts medium and low together.
type IssueCounts struct {
	Critical int `json:"critical"`
	Moderate int `json:"moderate"`
	Minor    int `json:"minor"`
}

type TimelineStatus string

const (
	TimelinePending  TimelineStatus = "PENDING"
	TimelineComplete TimelineStatus = "COMPLETE"
	TimelineOverdue  TimelineStatus = "OVERDUE"
)

// TimelineRequirement is a regulatory filing obligation with a deadline
// derived from the assessment run time.
type TimelineRequirement struct {
	Requirement   string         `json:"requirement"`
	Deadline      time.Time      `json:"deadline"`
	DaysRemaining int            `json:"daysRemaining"`
	Status        TimelineStatus `json:"status"`
	Regulation    string         `json:"regulation,omitempty"`
}

type RiskAssessment struct {
	OverallRiskLevel     RiskLevel             `json:"overallRiskLevel"`
	ComplianceScore      float64               `json:"complianceScore"`
	IssuesSummary        IssueCounts           `json:"issuesSummary"`
	Issues               []RiskIssue           `json:"issues"`
	TimelineRequirements []TimelineRequirement `json:"timelineRequirements,omitempty"`
}
