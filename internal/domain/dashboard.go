package domain

import "time"

// StatCard is one headline number on the dashboard or reports page.
type StatCard struct {
	Title  string
	Value  string
	Change string // signed, e.g. "+12%"
	Period string
	Trend  string // "up" or "down"
	Accent string // tailwind colour name
}

// Rising reports whether the change is positive.
func (c StatCard) Rising() bool {
	return len(c.Change) > 0 && c.Change[0] == '+'
}

// QueueItem is an application waiting on an underwriter decision.
type QueueItem struct {
	ID               string
	Applicant        string
	Type             InsuranceType
	RiskScore        int
	Priority         string // high, medium, low
	AssignedTo       string
	TimeInQueue      string
	DueDate          string
	Status           string // pending_review, in_progress, overdue
	AIRecommendation string // Approve, Decline, Manual Review
}

// HighRiskSubmission is a row on the risk analysis page.
type HighRiskSubmission struct {
	ID          string
	Applicant   string
	RiskScore   int
	RiskLevel   string
	PrimaryRisk string
	SubmittedAt time.Time
	Urgency     string
}

// RiskTrend summarises one risk category over the reporting period.
type RiskTrend struct {
	Category string
	Count    int
	Trend    string // up, down
	Change   string
	AvgScore int
}

// RiskBucket is one bar of the score distribution chart.
type RiskBucket struct {
	Label      string
	Count      int
	Percentage float64
	Color      string
}

// ReportRef is a generated report listed on the reports page.
type ReportRef struct {
	Slug      string
	Name      string
	Type      string
	Generated string
	Status    string
}
