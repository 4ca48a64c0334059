// Package mockdata holds the fixed sample records the dashboard renders and
// the simulators return. Every function returns a fresh copy so callers may
// mutate what they get back.
package mockdata

import (
	"time"

	"github.com/csg33k/underwriteai/internal/domain"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func atPtr(s string) *time.Time {
	t := at(s)
	return &t
}

// Extraction is the record every simulated document extraction returns.
func Extraction() domain.ExtractedData {
	return domain.ExtractedData{
		ApplicantName:        "John Smith",
		DateOfBirth:          "1985-03-15",
		Occupation:           "Software Engineer",
		Smoker:               false,
		MedicalConditions:    []string{"Hypertension"},
		CoverageAmount:       500000,
		InsuranceType:        domain.InsuranceLife,
		ExtractionConfidence: 0.92,
	}
}

// RiskAssessment is the assessment every simulated scoring run returns.
func RiskAssessment() domain.RiskAssessment {
	return domain.RiskAssessment{
		RiskScore: 75,
		RiskLevel: "Medium-High",
		Factors: []domain.RiskFactor{
			{Factor: "Age", Impact: "Low", Score: 20, Description: "Applicant is 39 years old"},
			{Factor: "Occupation", Impact: "Low", Score: 15, Description: "Software Engineer - low risk occupation"},
			{Factor: "Medical History", Impact: "Medium", Score: 40, Description: "Hypertension requires monitoring"},
			{Factor: "Lifestyle", Impact: "Low", Score: 0, Description: "Non-smoker"},
		},
		Recommendation: "Manual review recommended due to medical history",
		Confidence:     0.85,
		ProcessingTime: "2.3 seconds",
	}
}

// SeedSubmissions is the initial content of the submission store.
func SeedSubmissions() []domain.Submission {
	return []domain.Submission{
		{
			ID:                "SUB-2024-001",
			ApplicantName:     "John Smith",
			DateOfBirth:       "1985-03-15",
			Occupation:        "Software Engineer",
			Smoker:            false,
			MedicalConditions: []string{"Hypertension"},
			CoverageAmount:    500000,
			InsuranceType:     domain.InsuranceLife,
			SubmittedAt:       atPtr("2024-01-15T10:30:00Z"),
			Status:            domain.StatusPending,
			Documents:         domain.DocumentCount(3),
			RiskScore:         75,
		},
		{
			ID:                "SUB-2024-002",
			ApplicantName:     "Sarah Johnson",
			DateOfBirth:       "1990-07-22",
			Occupation:        "Teacher",
			Smoker:            false,
			MedicalConditions: []string{},
			CoverageAmount:    250000,
			InsuranceType:     domain.InsuranceHealth,
			SubmittedAt:       atPtr("2024-01-15T09:15:00Z"),
			Status:            domain.StatusApproved,
			Documents:         domain.DocumentCount(2),
			RiskScore:         45,
		},
	}
}

// SubmissionDetail is the record the mock store serves for every id.
func SubmissionDetail(id string) domain.Submission {
	ra := RiskAssessment()
	ra.ProcessingTime = ""
	return domain.Submission{
		ID:                id,
		ApplicantName:     "John Smith",
		DateOfBirth:       "1985-03-15",
		Occupation:        "Software Engineer",
		Smoker:            false,
		MedicalConditions: []string{"Hypertension"},
		CoverageAmount:    500000,
		InsuranceType:     domain.InsuranceLife,
		SubmittedAt:       atPtr("2024-01-15T10:30:00Z"),
		Status:            domain.StatusPending,
		Documents: domain.DocumentList(
			domain.DocumentRef{Name: "Application Form.pdf", Type: "application", Size: "2.3 MB"},
			domain.DocumentRef{Name: "Medical Report.pdf", Type: "medical", Size: "1.8 MB"},
			domain.DocumentRef{Name: "ID Document.jpg", Type: "identification", Size: "0.9 MB"},
		),
		RiskScore:      ra.RiskScore,
		RiskAssessment: &ra,
		AuditTrail: []domain.AuditEntry{
			{Timestamp: at("2024-01-15T10:30:00Z"), Action: "Submission created", User: "System", Details: "Application submitted via web portal"},
			{Timestamp: at("2024-01-15T10:31:00Z"), Action: "Documents processed", User: "AI Engine", Details: "OCR and data extraction completed"},
			{Timestamp: at("2024-01-15T10:32:00Z"), Action: "Risk assessment completed", User: "AI Engine", Details: "Risk score: 75, Medium-High risk level"},
			{Timestamp: at("2024-01-15T10:33:00Z"), Action: "Assigned for review", User: "System", Details: "Assigned to underwriter queue"},
		},
	}
}

// DashboardStats are the four headline cards on the dashboard.
func DashboardStats() []domain.StatCard {
	return []domain.StatCard{
		{Title: "Total Submissions", Value: "247", Change: "+12%", Period: "from last month", Accent: "blue"},
		{Title: "Pending Review", Value: "18", Change: "-5%", Period: "from last month", Accent: "orange"},
		{Title: "Approved Today", Value: "34", Change: "+8%", Period: "from last month", Accent: "green"},
		{Title: "High Risk Flagged", Value: "7", Change: "+2%", Period: "from last month", Accent: "red"},
	}
}

// QuickStats are the secondary dashboard cards.
func QuickStats() []domain.StatCard {
	return []domain.StatCard{
		{Title: "Today's Submissions", Value: "12", Change: "+3", Period: "from yesterday", Accent: "blue"},
		{Title: "Avg Risk Score", Value: "68", Change: "", Period: "Medium risk level", Accent: "orange"},
		{Title: "Decisions Made", Value: "8", Change: "", Period: "6 approved, 2 declined", Accent: "green"},
		{Title: "Processing Time", Value: "2.1h", Change: "-0.3h", Period: "improvement", Accent: "purple"},
	}
}

// ActionTile is a large navigation button on the dashboard.
type ActionTile struct {
	Title    string
	Href     string
	Subtitle string
	Detail   string
	Accent   string
}

// ActionTiles are the dashboard's three primary links.
func ActionTiles() []ActionTile {
	return []ActionTile{
		{Title: "Submissions", Href: "/submissions", Subtitle: "Manage applications", Detail: "18 pending review", Accent: "blue"},
		{Title: "Risk", Href: "/risk-analysis", Subtitle: "Risk assessment", Detail: "7 high-risk flagged", Accent: "orange"},
		{Title: "Review", Href: "/review-queue", Subtitle: "Review queue", Detail: "12 awaiting decision", Accent: "green"},
	}
}

// RecentSubmissions feeds the dashboard's recent activity list.
func RecentSubmissions() []domain.Submission {
	return []domain.Submission{
		{ID: "SUB-2024-001", ApplicantName: "John Smith", InsuranceType: domain.InsuranceLife, RiskScore: 75, Status: domain.StatusPending, SubmittedAt: atPtr("2024-01-15T10:30:00Z")},
		{ID: "SUB-2024-002", ApplicantName: "Sarah Johnson", InsuranceType: domain.InsuranceHealth, RiskScore: 45, Status: domain.StatusApproved, SubmittedAt: atPtr("2024-01-15T09:15:00Z")},
		{ID: "SUB-2024-003", ApplicantName: "Michael Brown", InsuranceType: domain.InsuranceLife, RiskScore: 85, Status: domain.StatusManualReview, SubmittedAt: atPtr("2024-01-15T08:45:00Z")},
	}
}

// QueueItems are the applications in the review queue.
func QueueItems() []domain.QueueItem {
	return []domain.QueueItem{
		{ID: "SUB-2024-001", Applicant: "John Smith", Type: domain.InsuranceLife, RiskScore: 75, Priority: "medium", AssignedTo: "You", TimeInQueue: "2h 15m", DueDate: "Today, 5:00 PM", Status: "pending_review", AIRecommendation: "Manual Review"},
		{ID: "SUB-2024-003", Applicant: "Michael Brown", Type: domain.InsuranceLife, RiskScore: 85, Priority: "high", AssignedTo: "You", TimeInQueue: "4h 32m", DueDate: "Today, 3:00 PM", Status: "overdue", AIRecommendation: "Decline"},
		{ID: "SUB-2024-008", Applicant: "Lisa Anderson", Type: domain.InsuranceHealth, RiskScore: 68, Priority: "medium", AssignedTo: "Sarah Wilson", TimeInQueue: "1h 45m", DueDate: "Tomorrow, 10:00 AM", Status: "in_progress", AIRecommendation: "Manual Review"},
		{ID: "SUB-2024-012", Applicant: "David Thompson", Type: domain.InsuranceDisability, RiskScore: 55, Priority: "low", AssignedTo: "You", TimeInQueue: "30m", DueDate: "Tomorrow, 2:00 PM", Status: "pending_review", AIRecommendation: "Approve"},
		{ID: "SUB-2024-015", Applicant: "Emma Martinez", Type: domain.InsuranceLife, RiskScore: 72, Priority: "medium", AssignedTo: "Mike Johnson", TimeInQueue: "3h 20m", DueDate: "Today, 4:30 PM", Status: "pending_review", AIRecommendation: "Manual Review"},
	}
}

// HighRiskSubmissions are the flagged applications on the risk analysis page.
func HighRiskSubmissions() []domain.HighRiskSubmission {
	return []domain.HighRiskSubmission{
		{ID: "SUB-2024-003", Applicant: "Michael Brown", RiskScore: 85, RiskLevel: "High", PrimaryRisk: "Medical History", SubmittedAt: at("2024-01-15T08:45:00Z"), Urgency: "high"},
		{ID: "SUB-2024-007", Applicant: "Jennifer Wilson", RiskScore: 82, RiskLevel: "High", PrimaryRisk: "Age + Occupation", SubmittedAt: at("2024-01-14T15:20:00Z"), Urgency: "high"},
		{ID: "SUB-2024-001", Applicant: "John Smith", RiskScore: 75, RiskLevel: "Medium-High", PrimaryRisk: "Hypertension", SubmittedAt: at("2024-01-15T10:30:00Z"), Urgency: "medium"},
		{ID: "SUB-2024-009", Applicant: "Robert Davis", RiskScore: 78, RiskLevel: "Medium-High", PrimaryRisk: "Smoking History", SubmittedAt: at("2024-01-13T11:15:00Z"), Urgency: "medium"},
	}
}

// RiskTrends summarise risk categories for the risk analysis page.
func RiskTrends() []domain.RiskTrend {
	return []domain.RiskTrend{
		{Category: "Medical Conditions", Count: 23, Trend: "up", Change: "+15%", AvgScore: 78},
		{Category: "Age-Related Risk", Count: 18, Trend: "down", Change: "-8%", AvgScore: 72},
		{Category: "Occupation Risk", Count: 12, Trend: "up", Change: "+22%", AvgScore: 65},
		{Category: "Lifestyle Factors", Count: 15, Trend: "down", Change: "-5%", AvgScore: 58},
	}
}

// ReportMetrics are the headline numbers on the reports page.
func ReportMetrics() []domain.StatCard {
	return []domain.StatCard{
		{Title: "Total Applications", Value: "1,247", Change: "+12.5%", Trend: "up", Period: "This month"},
		{Title: "Approval Rate", Value: "78.3%", Change: "+2.1%", Trend: "up", Period: "This month"},
		{Title: "Average Processing Time", Value: "2.4 days", Change: "-0.3 days", Trend: "down", Period: "This month"},
		{Title: "High Risk Applications", Value: "156", Change: "+8.2%", Trend: "up", Period: "This month"},
	}
}

// RiskDistribution is the score histogram on the reports page.
func RiskDistribution() []domain.RiskBucket {
	return []domain.RiskBucket{
		{Label: "Low Risk (0-40)", Count: 487, Percentage: 39.1, Color: "green"},
		{Label: "Medium Risk (41-70)", Count: 604, Percentage: 48.4, Color: "orange"},
		{Label: "High Risk (71-100)", Count: 156, Percentage: 12.5, Color: "red"},
	}
}

// RecentReports are the generated reports available for download.
func RecentReports() []domain.ReportRef {
	return []domain.ReportRef{
		{Slug: "monthly-summary", Name: "Monthly Underwriting Summary", Type: "Summary Report", Generated: "2024-01-15", Status: "Ready"},
		{Slug: "risk-analysis", Name: "Risk Assessment Analysis", Type: "Analytics Report", Generated: "2024-01-14", Status: "Ready"},
		{Slug: "compliance-audit", Name: "Compliance Audit Trail", Type: "Compliance Report", Generated: "2024-01-13", Status: "Ready"},
	}
}

// RiskOverview are the summary cards on the risk analysis page. Accent is
// the colour of the change line; a rising risk count is shown in red.
func RiskOverview() []domain.StatCard {
	return []domain.StatCard{
		{Title: "High Risk Applications", Value: "7", Change: "+2", Period: "from last week", Trend: "up", Accent: "red"},
		{Title: "Average Risk Score", Value: "68.2", Change: "-2.1", Period: "from last week", Trend: "down", Accent: "green"},
		{Title: "Risk Threshold Breaches", Value: "12", Change: "+4", Period: "from last week", Trend: "up", Accent: "red"},
		{Title: "AI Confidence", Value: "87%", Change: "+3%", Period: "from last week", Trend: "up", Accent: "green"},
	}
}

// QueueStats are the counters above the review queue.
func QueueStats() []domain.StatCard {
	return []domain.StatCard{
		{Title: "Total in Queue", Value: "12", Accent: "blue"},
		{Title: "Assigned to You", Value: "3", Accent: "green"},
		{Title: "Overdue", Value: "1", Accent: "red"},
		{Title: "Avg Processing", Value: "2.4h", Accent: "purple"},
	}
}
