package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/intake"
	"github.com/csg33k/underwriteai/internal/mockdata"
	"github.com/csg33k/underwriteai/internal/templates"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func views(t *testing.T) *templates.Views {
	t.Helper()
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Fatal(err)
	}
	v, err := templates.New(loc)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestPages(t *testing.T) {
	v := views(t)
	detail := mockdata.SubmissionDetail("SUB-2024-001")

	tests := []struct {
		name string
		c    templ.Component
		want []string
	}{
		{
			name: "dashboard",
			c: v.Dashboard(templates.DashboardData{
				Stats:      mockdata.DashboardStats(),
				Tiles:      mockdata.ActionTiles(),
				QuickStats: mockdata.QuickStats(),
				Recent:     mockdata.RecentSubmissions(),
			}),
			want: []string{"Welcome to your underwriting command center", "Total Submissions", "View All Submissions", "Michael Brown", "/review-queue"},
		},
		{
			name: "submissions",
			c: v.Submissions(templates.SubmissionsData{
				Submissions: mockdata.SeedSubmissions(),
				Total:       2,
				Statuses:    domain.Statuses(),
			}),
			want: []string{"Manage and review underwriting applications", "SUB-2024-002", "Risk: 75", "$500,000", "Submitted Jan. 15, 2024, 5:30 a.m.", "Manual Review"},
		},
		{
			name: "new submission",
			c:    v.NewSubmission(templates.NewSubmissionData{Accept: ".pdf,.doc"}),
			want: []string{"Drop files here or click to upload", "Process Documents", "Upload and process documents to see extracted data"},
		},
		{
			name: "detail",
			c:    v.SubmissionDetail(templates.DetailData{Submission: detail}),
			want: []string{"Submission Review: SUB-2024-001", "Underwriter decision panel for John Smith", "Medium-High Risk", "Confidence: 85%", "+40 points", "Approve Application", "Audit Trail", "Explain your decision rationale..."},
		},
		{
			name: "review queue",
			c: v.ReviewQueue(templates.QueueData{
				Stats: mockdata.QueueStats(),
				Items: mockdata.QueueItems(),
			}),
			want: []string{"Applications awaiting underwriter decisions", "border-red-200 bg-red-50", "Review Now", "View", "High Priority"},
		},
		{
			name: "risk analysis",
			c: v.RiskAnalysis(templates.RiskData{
				Overview: mockdata.RiskOverview(),
				HighRisk: mockdata.HighRiskSubmissions(),
				Trends:   mockdata.RiskTrends(),
			}),
			want: []string{"High Risk Submissions", "Primary Risk: Medical History", "23 cases", "Avg: 78"},
		},
		{
			name: "reports",
			c: v.Reports(templates.ReportsData{
				Metrics:      mockdata.ReportMetrics(),
				Distribution: mockdata.RiskDistribution(),
				Reports:      mockdata.RecentReports(),
			}),
			want: []string{"Reports &amp; Analytics", "Low Risk (0-40)", "Monthly Underwriting Summary", "/reports/summary.pdf"},
		},
		{
			name: "settings",
			c:    v.Settings(templates.NewSettingsData(domain.DefaultSettings())),
			want: []string{"Auto-Approval Limit (CAD)", `value="demo@underwriteai.com"`, "Eastern Time (Toronto)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderString(t, tt.c)
			if !strings.HasPrefix(got, "<!DOCTYPE html>") {
				t.Errorf("page does not start with a doctype")
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("missing %q", w)
				}
			}
		})
	}
}

func TestNavigation_ActiveLink(t *testing.T) {
	got := renderString(t, views(t).Settings(templates.NewSettingsData(domain.DefaultSettings())))
	if !strings.Contains(got, `href="/settings" class="flex items-center gap-3 rounded-md px-3 py-2 text-sm hover:text-blue-600 hover:bg-blue-50 bg-blue-50 text-blue-600 font-medium"`) {
		t.Error("settings link not highlighted")
	}
}

func TestProcessResult(t *testing.T) {
	v := views(t)

	t.Run("error", func(t *testing.T) {
		got := renderString(t, v.ProcessResult(templates.ProcessData{
			ErrorTitle: "No files selected",
			Error:      "Please upload at least one document to process.",
		}))
		if !strings.Contains(got, "No files selected") || strings.Contains(got, "Upload and process documents") {
			t.Errorf("unexpected fragment:\n%s", got)
		}
	})

	t.Run("result", func(t *testing.T) {
		res := &intake.Result{
			ProcessingID:   "proc-1",
			Documents:      []domain.DocumentRef{{Name: "application.pdf", Type: "application", Size: "1.2 MB"}},
			ExtractedData:  mockdata.Extraction(),
			RiskAssessment: mockdata.RiskAssessment(),
		}
		got := renderString(t, v.ProcessResult(templates.ProcessData{Result: res}))
		for _, w := range []string{"Documents processed successfully", "John Smith", "Software Engineer", "AI Recommendation", "Submit for Underwriter Review", `name="documents" value="application.pdf|application|1.2 MB"`} {
			if !strings.Contains(got, w) {
				t.Errorf("missing %q", w)
			}
		}
		if strings.HasPrefix(got, "<!DOCTYPE") {
			t.Error("fragment rendered the full layout")
		}
	})
}

func TestDecisionPanel(t *testing.T) {
	v := views(t)
	s := mockdata.SubmissionDetail("SUB-2024-001")

	got := renderString(t, v.DecisionPanel(templates.DetailData{
		Submission: s,
		ErrorTitle: "Notes required",
		Error:      "Please add notes explaining your decision.",
	}))
	if !strings.Contains(got, "Notes required") || !strings.Contains(got, "Decline Application") {
		t.Errorf("pending panel:\n%s", got)
	}

	s.Status = domain.StatusApproved
	s.DecisionNotes = "Within appetite"
	got = renderString(t, v.DecisionPanel(templates.DetailData{Submission: s, Notice: "Application has been approved."}))
	if strings.Contains(got, "Approve Application") {
		t.Error("decided submission still shows the decision form")
	}
	for _, w := range []string{"Decision recorded", "Within appetite", "Approved"} {
		if !strings.Contains(got, w) {
			t.Errorf("missing %q", w)
		}
	}
}

func TestSettingsForm_Saved(t *testing.T) {
	d := templates.NewSettingsData(domain.DefaultSettings())
	d.Saved = true
	got := renderString(t, views(t).SettingsForm(d))
	if !strings.Contains(got, "Settings saved") || !strings.Contains(got, `<option value="70" selected>`) {
		t.Errorf("form:\n%s", got)
	}
}
