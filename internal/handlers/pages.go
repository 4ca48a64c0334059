package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/format"
	"github.com/csg33k/underwriteai/internal/mockdata"
	"github.com/csg33k/underwriteai/internal/templates"
)

const (
	acceptedUploads = ".pdf,.doc,.docx,.jpg,.jpeg,.png"
	maxUploadMemory = 32 << 20
	recentLimit     = 5
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	render(w, r, h.views.Dashboard(templates.DashboardData{
		Stats:      mockdata.DashboardStats(),
		Tiles:      mockdata.ActionTiles(),
		QuickStats: mockdata.QuickStats(),
		Recent:     recent(list, recentLimit),
	}))
}

// recent returns up to n submissions, newest first.
func recent(list []domain.Submission, n int) []domain.Submission {
	out := slices.Clone(list)
	slices.Reverse(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	status := r.URL.Query().Get("status")
	render(w, r, h.views.Submissions(templates.SubmissionsData{
		Submissions: filterSubmissions(list, q, status),
		Total:       len(list),
		Query:       q,
		Status:      status,
		Statuses:    domain.Statuses(),
	}))
}

// filterSubmissions keeps records whose id or applicant contains q
// (case-insensitive) and whose status equals status. Empty values match all.
func filterSubmissions(list []domain.Submission, q, status string) []domain.Submission {
	q = strings.ToLower(q)
	var out []domain.Submission
	for _, s := range list {
		if status != "" && string(s.Status) != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(s.ID), q) && !strings.Contains(strings.ToLower(s.ApplicantName), q) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (h *Handler) newSubmission(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.views.NewSubmission(templates.NewSubmissionData{Accept: acceptedUploads}))
}

// processDocuments handles the htmx upload form and renders the result panel.
func (h *Handler) processDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, err.Error(), 400)
		return
	}
	docs := uploadedDocuments(r.MultipartForm)
	if len(docs) == 0 {
		render(w, r, h.views.ProcessResult(templates.ProcessData{
			ErrorTitle: "No files selected",
			Error:      "Please upload at least one document to process.",
		}))
		return
	}
	res, err := h.intake.Process(r.Context(), docs)
	if err != nil {
		h.log.Error("process documents", "err", err)
		render(w, r, h.views.ProcessResult(templates.ProcessData{
			ErrorTitle: "Processing failed",
			Error:      err.Error(),
		}))
		return
	}
	render(w, r, h.views.ProcessResult(templates.ProcessData{Result: &res}))
}

// uploadedDocuments describes the files posted under "files".
func uploadedDocuments(form *multipart.Form) []domain.DocumentRef {
	if form == nil {
		return nil
	}
	var docs []domain.DocumentRef
	for _, fh := range form.File["files"] {
		docs = append(docs, domain.DocumentRef{
			Name: fh.Filename,
			Type: documentType(fh.Filename),
			Size: format.Size(fh.Size),
		})
	}
	return docs
}

// documentType guesses the document category from its file name.
func documentType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "medical"), strings.Contains(lower, "health"), strings.Contains(lower, "lab"):
		return "medical"
	case strings.Contains(lower, "application"), strings.Contains(lower, "form"):
		return "application"
	case strings.Contains(lower, "id"), strings.Contains(lower, "passport"), strings.Contains(lower, "licen"):
		return "identification"
	}
	switch filepath.Ext(lower) {
	case ".jpg", ".jpeg", ".png":
		return "identification"
	case ".pdf", ".doc", ".docx":
		return "application"
	}
	return "other"
}

// createSubmission stores the reviewed extraction posted by the result panel.
func (h *Handler) createSubmission(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	s, err := parseSubmissionForm(r)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	created, err := h.repo.Create(r.Context(), s)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	h.log.Info("submission created", "id", created.ID, "applicant", created.ApplicantName)
	w.Header().Set("HX-Redirect", "/submissions")
	w.WriteHeader(http.StatusCreated)
}

func parseSubmissionForm(r *http.Request) (domain.Submission, error) {
	s := domain.Submission{
		ApplicantName:     strings.TrimSpace(r.FormValue("applicantName")),
		DateOfBirth:       r.FormValue("dateOfBirth"),
		Occupation:        r.FormValue("occupation"),
		Smoker:            r.FormValue("smoker") == "true",
		MedicalConditions: r.Form["medicalConditions"],
		InsuranceType:     domain.InsuranceType(r.FormValue("insuranceType")),
	}
	if s.ApplicantName == "" {
		return s, errors.New("applicant name is required")
	}
	if v := r.FormValue("coverageAmount"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("coverage amount: %w", err)
		}
		s.CoverageAmount = amount
	}
	if v := r.FormValue("riskAssessment"); v != "" {
		var ra domain.RiskAssessment
		if err := json.Unmarshal([]byte(v), &ra); err != nil {
			return s, fmt.Errorf("risk assessment: %w", err)
		}
		s.RiskAssessment = &ra
		s.RiskScore = ra.RiskScore
	} else if v := r.FormValue("riskScore"); v != "" {
		score, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("risk score: %w", err)
		}
		s.RiskScore = score
	}
	var docs []domain.DocumentRef
	for _, raw := range r.Form["documents"] {
		parts := strings.SplitN(raw, "|", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		docs = append(docs, domain.DocumentRef{Name: parts[0], Type: parts[1], Size: parts[2]})
	}
	if len(docs) > 0 {
		s.Documents = domain.DocumentList(docs...)
	}
	return s, nil
}

func (h *Handler) viewSubmission(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	render(w, r, h.views.SubmissionDetail(templates.DetailData{Submission: s}))
}

var decisions = map[string]struct {
	status domain.Status
	notice string
}{
	"approve":       {domain.StatusApproved, "Application has been approved."},
	"decline":       {domain.StatusDeclined, "Application has been declined."},
	"manual_review": {domain.StatusManualReview, "Application has been sent for manual review."},
}

// recordDecision applies an underwriter decision and re-renders the panel.
func (h *Handler) recordDecision(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	id := chi.URLParam(r, "id")
	d, ok := decisions[r.FormValue("decision")]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown decision %q", r.FormValue("decision")), 400)
		return
	}
	s, err := h.repo.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	notes := strings.TrimSpace(r.FormValue("notes"))
	if notes == "" {
		render(w, r, h.views.DecisionPanel(templates.DetailData{
			Submission: s,
			ErrorTitle: "Notes required",
			Error:      "Please add notes explaining your decision.",
		}))
		return
	}

	status := d.status
	updated, err := h.repo.Update(r.Context(), id, domain.SubmissionUpdate{Status: &status, DecisionNotes: &notes})
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		render(w, r, h.views.DecisionPanel(templates.DetailData{
			Submission: s,
			Notes:      notes,
			ErrorTitle: "Decision not allowed",
			Error:      err.Error(),
		}))
		return
	case err != nil:
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	h.log.Info("decision recorded", "id", id, "status", updated.Status)
	render(w, r, h.views.DecisionPanel(templates.DetailData{Submission: updated, Notice: d.notice}))
}

func (h *Handler) submissionReport(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	var buf bytes.Buffer
	if err := h.reports.SubmissionReport(&s, &buf); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writePDF(w, fmt.Sprintf("%s_risk_report.pdf", s.ID), buf.Bytes())
}

func (h *Handler) reviewQueue(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")
	if filter == "" {
		filter = "all"
	}
	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = "priority"
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	items := filterQueue(mockdata.QueueItems(), filter, q)
	sortQueue(items, sortBy)
	render(w, r, h.views.ReviewQueue(templates.QueueData{
		Stats:   mockdata.QueueStats(),
		Items:   items,
		Filter:  filter,
		Sort:    sortBy,
		Query:   q,
		Filters: queueFilters,
		Sorts:   queueSorts,
	}))
}

func (h *Handler) riskAnalysis(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.views.RiskAnalysis(templates.RiskData{
		Overview: mockdata.RiskOverview(),
		HighRisk: mockdata.HighRiskSubmissions(),
		Trends:   mockdata.RiskTrends(),
	}))
}

func (h *Handler) reportsPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.views.Reports(templates.ReportsData{
		Metrics:      mockdata.ReportMetrics(),
		Distribution: mockdata.RiskDistribution(),
		Reports:      mockdata.RecentReports(),
	}))
}

func (h *Handler) summaryReport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.reports.Summary(mockdata.ReportMetrics(), mockdata.RiskDistribution(), &buf); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	name := "underwriting-summary"
	if slug := r.URL.Query().Get("report"); slug != "" && isSlug(slug) {
		name = slug
	}
	writePDF(w, fmt.Sprintf("%s_%s.pdf", name, time.Now().In(h.views.Location()).Format("20060102")), buf.Bytes())
}

func isSlug(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}

func (h *Handler) settingsPage(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	render(w, r, h.views.Settings(templates.NewSettingsData(s)))
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	s, err := parseSettingsForm(r)
	if err == nil {
		err = h.settings.Save(r.Context(), s)
	}
	data := templates.NewSettingsData(s)
	if err != nil {
		h.log.Warn("settings not saved", "err", err)
		data.Error = err.Error()
	} else {
		data.Saved = true
	}
	if r.Header.Get("HX-Request") == "true" {
		render(w, r, h.views.SettingsForm(data))
		return
	}
	render(w, r, h.views.Settings(data))
}

func parseSettingsForm(r *http.Request) (domain.Settings, error) {
	s := domain.Settings{
		Name:               strings.TrimSpace(r.FormValue("name")),
		Email:              strings.TrimSpace(r.FormValue("email")),
		Role:               r.FormValue("role"),
		EmailNotifications: r.FormValue("emailNotifications") == "on",
		RiskAlerts:         r.FormValue("riskAlerts") == "on",
		DailyReports:       r.FormValue("dailyReports") == "on",
		Language:           r.FormValue("language"),
		Timezone:           r.FormValue("timezone"),
	}
	var err error
	if s.RiskThreshold, err = formInt(r, "riskThreshold"); err != nil {
		return s, err
	}
	if s.ConfidenceThreshold, err = formInt(r, "confidenceThreshold"); err != nil {
		return s, err
	}
	if s.DataRetention, err = formInt(r, "dataRetention"); err != nil {
		return s, err
	}
	limit := strings.ReplaceAll(r.FormValue("autoApprovalLimit"), ",", "")
	if s.AutoApprovalLimit, err = strconv.ParseFloat(limit, 64); err != nil {
		return s, fmt.Errorf("auto-approval limit: %w", err)
	}
	return s, nil
}

func formInt(r *http.Request, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
