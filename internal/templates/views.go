// Package templates renders the dashboard pages. Each page is a
// templ.Component whose markup lives in html/*.html and is executed with
// html/template, wrapped in the shared navigation shell.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/goccy/go-json"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/format"
	"github.com/csg33k/underwriteai/internal/intake"
	"github.com/csg33k/underwriteai/internal/mockdata"
)

//go:embed html/*.html
var files embed.FS

// NavItem is one link in the sidebar.
type NavItem struct {
	Title string
	URL   string
}

// Navigation is the fixed sidebar.
var Navigation = []NavItem{
	{Title: "Dashboard", URL: "/"},
	{Title: "Submissions", URL: "/submissions"},
	{Title: "Reports", URL: "/reports"},
	{Title: "Settings", URL: "/settings"},
}

// ── Page data ─────────────────────────────────────────────────────────────────

type DashboardData struct {
	Stats      []domain.StatCard
	Tiles      []mockdata.ActionTile
	QuickStats []domain.StatCard
	Recent     []domain.Submission
}

type SubmissionsData struct {
	Submissions []domain.Submission
	Total       int
	Query       string
	Status      string
	Statuses    []domain.Status
}

type NewSubmissionData struct {
	Accept  string
	Process ProcessData
}

// ProcessData is the right-hand result panel of the new submission page.
type ProcessData struct {
	Result     *intake.Result
	ErrorTitle string
	Error      string
}

type DetailData struct {
	Submission domain.Submission
	Notes      string
	ErrorTitle string
	Error      string
	Notice     string
}

// Decided reports whether the submission has left the pending states.
func (d DetailData) Decided() bool {
	return d.Submission.Status == domain.StatusApproved || d.Submission.Status == domain.StatusDeclined
}

// QueueFilter is one option of the review queue status filter.
type QueueFilter struct {
	Value string
	Label string
}

type QueueData struct {
	Stats   []domain.StatCard
	Items   []domain.QueueItem
	Filter  string
	Sort    string
	Query   string
	Filters []QueueFilter
	Sorts   []QueueFilter
}

type RiskData struct {
	Overview []domain.StatCard
	HighRisk []domain.HighRiskSubmission
	Trends   []domain.RiskTrend
}

type ReportsData struct {
	Metrics      []domain.StatCard
	Distribution []domain.RiskBucket
	Reports      []domain.ReportRef
}

type SettingsData struct {
	Settings         domain.Settings
	Saved            bool
	Error            string
	RoleOptions      []domain.Option
	ThresholdOptions []domain.Option
	LanguageOptions  []domain.Option
	TimezoneOptions  []domain.Option
	RetentionOptions []domain.Option
}

// NewSettingsData fills in the select options for s.
func NewSettingsData(s domain.Settings) SettingsData {
	return SettingsData{
		Settings:         s,
		RoleOptions:      domain.RoleOptions,
		ThresholdOptions: domain.RiskThresholdOptions,
		LanguageOptions:  domain.LanguageOptions,
		TimezoneOptions:  domain.TimezoneOptions,
		RetentionOptions: domain.DataRetentionOptions,
	}
}

// ── Views ─────────────────────────────────────────────────────────────────────

type shell struct {
	Title  string
	Active string
	Nav    []NavItem
	Data   any
}

// Views holds the parsed page templates. Dates render in the location given
// to New.
type Views struct {
	loc   *time.Location
	pages map[string]*template.Template
}

var pageFiles = []string{
	"dashboard",
	"submissions",
	"submission_new",
	"submission_detail",
	"review_queue",
	"risk_analysis",
	"reports",
	"settings",
}

func New(loc *time.Location) (*Views, error) {
	if loc == nil {
		loc = time.UTC
	}
	v := &Views{loc: loc, pages: make(map[string]*template.Template, len(pageFiles))}
	base, err := template.New("layout").Funcs(v.funcs()).ParseFS(files, "html/layout.html", "html/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	for _, name := range pageFiles {
		t, err := template.Must(base.Clone()).ParseFS(files, "html/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// MustNew is New that panics on a template error.
func MustNew(loc *time.Location) *Views {
	v, err := New(loc)
	if err != nil {
		panic(err)
	}
	return v
}

// Location is the display timezone.
func (v *Views) Location() *time.Location { return v.loc }

func (v *Views) page(name, title, active string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.pages[name].ExecuteTemplate(w, "base", shell{Title: title, Active: active, Nav: Navigation, Data: data})
	})
}

func (v *Views) fragment(name, block string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.pages[name].ExecuteTemplate(w, block, data)
	})
}

func (v *Views) Dashboard(d DashboardData) templ.Component {
	return v.page("dashboard", "Dashboard", "/", d)
}

func (v *Views) Submissions(d SubmissionsData) templ.Component {
	return v.page("submissions", "Submissions", "/submissions", d)
}

func (v *Views) NewSubmission(d NewSubmissionData) templ.Component {
	return v.page("submission_new", "New Submission", "/submissions", d)
}

// ProcessResult is the htmx fragment swapped in after processing.
func (v *Views) ProcessResult(d ProcessData) templ.Component {
	return v.fragment("submission_new", "process-result", d)
}

func (v *Views) SubmissionDetail(d DetailData) templ.Component {
	return v.page("submission_detail", "Submission "+d.Submission.ID, "/submissions", d)
}

// DecisionPanel is the htmx fragment for the decision form.
func (v *Views) DecisionPanel(d DetailData) templ.Component {
	return v.fragment("submission_detail", "decision-panel", d)
}

func (v *Views) ReviewQueue(d QueueData) templ.Component {
	return v.page("review_queue", "Review Queue", "/", d)
}

func (v *Views) RiskAnalysis(d RiskData) templ.Component {
	return v.page("risk_analysis", "Risk Analysis", "/", d)
}

func (v *Views) Reports(d ReportsData) templ.Component {
	return v.page("reports", "Reports & Analytics", "/reports", d)
}

func (v *Views) Settings(d SettingsData) templ.Component {
	return v.page("settings", "Settings", "/settings", d)
}

// SettingsForm is the htmx fragment re-rendered after a save.
func (v *Views) SettingsForm(d SettingsData) templ.Component {
	return v.fragment("settings", "settings-form", d)
}

// ── Template functions ───────────────────────────────────────────────────────

func (v *Views) funcs() template.FuncMap {
	return template.FuncMap{
		"statusBadge":   func(s any) Badge { return StatusBadge(fmt.Sprint(s)) },
		"priorityBadge": PriorityBadge,
		"urgencyBadge":  UrgencyBadge,
		"recBadge":      RecommendationBadge,
		"impactColor":   ImpactColor,
		"riskColor":     RiskLevelColor,
		"scoreColor":    ScoreColor,
		"scoreBorder":   ScoreBorder,
		"scoreText":     ScoreText,
		"accentIcon":    AccentIcon,
		"changeColor":   ChangeColor,
		"barColor":      BarColor,
		"title":         func(s any) string { return Title(fmt.Sprint(s)) },
		"date":          func(t any) string { return v.date(t, format.Date) },
		"dateShort":     func(t any) string { return v.date(t, format.DateShort) },
		"money":         format.Money,
		"percent":       format.Percent,
		"join":          strings.Join,
		"yesNo": func(b bool) string {
			if b {
				return "Yes"
			}
			return "No"
		},
		"same": func(a, b any) bool { return fmt.Sprint(a) == fmt.Sprint(b) },
		"docs": func(d *domain.Documents) int { return d.Len() },
		"dict": dict,
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			return string(b), err
		},
	}
}

func (v *Views) date(t any, f func(time.Time, *time.Location) string) string {
	switch t := t.(type) {
	case time.Time:
		return f(t, v.loc)
	case *time.Time:
		if t == nil {
			return ""
		}
		return f(*t, v.loc)
	default:
		return ""
	}
}

// dict builds a map from alternating keys and values so a template can pass
// several arguments to a nested block.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
