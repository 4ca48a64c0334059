// Package pdf renders printable underwriting reports. A submission report
// shows the applicant, the risk assessment with its factor table, the
// uploaded documents and the audit trail. The summary report prints the
// reports page metrics and score distribution.
package pdf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/format"
)

type Generator struct {
	loc *time.Location
	now func() time.Time
}

// New returns a generator that prints timestamps in loc.
func New(loc *time.Location) *Generator {
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{loc: loc, now: time.Now}
}

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	return pdf
}

// SubmissionReport writes the risk assessment report for s to w.
func (g *Generator) SubmissionReport(s *domain.Submission, w io.Writer) error {
	pdf := newDocument()
	pdf.AddPage()
	lay := newLayout(pdf)

	lay.headerBar("UNDERWRITEAI  RISK ASSESSMENT REPORT")

	// ── Applicant ────────────────────────────────────────────────────────────
	lay.sectionTitle("APPLICANT INFORMATION")
	lay.pair("Applicant: "+s.ApplicantName, "Submission: "+s.ID)
	lay.pair("Date of Birth: "+s.DateOfBirth, "Occupation: "+s.Occupation)
	lay.pair("Insurance Type: "+string(s.InsuranceType), "Coverage: "+format.Money(s.CoverageAmount))
	submitted := "-"
	if s.SubmittedAt != nil {
		submitted = format.Date(*s.SubmittedAt, g.loc)
	}
	lay.pair("Smoker: "+yesNo(s.Smoker), "Submitted: "+submitted)
	conditions := "None"
	if len(s.MedicalConditions) > 0 {
		conditions = strings.Join(s.MedicalConditions, ", ")
	}
	lay.line("Medical Conditions: " + conditions)
	lay.line("Status: " + statusLabel(s.Status))
	if s.DecisionNotes != "" {
		lay.line("Decision Notes: " + s.DecisionNotes)
	}
	lay.closeBox()

	// ── Risk assessment ──────────────────────────────────────────────────────
	if ra := s.RiskAssessment; ra != nil {
		lay.gap(4)
		lay.sectionTitle("RISK ASSESSMENT")
		r, gr, b := bandRGB(domain.BandForScore(ra.RiskScore).Color)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(r, gr, b)
		pdf.SetXY(lay.left, lay.y)
		pdf.CellFormat(lay.width/2, 9, fmt.Sprintf("Score %d  %s", ra.RiskScore, ra.RiskLevel), "L", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(lay.width/2, 9, "Confidence: "+format.Percent(ra.Confidence), "R", 1, "R", false, 0, "")
		lay.y += 9
		lay.line("Recommendation: " + ra.Recommendation)
		lay.closeBox()

		lay.gap(4)
		lay.table(
			[]column{{"Factor", 0.22, "L"}, {"Impact", 0.14, "C"}, {"Score", 0.12, "C"}, {"Description", 0.52, "L"}},
			factorRows(ra.Factors),
		)
	}

	// ── Documents ────────────────────────────────────────────────────────────
	if docs := s.Documents; docs != nil && len(docs.Items) > 0 {
		lay.gap(5)
		rows := make([][]string, 0, len(docs.Items))
		for _, d := range docs.Items {
			rows = append(rows, []string{d.Name, d.Type, d.Size})
		}
		lay.table([]column{{"Document", 0.55, "L"}, {"Type", 0.25, "L"}, {"Size", 0.20, "R"}}, rows)
	}

	// ── Audit trail ──────────────────────────────────────────────────────────
	if len(s.AuditTrail) > 0 {
		lay.gap(5)
		rows := make([][]string, 0, len(s.AuditTrail))
		for _, e := range s.AuditTrail {
			rows = append(rows, []string{format.DateShort(e.Timestamp, g.loc), e.Action, e.User, e.Details})
		}
		lay.table([]column{{"When", 0.2, "L"}, {"Action", 0.25, "L"}, {"By", 0.15, "L"}, {"Details", 0.4, "L"}}, rows)
	}

	lay.footer("Generated by UnderwriteAI", s.ID+" | "+format.Date(g.now(), g.loc))
	return pdf.Output(w)
}

// Summary writes the underwriting summary to w.
func (g *Generator) Summary(metrics []domain.StatCard, buckets []domain.RiskBucket, w io.Writer) error {
	pdf := newDocument()
	pdf.AddPage()
	lay := newLayout(pdf)

	lay.headerBar("UNDERWRITEAI  MONTHLY UNDERWRITING SUMMARY")

	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{m.Title, m.Value, m.Change, m.Period})
	}
	lay.table([]column{{"Metric", 0.4, "L"}, {"Value", 0.2, "R"}, {"Change", 0.15, "R"}, {"Period", 0.25, "L"}}, rows)

	lay.gap(6)
	lay.sectionTitle("RISK SCORE DISTRIBUTION")
	labelW := lay.width * 0.35
	countW := lay.width * 0.15
	barMax := lay.width - labelW - countW - 4
	pdf.SetFont("Helvetica", "", 9)
	for _, b := range buckets {
		pdf.SetXY(lay.left, lay.y)
		pdf.CellFormat(labelW, 7, b.Label, "L", 0, "L", false, 0, "")
		pdf.CellFormat(countW, 7, strconv.Itoa(b.Count)+fmt.Sprintf(" (%.1f%%)", b.Percentage), "", 0, "R", false, 0, "")
		r, gr, bl := bandRGB(b.Color)
		pdf.SetFillColor(r, gr, bl)
		pdf.Rect(lay.left+labelW+countW+2, lay.y+1.5, barMax*b.Percentage/100, 4, "F")
		pdf.SetXY(lay.left+lay.width, lay.y)
		pdf.CellFormat(0, 7, "", "R", 1, "L", false, 0, "")
		lay.y += 7
	}
	lay.closeBox()

	lay.footer("Generated by UnderwriteAI", format.Date(g.now(), g.loc))
	return pdf.Output(w)
}

// ── Layout ───────────────────────────────────────────────────────────────────

type column struct {
	title string
	share float64 // fraction of the content width
	align string
}

type layout struct {
	pdf    *fpdf.Fpdf
	left   float64
	width  float64
	bottom float64
	y      float64
}

func newLayout(pdf *fpdf.Fpdf) *layout {
	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, marginR, marginB := pdf.GetMargins()
	return &layout{
		pdf:    pdf,
		left:   marginL,
		width:  pageW - marginL - marginR,
		bottom: pageH - marginB,
		y:      marginT,
	}
}

func (l *layout) gap(h float64) { l.y += h }

// ensure starts a new page when fewer than h millimetres remain.
func (l *layout) ensure(h float64) {
	if l.y+h > l.bottom-8 {
		l.pdf.AddPage()
		_, top, _, _ := l.pdf.GetMargins()
		l.y = top
	}
}

func (l *layout) headerBar(title string) {
	pdf := l.pdf
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(l.left, l.y, l.width, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(l.left+2, l.y+1.5)
	pdf.CellFormat(l.width-4, 7, title, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(l.left, l.y+1.5)
	pdf.CellFormat(l.width-2, 7, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	l.y += 13
}

func (l *layout) sectionTitle(title string) {
	l.ensure(12)
	l.pdf.SetFillColor(240, 240, 240)
	l.pdf.SetFont("Helvetica", "B", 8)
	l.pdf.SetXY(l.left, l.y)
	l.pdf.CellFormat(l.width, 5.5, title, "LRT", 1, "L", true, 0, "")
	l.y += 5.5
}

func (l *layout) pair(left, right string) {
	half := l.width / 2
	l.pdf.SetFont("Helvetica", "", 9)
	l.pdf.SetXY(l.left, l.y)
	l.pdf.CellFormat(half, 6, left, "L", 0, "L", false, 0, "")
	l.pdf.CellFormat(half, 6, right, "R", 1, "L", false, 0, "")
	l.y += 6
}

func (l *layout) line(text string) {
	l.pdf.SetFont("Helvetica", "", 9)
	l.pdf.SetXY(l.left, l.y)
	l.pdf.CellFormat(l.width, 5.5, text, "LR", 1, "L", false, 0, "")
	l.y += 5.5
}

func (l *layout) closeBox() {
	l.pdf.SetXY(l.left, l.y)
	l.pdf.CellFormat(l.width, 0, "", "LRB", 1, "L", false, 0, "")
}

func (l *layout) table(cols []column, rows [][]string) {
	pdf := l.pdf
	header := func() {
		pdf.SetFillColor(30, 30, 30)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 8.5)
		pdf.SetXY(l.left, l.y)
		for i, c := range cols {
			ln := 0
			if i == len(cols)-1 {
				ln = 1
			}
			pdf.CellFormat(l.width*c.share, 7, c.title, "1", ln, c.align, true, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
		l.y += 7
	}

	const rowH = 6.5
	l.ensure(7 + rowH)
	header()
	pdf.SetFont("Helvetica", "", 8.5)
	for i, row := range rows {
		if l.y+rowH > l.bottom-8 {
			l.ensure(l.bottom)
			header()
			pdf.SetFont("Helvetica", "", 8.5)
		}
		// Alternating row background
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetXY(l.left, l.y)
		for j, c := range cols {
			ln := 0
			if j == len(cols)-1 {
				ln = 1
			}
			cell := ""
			if j < len(row) {
				cell = fit(pdf, row[j], l.width*c.share-2)
			}
			pdf.CellFormat(l.width*c.share, rowH, cell, "1", ln, c.align, true, 0, "")
		}
		l.y += rowH
	}
}

func (l *layout) footer(left, right string) {
	pdf := l.pdf
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetXY(l.left, l.bottom-6)
	pdf.SetFont("Helvetica", "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(l.width/2, 5, left, "", 0, "L", false, 0, "")
	pdf.CellFormat(l.width/2, 5, right, "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func factorRows(factors []domain.RiskFactor) [][]string {
	rows := make([][]string, 0, len(factors))
	for _, f := range factors {
		rows = append(rows, []string{f.Factor, f.Impact, strconv.Itoa(f.Score), f.Description})
	}
	return rows
}

// fit truncates s with an ellipsis so it fits in width millimetres at the
// current font.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func bandRGB(color string) (int, int, int) {
	switch color {
	case "red":
		return 220, 38, 38
	case "orange":
		return 234, 88, 12
	case "yellow":
		return 202, 138, 4
	case "green":
		return 22, 163, 74
	default:
		return 100, 116, 139
	}
}

func statusLabel(s domain.Status) string {
	if s == "" {
		return "-"
	}
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
