package templates

import (
	"strings"

	"github.com/csg33k/underwriteai/internal/domain"
)

// Badge is a small coloured label.
type Badge struct {
	Label   string
	Class   string
	Variant string // "" for a coloured badge, "secondary" for the neutral fallback
}

const secondaryClass = "bg-slate-100 text-slate-800"

func secondary(raw string) Badge {
	return Badge{Label: raw, Class: secondaryClass, Variant: "secondary"}
}

var statusBadges = map[string]Badge{
	"approved":       {Label: "Approved", Class: "bg-green-100 text-green-800"},
	"pending":        {Label: "Pending", Class: "bg-orange-100 text-orange-800"},
	"manual_review":  {Label: "Manual Review", Class: "bg-blue-100 text-blue-800"},
	"declined":       {Label: "Declined", Class: "bg-red-100 text-red-800"},
	"pending_review": {Label: "Pending Review", Class: "bg-blue-100 text-blue-800"},
	"in_progress":    {Label: "In Progress", Class: "bg-yellow-100 text-yellow-800"},
	"overdue":        {Label: "Overdue", Class: "bg-red-100 text-red-800"},
}

var priorityBadges = map[string]Badge{
	"high":   {Label: "High Priority", Class: "bg-red-100 text-red-800"},
	"medium": {Label: "Medium", Class: "bg-orange-100 text-orange-800"},
	"low":    {Label: "Low", Class: "bg-green-100 text-green-800"},
}

var urgencyBadges = map[string]Badge{
	"high":   {Label: "High Priority", Class: "bg-red-100 text-red-800"},
	"medium": {Label: "Medium Priority", Class: "bg-orange-100 text-orange-800"},
	"low":    {Label: "Low Priority", Class: "bg-green-100 text-green-800"},
}

var recommendationBadges = map[string]Badge{
	"Approve":       {Label: "Approve", Class: "bg-green-100 text-green-800"},
	"Decline":       {Label: "Decline", Class: "bg-red-100 text-red-800"},
	"Manual Review": {Label: "Manual Review", Class: "bg-blue-100 text-blue-800"},
}

func lookup(table map[string]Badge, raw string) Badge {
	if b, ok := table[raw]; ok {
		return b
	}
	return secondary(raw)
}

// StatusBadge covers submission statuses and review queue states.
func StatusBadge(status string) Badge { return lookup(statusBadges, status) }

// PriorityBadge is used by the review queue.
func PriorityBadge(priority string) Badge { return lookup(priorityBadges, priority) }

// UrgencyBadge is used by the risk analysis page.
func UrgencyBadge(urgency string) Badge { return lookup(urgencyBadges, urgency) }

// RecommendationBadge labels the AI recommendation in the review queue.
func RecommendationBadge(rec string) Badge { return lookup(recommendationBadges, rec) }

// ImpactColor is the text colour for a risk factor impact.
func ImpactColor(impact string) string {
	switch strings.ToLower(impact) {
	case "low":
		return "text-green-600"
	case "medium":
		return "text-orange-600"
	case "high":
		return "text-red-600"
	default:
		return "text-slate-600"
	}
}

// RiskLevelColor styles a risk level label such as "Medium-High".
func RiskLevelColor(level string) string {
	switch strings.ToLower(level) {
	case "low":
		return "text-green-600 bg-green-50"
	case "medium":
		return "text-orange-600 bg-orange-50"
	case "medium-high":
		return "text-red-600 bg-red-50"
	case "high":
		return "text-red-700 bg-red-100"
	default:
		return "text-slate-600 bg-slate-50"
	}
}

// ScoreColor styles a numeric risk score by its band.
func ScoreColor(score int) string {
	c := domain.BandForScore(score).Color
	return "text-" + c + "-600 bg-" + c + "-50"
}

// ScoreBorder is ScoreColor with a matching border, used on risk cards.
func ScoreBorder(score int) string {
	return ScoreColor(score) + " border-" + domain.BandForScore(score).Color + "-200"
}

// ScoreText is only the text colour for a score.
func ScoreText(score int) string {
	return "text-" + domain.BandForScore(score).Color + "-600"
}

// AccentIcon is the tinted square behind a stat card icon.
func AccentIcon(accent string) string {
	if accent == "" {
		accent = "slate"
	}
	return "bg-" + accent + "-100 text-" + accent + "-600"
}

// ChangeColor colours a signed change; rising numbers are green.
func ChangeColor(c domain.StatCard) string {
	switch {
	case c.Change == "":
		return "text-slate-500"
	case c.Rising():
		return "text-green-600"
	default:
		return "text-red-600"
	}
}

// BarColor is the fill class for a distribution bar.
func BarColor(color string) string {
	if color == "" {
		color = "slate"
	}
	return "bg-" + color + "-500"
}

// Title turns a lower-case identifier such as "manual_review" into "Manual Review".
func Title(raw string) string {
	words := strings.FieldsFunc(raw, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
