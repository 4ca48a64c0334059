package handlers

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/templates"
)

var queueFilters = []templates.QueueFilter{
	{Value: "all", Label: "All Items"},
	{Value: "pending", Label: "Pending Review"},
	{Value: "overdue", Label: "Overdue"},
	{Value: "in_progress", Label: "In Progress"},
}

var queueSorts = []templates.QueueFilter{
	{Value: "priority", Label: "Priority"},
	{Value: "time", Label: "Time in Queue"},
	{Value: "risk", Label: "Risk Score"},
	{Value: "due", Label: "Due Date"},
}

// queueStatus maps a filter value onto the item status it selects.
var queueStatus = map[string]string{
	"pending":     "pending_review",
	"overdue":     "overdue",
	"in_progress": "in_progress",
}

func filterQueue(items []domain.QueueItem, filter, q string) []domain.QueueItem {
	want, byStatus := queueStatus[filter]
	q = strings.ToLower(q)
	var out []domain.QueueItem
	for _, it := range items {
		if byStatus && it.Status != want {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.ID), q) && !strings.Contains(strings.ToLower(it.Applicant), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// sortQueue orders items in place. Unknown keys sort by priority.
func sortQueue(items []domain.QueueItem, by string) {
	switch by {
	case "time":
		slices.SortStableFunc(items, func(a, b domain.QueueItem) int {
			return cmp.Compare(queueMinutes(b.TimeInQueue), queueMinutes(a.TimeInQueue))
		})
	case "risk":
		slices.SortStableFunc(items, func(a, b domain.QueueItem) int {
			return cmp.Compare(b.RiskScore, a.RiskScore)
		})
	case "due":
		slices.SortStableFunc(items, func(a, b domain.QueueItem) int {
			return cmp.Compare(dueMinutes(a.DueDate), dueMinutes(b.DueDate))
		})
	default:
		slices.SortStableFunc(items, func(a, b domain.QueueItem) int {
			return cmp.Compare(rank(a.Priority), rank(b.Priority))
		})
	}
}

func rank(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return len(priorityRank)
}

// queueMinutes parses durations such as "2h 15m" or "30m".
func queueMinutes(s string) int {
	total := 0
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f[:len(f)-1])
		if err != nil {
			continue
		}
		switch f[len(f)-1] {
		case 'h':
			total += n * 60
		case 'm':
			total += n
		}
	}
	return total
}

// dueMinutes orders labels such as "Today, 5:00 PM" and "Tomorrow, 10:00 AM".
// Unparseable labels sort last.
func dueMinutes(s string) int {
	day, clock, ok := strings.Cut(s, ", ")
	if !ok {
		return 1 << 30
	}
	offset := 0
	switch day {
	case "Today":
	case "Tomorrow":
		offset = 24 * 60
	default:
		return 1 << 30
	}
	t, err := time.Parse("3:04 PM", clock)
	if err != nil {
		return 1 << 30
	}
	return offset + t.Hour()*60 + t.Minute()
}
