// Package format renders dates, money and sizes the way the dashboard shows
// them. Dates follow Canadian English conventions.
package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var months = [...]string{
	"Jan.", "Feb.", "Mar.", "Apr.", "May", "Jun.",
	"Jul.", "Aug.", "Sep.", "Oct.", "Nov.", "Dec.",
}

// Date renders t as "Jan. 15, 2024, 10:30 a.m." in loc. A nil loc means UTC.
func Date(t time.Time, loc *time.Location) string {
	t = in(t, loc)
	return monthDay(t) + ", " + strconv.Itoa(t.Year()) + ", " + clock(t)
}

// DateShort is Date without the year: "Jan. 15, 10:30 a.m.".
func DateShort(t time.Time, loc *time.Location) string {
	t = in(t, loc)
	return monthDay(t) + ", " + clock(t)
}

// Day renders only the calendar date: "Jan. 15, 2024".
func Day(t time.Time, loc *time.Location) string {
	t = in(t, loc)
	return monthDay(t) + ", " + strconv.Itoa(t.Year())
}

func in(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc)
}

func monthDay(t time.Time) string {
	return months[t.Month()-1] + " " + strconv.Itoa(t.Day())
}

func clock(t time.Time) string {
	h := t.Hour()
	suffix := "a.m."
	if h >= 12 {
		suffix = "p.m."
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(h))
	b.WriteByte(':')
	if t.Minute() < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(t.Minute()))
	b.WriteByte(' ')
	b.WriteString(suffix)
	return b.String()
}

// Money renders a currency amount with thousands separators: "$500,000".
// Cents are shown only when present.
func Money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v == math.Trunc(v) {
		return sign + "$" + humanize.Comma(int64(v))
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", v)
}

// Size renders a byte count as a short SI label: "2.3 MB".
func Size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// Percent renders a 0..1 ratio as a whole percentage: "92%".
func Percent(ratio float64) string {
	return strconv.Itoa(int(math.Round(ratio*100))) + "%"
}
