package ui

import (
	"time"

	"github.com/dustin/go-humanize"
)

const dateFormat = "2006-01-02"

// FormatTimeAgo returns a relative age like "2 minutes ago".
func FormatTimeAgo(then time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return humanize.Time(then)
}

// FormatDate formats a date as YYYY-MM-DD, or "-" for nil.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(dateFormat)
}

// FormatDueDate formats a due date, coloring it red once it has passed.
func FormatDueDate(due *time.Time, now time.Time) string {
	if due == nil {
		return "-"
	}
	formatted := due.Format(dateFormat)
	if due.Before(now) {
		return colorize(ansiRed, formatted)
	}
	return formatted
}
