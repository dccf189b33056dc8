package parser

import (
	"strings"
	"time"
)

// weekdayKeywords is checked Monday through Sunday; the first name found in
// the text wins.
var weekdayKeywords = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// extractDate resolves relative-date keywords against now. It is total:
// text with no recognized keyword yields now itself.
func extractDate(text string, now time.Time) time.Time {
	switch {
	case strings.Contains(text, "today"):
		return now
	case strings.Contains(text, "yesterday"):
		return now.AddDate(0, 0, -1)
	case strings.Contains(text, "tomorrow"):
		return now.AddDate(0, 0, 1)
	}

	for _, wd := range weekdayKeywords {
		if strings.Contains(text, wd.name) {
			return withWeekday(now, wd.day)
		}
	}

	return now
}

// withWeekday moves t to the given day within its Monday-start week. The
// result may be earlier than t.
func withWeekday(t time.Time, day time.Weekday) time.Time {
	current := isoWeekday(t.Weekday())
	target := isoWeekday(day)
	return t.AddDate(0, 0, target-current)
}

// isoWeekday maps time.Weekday (Sunday=0) to ISO numbering (Monday=1..Sunday=7).
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
