package scheduling

import (
	"strings"
	"time"
)

// ResolveDateRange maps a free-form date-range phrase to a concrete
// (startDate, endDate) pair, both extended to full-day boundaries in now's
// location. Matching is by case-sensitive substring, first match wins, and the
// default branch catches everything else, so this is total over all inputs.
func ResolveDateRange(phrase string, now time.Time) (time.Time, time.Time) {
	var startDate, endDate time.Time

	switch {
	case strings.Contains(phrase, "next week"):
		startDate = now.AddDate(0, 0, 7)
		endDate = now.AddDate(0, 0, 14)
	case strings.Contains(phrase, "tomorrow"):
		startDate = now.AddDate(0, 0, 1)
		endDate = startDate
	case strings.Contains(phrase, "this week"):
		weekday := int(now.Weekday())
		startDate = now.AddDate(0, 0, -weekday)
		endDate = now.AddDate(0, 0, 6-weekday)
	case strings.Contains(phrase, "this Friday"):
		daysUntilFriday := (int(time.Friday) - int(now.Weekday()) + 7) % 7
		startDate = now.AddDate(0, 0, daysUntilFriday)
		endDate = startDate
	default:
		// Next 7 days.
		startDate = now.AddDate(0, 0, 1)
		endDate = now.AddDate(0, 0, 7)
	}

	return startOfDay(startDate), endOfDay(endDate)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
