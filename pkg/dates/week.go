package dates

import (
	"fmt"
	"time"
)

// weekdayAbbrev holds the Portuguese 3-letter weekday abbreviations, indexed
// by time.Weekday (Sunday = 0).
var weekdayAbbrev = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// Window returns the Monday-anchored 7-day window containing the civil day
// of ref, with display labels of form "Seg 02".
func Window(ref time.Time) WeekWindow {
	return windowFromDay(ref.In(keyLocation))
}

// WindowFromKey is Window for a raw date key, e.g. a weekStart query
// parameter. An unparseable key yields a window with empty Days and Labels;
// callers signal invalid input by checking for emptiness.
func WindowFromKey(raw string) WeekWindow {
	day, err := ParseDateKey(raw)
	if err != nil {
		return WeekWindow{}
	}
	return windowFromDay(day)
}

// ResolveWeekStart normalizes a caller-supplied week start key. It currently
// passes the key through unchanged; see SnapToWeekStart for the stricter
// variant that anchors arbitrary keys to their Monday.
func ResolveWeekStart(rawKey string) string {
	return rawKey
}

// SnapToWeekStart returns the Monday key of the week containing rawKey.
// Unparseable keys are returned unchanged, keeping it a drop-in replacement
// for ResolveWeekStart.
func SnapToWeekStart(rawKey string) string {
	day, err := ParseDateKey(rawKey)
	if err != nil {
		return rawKey
	}
	return mondayOf(day).Format(DateKeyFormat)
}

func windowFromDay(day time.Time) WeekWindow {
	monday := mondayOf(day)

	w := WeekWindow{
		MondayKey: monday.Format(DateKeyFormat),
		Days:      make([]string, 7),
		Labels:    make([]string, 7),
	}
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		w.Days[i] = d.Format(DateKeyFormat)
		w.Labels[i] = fmt.Sprintf("%s %02d", weekdayAbbrev[d.Weekday()], d.Day())
	}
	return w
}

// mondayOf returns the Monday on or before day. Sunday counts as the end of
// the week, so it anchors 6 days back.
func mondayOf(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := day.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, keyLocation)
}
