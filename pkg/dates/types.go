package dates

// DateKeyFormat is the canonical civil-day key layout.
const DateKeyFormat = "2006-01-02"

// WeekWindow is the Monday-anchored 7-day span containing a reference day.
// Days and Labels are parallel; both are empty when the reference could not
// be resolved to a valid day.
type WeekWindow struct {
	MondayKey string
	Days      []string
	Labels    []string
}
