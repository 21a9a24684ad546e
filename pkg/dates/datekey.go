package dates

import "time"

// keyLocation is the fixed civil timezone for all date keys (UTC−3, Brazil
// time). Keys must never depend on the host timezone, so a fixed offset is
// used instead of a loaded IANA zone.
var keyLocation = time.FixedZone("UTC-3", -3*60*60)

// ToDateKey returns the YYYY-MM-DD key of the civil day containing t under
// UTC−3. Total: every instant maps to exactly one key.
func ToDateKey(t time.Time) string {
	return t.In(keyLocation).Format(DateKeyFormat)
}

// ParseDateKey returns midnight UTC−3 of the day named by key.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyFormat, key, keyLocation)
}

// AddDays returns the key n calendar days after key, or "" when key is not a
// valid date key.
func AddDays(key string, n int) string {
	day, err := ParseDateKey(key)
	if err != nil {
		return ""
	}
	return day.AddDate(0, 0, n).Format(DateKeyFormat)
}
