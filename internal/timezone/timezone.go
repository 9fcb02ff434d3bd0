package timezone

import "time"

const DefaultTimezone = "Europe/Rome"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDate reads YYYY-MM-DD as a calendar day. The result is midnight UTC so
// that it round-trips through a DATE column unchanged.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today is the current calendar day in tz, as midnight UTC.
func Today(now time.Time, tz string) time.Time {
	local := now.In(Location(tz))
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
