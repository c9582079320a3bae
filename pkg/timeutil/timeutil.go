// Package timeutil converts between stored UTC instants and the business's
// civil local time. All conversions go through a *time.Location so real
// timezone-database rules apply; nothing in this package pins a fixed offset.
package timeutil

import (
	"time"

	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// CivilMinutes returns the minute of day (hours*60+minutes) of instant
// as seen on the wall clock of loc.
func CivilMinutes(instant time.Time, loc *time.Location) int {
	local := instant.In(loc)
	return local.Hour()*60 + local.Minute()
}

// CivilTime returns the HH:MM wall-clock time of instant in loc.
func CivilTime(instant time.Time, loc *time.Location) types.TimeString {
	return types.NewTimeString(instant.In(loc))
}

// CivilWeekday returns the weekday of instant on the wall clock of loc.
func CivilWeekday(instant time.Time, loc *time.Location) time.Weekday {
	return instant.In(loc).Weekday()
}

// AtCivilTime composes the UTC instant corresponding to the given civil
// date and minute of day in loc. This is the single point where civil
// date+time pairs become instants, on both the read and write paths.
func AtCivilTime(date time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc).UTC()
}

// DayBounds returns the UTC instants of local 00:00:00 and 23:59:59
// of the civil date in loc.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Second)
	return start.UTC(), end.UTC()
}

// SameCivilDay reports whether two instants fall on the same civil date in loc.
func SameCivilDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
