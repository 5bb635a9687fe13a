// Package extended implements the extended zone processor: a transition
// generation engine that resolves UTC offsets, DST deltas, and abbreviations
// for an arbitrary instant or local date-time against a zonedb.ZoneInfoBroker,
// using a fixed-capacity transition pool with no heap allocation in its
// steady-state path.
//
// Ported from original_source/src/ace_time/ExtendedZoneProcessor.h (Brian T.
// Park, AceTime, MIT License).
package extended

import "github.com/SeppPenner/AceTime/basic"

// modifier values carried on a DateTuple's TimeCode, recording which UTC
// offset was in effect when the time was recorded.
const (
	ModifierWall      = 'w'
	ModifierStandard  = 's'
	ModifierUniversal = 'u'
)

// DateTuple is a (year, month, day, timeCode, modifier) point in time, where
// timeCode is the time of day in 15-minute units and may run negative or
// past 96 before normalize() is applied.
type DateTuple struct {
	Year     int16
	Month    uint8
	Day      uint8
	TimeCode int16
	Modifier byte
}

// Less orders two DateTuples, ignoring Modifier.
func (a DateTuple) Less(b DateTuple) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.TimeCode < b.TimeCode
}

// GreaterOrEqual is the complement of Less.
func (a DateTuple) GreaterOrEqual(b DateTuple) bool { return !a.Less(b) }

// LessOrEqual reports whether a <= b, ignoring Modifier.
func (a DateTuple) LessOrEqual(b DateTuple) bool { return !b.Less(a) }

// Equal compares two DateTuples including Modifier.
func (a DateTuple) Equal(b DateTuple) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Day == b.Day &&
		a.TimeCode == b.TimeCode && a.Modifier == b.Modifier
}

// YearMonth is a (year, month) pair used to bound the viewing window a
// ZoneMatch is built from.
type YearMonth struct {
	Year  int16
	Month uint8
}

// oneDayAsCode is the number of 15-minute units in a full day.
const oneDayAsCode = 4 * 24

// Normalize folds a DateTuple whose TimeCode has reached a full day (in
// either direction) back by one day's worth of code, adjusting the calendar
// date to compensate, so the result lies in (-oneDayAsCode, oneDayAsCode)
// for any input within two days of midnight. A negative TimeCode above
// -oneDayAsCode is left as it is.
func Normalize(dt DateTuple) DateTuple {
	switch {
	case dt.TimeCode <= -oneDayAsCode:
		date := basic.LocalDate{Year: dt.Year, Month: dt.Month, Day: dt.Day}.AddDays(-1)
		dt.Year, dt.Month, dt.Day = date.Year, date.Month, date.Day
		dt.TimeCode += oneDayAsCode
	case dt.TimeCode >= oneDayAsCode:
		date := basic.LocalDate{Year: dt.Year, Month: dt.Month, Day: dt.Day}.AddDays(1)
		dt.Year, dt.Month, dt.Day = date.Year, date.Month, date.Day
		dt.TimeCode -= oneDayAsCode
	}
	return dt
}

// Expand converts tt (whichever modifier it carries) into its 'w', 's', and
// 'u' equivalents, using the UTC offset/delta of the *previous* transition
// (prevOffsetCode/prevDeltaCode), since that is the offset in effect at the
// moment tt was recorded. The returned wall tuple always carries modifier
// 'w'.
func Expand(tt DateTuple, prevOffsetCode, prevDeltaCode int8) (wall, standard, universal DateTuple) {
	switch tt.Modifier {
	case ModifierStandard:
		standard = tt
		universal = DateTuple{tt.Year, tt.Month, tt.Day, tt.TimeCode - int16(prevOffsetCode), ModifierUniversal}
		wall = DateTuple{tt.Year, tt.Month, tt.Day, tt.TimeCode + int16(prevDeltaCode), ModifierWall}
	case ModifierUniversal:
		universal = tt
		standard = DateTuple{tt.Year, tt.Month, tt.Day, tt.TimeCode + int16(prevOffsetCode), ModifierStandard}
		wall = DateTuple{tt.Year, tt.Month, tt.Day, tt.TimeCode + int16(prevOffsetCode) + int16(prevDeltaCode), ModifierWall}
	default: // assume 'w'
		tt.Modifier = ModifierWall
		wall = tt
		standard = DateTuple{tt.Year, tt.Month, tt.Day, tt.TimeCode - int16(prevDeltaCode), ModifierStandard}
		universal = DateTuple{tt.Year, tt.Month, tt.Day, tt.TimeCode - int16(prevDeltaCode) - int16(prevOffsetCode), ModifierUniversal}
	}
	return Normalize(wall), Normalize(standard), Normalize(universal)
}
