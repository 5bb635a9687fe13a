// Package basic provides the date arithmetic primitives shared by the
// extended zone processor: a compact LocalDate and the monthday helper used
// to resolve a TZ rule's ON field ("exact day", "Sun>=8", "lastSun", ...)
// to a concrete calendar day.
package basic

// EpochYear is the calendar year used as the zero point for tiny-year
// arithmetic throughout this module (see zonedb.EpochYear, which this
// mirrors so that basic has no import dependency on zonedb).
const EpochYear int16 = 2000

const secondsPerDay = int64(86400)

var daysInMonth = [13]int8{
	0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int16) bool {
	y := int(year)
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInMonth returns the number of days in (year, month), 1-12.
func DaysInMonth(year int16, month uint8) int8 {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month]
}

// LocalDate is a plain (year, month, day) civil date with no time-of-day
// component.
type LocalDate struct {
	Year  int16
	Month uint8
	Day   uint8
}

// epochDays returns the number of days between 2000-01-01 and d, allowing
// negative results for dates before the epoch. Uses a standard
// days-from-civil algorithm (Howard Hinnant's, public domain), good for the
// full int16 year range this package supports.
func epochDays(year int16, month, day uint8) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	var m int64
	if int64(month) > 2 {
		m = int64(month) - 3
	} else {
		m = int64(month) + 9
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	doy := (153*m+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	daysSinceCivilEpoch := era*146097 + doe - 719468
	// 2000-01-01 is 10957 days after the civil (1970-01-01) epoch.
	return daysSinceCivilEpoch - 10957
}

// civilFromEpochDays is the inverse of epochDays.
func civilFromEpochDays(days int64) (year int16, month, day uint8) {
	z := days + 10957 + 719468
	era := z
	if z < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int16(y), uint8(m), uint8(d)
}

// ToEpochDays returns the number of days since 2000-01-01.
func (d LocalDate) ToEpochDays() int64 {
	return epochDays(d.Year, d.Month, d.Day)
}

// ToEpochSeconds returns the number of seconds since 2000-01-01T00:00:00Z,
// treating d as a date at midnight.
func (d LocalDate) ToEpochSeconds() int64 {
	return d.ToEpochDays() * secondsPerDay
}

// ForEpochSeconds returns the LocalDate containing the given number of
// seconds since 2000-01-01T00:00:00Z.
func ForEpochSeconds(epochSeconds int64) LocalDate {
	days := epochSeconds / secondsPerDay
	if epochSeconds%secondsPerDay < 0 {
		days--
	}
	year, month, day := civilFromEpochDays(days)
	return LocalDate{Year: year, Month: month, Day: day}
}

// DayOfWeek returns the day of week as 1=Sunday .. 7=Saturday, matching the
// convention used by zonedb.ZoneRule.OnDayOfWeek.
func (d LocalDate) DayOfWeek() uint8 {
	// 2000-01-01 (epoch day 0) was a Saturday.
	idx := (d.ToEpochDays() + 6) % 7
	if idx < 0 {
		idx += 7
	}
	return uint8(idx + 1)
}

// AddDays returns the LocalDate delta civil days after d (delta may be
// negative).
func (d LocalDate) AddDays(delta int) LocalDate {
	days := d.ToEpochDays() + int64(delta)
	year, month, day := civilFromEpochDays(days)
	return LocalDate{Year: year, Month: month, Day: day}
}
