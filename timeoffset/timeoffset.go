// Package timeoffset provides the small value types shared by every Query
// API entry point in package extended: a 15-minute-resolution UTC offset,
// and the local/offset date-time pairs used to move between wall-clock time
// and epoch seconds.
//
// Ported from original_source/src/ace_time/TimeOffset.cpp (Brian T. Park,
// AceTime, MIT License).
package timeoffset

import (
	"fmt"
	"strconv"

	"github.com/SeppPenner/AceTime/basic"
)

// CodeUnitSeconds is the duration, in seconds, of one offset/delta "code"
// unit (15 minutes).
const CodeUnitSeconds = 15 * 60

// errorCode is the distinguished "error" offset code (spec.md §6: "a
// distinguished error offset value, conventionally Int8::MIN times 15
// min").
const errorCode = int8(-128)

// TimeOffset is a UTC offset (or DST delta) expressed as a count of
// 15-minute units.
type TimeOffset struct {
	code int8
}

// ForOffsetCode builds a TimeOffset directly from its 15-minute-unit code.
func ForOffsetCode(code int8) TimeOffset { return TimeOffset{code: code} }

// ForError returns the distinguished error TimeOffset.
func ForError() TimeOffset { return TimeOffset{code: errorCode} }

// ForHourMinute builds a TimeOffset from an hour/minute pair. Both must
// share the same sign (or one may be zero); minute must be a multiple of 15.
func ForHourMinute(hour, minute int8) TimeOffset {
	sign := int8(1)
	if hour < 0 || minute < 0 {
		sign = -1
	}
	h := hour
	if h < 0 {
		h = -h
	}
	m := minute
	if m < 0 {
		m = -m
	}
	return TimeOffset{code: sign * (h*4 + m/15)}
}

// IsError reports whether o is the distinguished error offset.
func (o TimeOffset) IsError() bool { return o.code == errorCode }

// Equal reports whether o and other carry the same offset code.
func (o TimeOffset) Equal(other TimeOffset) bool { return o.code == other.code }

// Code returns the raw 15-minute-unit offset code.
func (o TimeOffset) Code() int8 { return o.code }

// Seconds returns the offset in seconds east of UTC.
func (o TimeOffset) Seconds() int32 { return int32(o.code) * CodeUnitSeconds }

// ToHourMinute splits the offset into signed hour and minute components
// sharing the offset's sign.
func (o TimeOffset) ToHourMinute() (hour, minute int8) {
	c := o.code
	sign := int8(1)
	if c < 0 {
		sign = -1
		c = -c
	}
	hour = sign * (c / 4)
	minute = sign * (c % 4) * 15
	return hour, minute
}

// String renders the offset as "+HH:MM" / "-HH:MM", or "<error>".
func (o TimeOffset) String() string {
	if o.IsError() {
		return "<error>"
	}
	hour, minute := o.ToHourMinute()
	sign := "+"
	if hour < 0 || minute < 0 {
		sign = "-"
		hour, minute = -hour, -minute
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hour, minute)
}

// kOffsetStringLength is the exact length of a valid ISO-8601 "+HH:MM"
// offset string.
const kOffsetStringLength = 6

// ForOffsetString parses an ISO-8601 "+HH:MM" / "-HH:MM" string.
func ForOffsetString(s string) (TimeOffset, error) {
	if len(s) != kOffsetStringLength {
		return ForError(), fmt.Errorf("timeoffset: bad offset string length %q", s)
	}
	sign := s[0]
	if sign != '+' && sign != '-' {
		return ForError(), fmt.Errorf("timeoffset: bad offset sign %q", s)
	}
	if s[3] != ':' {
		return ForError(), fmt.Errorf("timeoffset: bad offset separator %q", s)
	}
	hour, err := strconv.Atoi(s[1:3])
	if err != nil {
		return ForError(), fmt.Errorf("timeoffset: bad offset hour %q: %w", s, err)
	}
	minute, err := strconv.Atoi(s[4:6])
	if err != nil {
		return ForError(), fmt.Errorf("timeoffset: bad offset minute %q: %w", s, err)
	}
	if sign == '-' {
		hour, minute = -hour, -minute
	}
	return ForHourMinute(int8(hour), int8(minute)), nil
}

// LocalDateTime is a wall-clock civil date and time with no attached UTC
// offset, quantised to the engine's 15-minute resolution.
type LocalDateTime struct {
	Date basic.LocalDate
	// TimeCode is the time of day in 15-minute units from midnight, in
	// [0, 96).
	TimeCode int16
}

// Hour, Minute return the conventional clock components of the local time.
func (l LocalDateTime) Hour() int   { return int(l.TimeCode) / 4 }
func (l LocalDateTime) Minute() int { return (int(l.TimeCode) % 4) * 15 }

// ForParts builds a LocalDateTime from calendar components.
func ForParts(year int16, month, day uint8, hour, minute int) LocalDateTime {
	return LocalDateTime{
		Date:     basic.LocalDate{Year: year, Month: month, Day: day},
		TimeCode: int16(hour*4 + minute/15),
	}
}

// OffsetDateTime is a LocalDateTime paired with the TimeOffset that applies
// to it; it is the result type of the Query API's resolved lookups.
type OffsetDateTime struct {
	Local  LocalDateTime
	Offset TimeOffset
}

// ForLocalDateTimeAndOffset pairs a LocalDateTime with an offset without
// otherwise touching the offset's error state.
func ForLocalDateTimeAndOffset(ldt LocalDateTime, offset TimeOffset) OffsetDateTime {
	return OffsetDateTime{Local: ldt, Offset: offset}
}

// ToEpochSeconds converts o to the number of seconds since
// 2000-01-01T00:00:00Z, treating o.Local as expressed in o.Offset.
func (o OffsetDateTime) ToEpochSeconds() int64 {
	if o.Offset.IsError() {
		return 0
	}
	localSeconds := o.Local.Date.ToEpochSeconds() + int64(o.Local.TimeCode)*int64(CodeUnitSeconds)
	return localSeconds - int64(o.Offset.Seconds())
}

// ForEpochSeconds builds the OffsetDateTime that epochSeconds represents
// when interpreted under offset.
func ForEpochSeconds(epochSeconds int64, offset TimeOffset) OffsetDateTime {
	if offset.IsError() {
		return OffsetDateTime{Offset: offset}
	}
	localSeconds := epochSeconds + int64(offset.Seconds())
	date := basic.ForEpochSeconds(localSeconds)
	daySeconds := localSeconds - date.ToEpochSeconds()
	return OffsetDateTime{
		Local: LocalDateTime{
			Date:     date,
			TimeCode: int16(daySeconds / CodeUnitSeconds),
		},
		Offset: offset,
	}
}
