// Package tzposix decodes a POSIX TZ environment-variable string — the
// "extend" tail a TZif file carries to describe transitions beyond its
// compiled table — into this module's own domain types: timeoffset.TimeOffset
// for the standard/daylight offsets, and a zonedb.ZonePolicy built from two
// zonedb.ZoneRule values for the start/end transition dates. That keeps a
// POSIX fallback rule in the same shape the extended zone processor already
// consumes, rather than a bag of pre-formatted strings.
package tzposix

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/SeppPenner/AceTime/timeoffset"
	"github.com/SeppPenner/AceTime/zonedb"
)

func tzRegex() *regexp.Regexp {
	return regexp.MustCompile(
		`^(?P<StdName>[[:alpha:]]{3,}|<[[:alnum:]+-]+>)` +
			`(?P<StdOffset>[-+]?[0-9]+(?::[0-9]+){0,2})` +
			`(?:(?P<DstName>[[:alpha:]]{3,}|<[[:alnum:]+-]+>)` +
			`(?P<DstOffset>[-+]?[0-9]+(?::[0-9]+){0,2})?` +
			`(?:,(?P<StartRule>[^,]+),(?P<EndRule>[^,]+))?)?$`)
}

// Zone is a decoded POSIX TZ string.
type Zone struct {
	StdName   string
	StdOffset timeoffset.TimeOffset
	DstName   string
	DstOffset timeoffset.TimeOffset
	// Policy holds the zone's transition rules as exactly two ZoneRules
	// (start, end) when the TZ string carries both rules, or a nil-Rules
	// policy otherwise (including a DST name given without rules).
	// FromYearTiny is left at its zero value and ToYearTiny is set to
	// zonedb.LargestYearTiny: a POSIX TZ string never bounds its rule by
	// year the way a compiled RULE line does.
	Policy zonedb.ZonePolicy
}

// HasDST reports whether zone carries a daylight-saving rule.
func (z Zone) HasDST() bool { return z.DstName != "" }

// DecodeTZ parses a POSIX TZ string such as "PST8PDT,M3.2.0,M11.1.0".
func DecodeTZ(posixTZ string) (Zone, error) {
	re := tzRegex()
	m := re.FindStringSubmatch(posixTZ)
	if m == nil {
		return Zone{}, fmt.Errorf("tzposix: malformed POSIX TZ string %q", posixTZ)
	}
	group := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			group[name] = m[i]
		}
	}

	stdOffset, err := parseOffset(group["StdOffset"])
	if err != nil {
		return Zone{}, fmt.Errorf("tzposix: standard offset in %q: %w", posixTZ, err)
	}
	zone := Zone{StdName: stripBracket(group["StdName"]), StdOffset: stdOffset}

	if group["DstName"] == "" {
		return zone, nil
	}
	zone.DstName = stripBracket(group["DstName"])

	zone.DstOffset = timeoffset.ForOffsetCode(stdOffset.Code() + 4)
	if group["DstOffset"] != "" {
		zone.DstOffset, err = parseOffset(group["DstOffset"])
		if err != nil {
			return Zone{}, fmt.Errorf("tzposix: daylight offset in %q: %w", posixTZ, err)
		}
	}

	if group["StartRule"] == "" || group["EndRule"] == "" {
		return zone, nil
	}

	start, err := parseDateRule(group["StartRule"])
	if err != nil {
		return Zone{}, fmt.Errorf("tzposix: start rule in %q: %w", posixTZ, err)
	}
	end, err := parseDateRule(group["EndRule"])
	if err != nil {
		return Zone{}, fmt.Errorf("tzposix: end rule in %q: %w", posixTZ, err)
	}
	start.ToYearTiny = zonedb.LargestYearTiny
	start.DeltaCode = zone.DstOffset.Code() - zone.StdOffset.Code()
	start.Letter = 'D'
	end.ToYearTiny = zonedb.LargestYearTiny
	end.DeltaCode = 0
	end.Letter = 'S'
	zone.Policy = zonedb.ZonePolicy{Rules: []zonedb.ZoneRule{start, end}}
	return zone, nil
}

func stripBracket(name string) string {
	return strings.Trim(name, "<>")
}

// parseOffset converts a POSIX "[-+]H[:M[:S]]" offset — seconds *west* of
// UTC, the opposite sign convention from timeoffset.TimeOffset's seconds
// *east* of UTC — into a TimeOffset. Seconds, when present, are dropped:
// the engine's offset grid is 15 minutes wide.
func parseOffset(s string) (timeoffset.TimeOffset, error) {
	sign := int8(1)
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	}
	parts := strings.Split(s, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeoffset.TimeOffset{}, fmt.Errorf("bad hour in %q: %w", s, err)
	}
	minute := 0
	if len(parts) > 1 {
		if minute, err = strconv.Atoi(parts[1]); err != nil {
			return timeoffset.TimeOffset{}, fmt.Errorf("bad minute in %q: %w", s, err)
		}
	}
	// POSIX west-of-UTC becomes TimeOffset's east-of-UTC by flipping sign.
	return timeoffset.ForHourMinute(-sign*int8(hour), -sign*int8(minute/15*15)), nil
}

// parseDateRule converts a POSIX "Mm.w.d[/time]" transition rule into a
// ZoneRule. Julian-day rules ("Jn" or bare "n") describe a day-of-year that
// ZoneRule's month/week/weekday shape cannot represent, so they are
// rejected rather than silently approximated.
func parseDateRule(rule string) (zonedb.ZoneRule, error) {
	if !strings.HasPrefix(rule, "M") {
		return zonedb.ZoneRule{}, fmt.Errorf("julian day rule %q is not representable", rule)
	}

	body, timeStr, hasTime := strings.Cut(rule[1:], "/")
	parts := strings.Split(body, ".")
	if len(parts) != 3 {
		return zonedb.ZoneRule{}, fmt.Errorf("malformed month rule %q", rule)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return zonedb.ZoneRule{}, fmt.Errorf("bad month in %q: %w", rule, err)
	}
	week, err := strconv.Atoi(parts[1])
	if err != nil {
		return zonedb.ZoneRule{}, fmt.Errorf("bad week in %q: %w", rule, err)
	}
	posixDay, err := strconv.Atoi(parts[2])
	if err != nil {
		return zonedb.ZoneRule{}, fmt.Errorf("bad weekday in %q: %w", rule, err)
	}

	var onDayOfMonth int8
	if week >= 5 {
		onDayOfMonth = -1 // last occurrence of the weekday in the month
	} else {
		onDayOfMonth = int8((week-1)*7 + 1) // first occurrence on or after this day
	}

	timeCode := int16(8) // POSIX default transition time is 02:00 local
	if hasTime {
		timeCode, err = parseTimeCode(timeStr)
		if err != nil {
			return zonedb.ZoneRule{}, fmt.Errorf("bad transition time in %q: %w", rule, err)
		}
	}

	return zonedb.ZoneRule{
		InMonth:        uint8(month),
		OnDayOfWeek:    uint8(posixDay + 1), // POSIX 0=Sunday..6=Saturday
		OnDayOfMonth:   onDayOfMonth,
		AtTimeCode:     timeCode,
		AtTimeModifier: 'w',
	}, nil
}

// parseTimeCode converts a POSIX "[-+]H[:M[:S]]" transition time, which may
// run past 24:00:00 (e.g. a 25:00 rule for "midnight of the following
// day"), into 15-minute units from midnight. Seconds are dropped.
func parseTimeCode(s string) (int16, error) {
	sign := int16(1)
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	parts := strings.Split(s, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad hour in %q: %w", s, err)
	}
	minute := 0
	if len(parts) > 1 {
		if minute, err = strconv.Atoi(parts[1]); err != nil {
			return 0, fmt.Errorf("bad minute in %q: %w", s, err)
		}
	}
	return sign * int16(hour*4+minute/15), nil
}

var months = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdays = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Describe renders zone as a multi-line human-readable summary.
func Describe(zone Zone) string {
	std := fmt.Sprintf("Standard Time: %s (UTC%s)", zone.StdName, zone.StdOffset)
	if !zone.HasDST() {
		return std + "\n(No Daylight Saving Time rules)"
	}
	dst := fmt.Sprintf("Daylight Time: %s (UTC%s)", zone.DstName, zone.DstOffset)
	if len(zone.Policy.Rules) != 2 {
		return std + "\n" + dst
	}
	start, end := zone.Policy.Rules[0], zone.Policy.Rules[1]
	return fmt.Sprintf("%s\n%s\nRules: Starts %s, Ends %s", std, dst, describeRule(start), describeRule(end))
}

func describeRule(rule zonedb.ZoneRule) string {
	var when string
	if rule.OnDayOfMonth < 0 {
		when = fmt.Sprintf("the last %s", weekdays[rule.OnDayOfWeek-1])
	} else {
		when = fmt.Sprintf("the %s on or after day %d", weekdays[rule.OnDayOfWeek-1], rule.OnDayOfMonth)
	}
	return fmt.Sprintf("on %s of %s at %s", when, months[rule.InMonth-1], describeTimeCode(rule.AtTimeCode))
}

func describeTimeCode(code int16) string {
	sign := int16(1)
	if code < 0 {
		sign = -1
		code = -code
	}
	hour, minute := sign*(code/4), sign*(code%4)*15
	extraDays := 0
	for hour >= 24 {
		hour -= 24
		extraDays++
	}
	for hour < 0 {
		hour += 24
		extraDays--
	}
	if extraDays == 0 {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	return fmt.Sprintf("%02d:%02d (%+d day)", hour, minute, extraDays)
}
