package extended

import "github.com/SeppPenner/AceTime/zonedb"

// widenYear expands a broker tiny-year offset into a full calendar year.
// Tiny-year sentinels widen consistently: zonedb.LargestYearTiny becomes a
// year far enough in the future to never compare less than any real era
// (2127), and zonedb.InvalidYearTiny/smallestYearTiny becomes 1872 — which
// happens to match the anchor-era sentinel year the original C++ derives
// from the same int8 storage.
func widenYear(tiny int8) int16 {
	return int16(tiny) + zonedb.EpochYear
}

// ZoneMatch pairs a ZoneEraBroker with the portion of its validity interval
// that falls inside the 14-month viewing window passed to findMatches.
type ZoneMatch struct {
	Start DateTuple
	Until DateTuple
	Era   zonedb.ZoneEraBroker
}

func eraUntilDateTuple(era zonedb.ZoneEraBroker) DateTuple {
	return DateTuple{
		Year:     widenYear(era.UntilYearTiny()),
		Month:    era.UntilMonth(),
		Day:      era.UntilDay(),
		TimeCode: era.UntilTimeCode(),
		Modifier: era.UntilTimeModifier(),
	}
}

// compareEraToYearMonth returns -1, 0, or 1 depending on how era's UNTIL
// field compares to the start of (year, month): an UNTIL in the same month
// compares greater if its day is after the 1st or its time code is above
// zero, and equal otherwise. The time modifier is not considered.
func compareEraToYearMonth(era zonedb.ZoneEraBroker, year int16, month uint8) int {
	untilYear := widenYear(era.UntilYearTiny())
	if untilYear < year {
		return -1
	}
	if untilYear > year {
		return 1
	}
	if era.UntilMonth() < month {
		return -1
	}
	if era.UntilMonth() > month {
		return 1
	}
	if era.UntilDay() > 1 {
		return 1
	}
	if era.UntilTimeCode() > 0 {
		return 1
	}
	return 0
}

// eraOverlapsInterval reports whether the era spanning (prev.UNTIL, era.UNTIL]
// overlaps the half-open [startYm, untilYm) interval.
func eraOverlapsInterval(prev, era zonedb.ZoneEraBroker, startYm, untilYm YearMonth) bool {
	return compareEraToYearMonth(prev, untilYm.Year, untilYm.Month) < 0 &&
		compareEraToYearMonth(era, startYm.Year, startYm.Month) > 0
}

// createMatch builds the ZoneMatch for era, clamping its start/until to the
// [startYm, untilYm) viewing window.
func createMatch(prev, era zonedb.ZoneEraBroker, startYm, untilYm YearMonth) ZoneMatch {
	start := eraUntilDateTuple(prev)
	lowerBound := DateTuple{Year: startYm.Year, Month: startYm.Month, Day: 1, TimeCode: 0, Modifier: ModifierWall}
	if start.Less(lowerBound) {
		start = lowerBound
	}

	until := eraUntilDateTuple(era)
	upperBound := DateTuple{Year: untilYm.Year, Month: untilYm.Month, Day: 1, TimeCode: 0, Modifier: ModifierWall}
	if upperBound.Less(until) {
		until = upperBound
	}

	return ZoneMatch{Start: start, Until: until, Era: era}
}

// maxMatches is the number of ZoneMatch slots the engine carries: at most
// this many ZoneEras overlapping the 14-month viewing window are kept, and
// any further overlapping eras are dropped.
const maxMatches = 4

// findMatches locates the ZoneEras overlapping [startYm, untilYm), wraps
// each in a ZoneMatch, and returns the populated prefix of matches.
func findMatches(zoneInfo zonedb.ZoneInfoBroker, startYm, untilYm YearMonth) []ZoneMatch {
	matches := make([]ZoneMatch, 0, maxMatches)
	prev := zonedb.AnchorBroker()
	for i := 0; i < zoneInfo.NumEras(); i++ {
		era := zoneInfo.Era(i)
		if eraOverlapsInterval(prev, era, startYm, untilYm) {
			if len(matches) < maxMatches {
				matches = append(matches, createMatch(prev, era, startYm, untilYm))
			}
		}
		prev = era
	}
	return matches
}
