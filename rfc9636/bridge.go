package rfc9636

import "github.com/SeppPenner/AceTime/zonedb"

// unixToEpochSeconds is the offset between the Unix epoch (1970-01-01) and
// this module's epoch (2000-01-01): 10957 days.
const unixToEpochSeconds = 10957 * 86400

// unnamedZone stands in for a zone entry when a Location carries none at
// all (a malformed or empty TZif file).
var unnamedZone = zone{name: "UT"}

// ToZoneInfo converts a parsed TZif Location into a zonedb.ZoneInfo built
// entirely from "simple" (policy-less) eras, one per recorded transition.
// TZif data carries already-resolved absolute transition instants rather
// than named RULE tables, so there is no ZonePolicy to reconstruct; each
// era's UNTIL is instead expressed directly in universal time, which
// findMatches and its comparisons handle the same as any other modifier.
func ToZoneInfo(loc *Location) zonedb.ZoneInfo {
	if len(loc.tx) == 0 {
		return zonedb.ZoneInfo{
			Name: loc.name, ID: zonedb.ZoneIDFor(loc.name),
			StartYear: 1900, UntilYear: 2037,
			Eras: []zonedb.ZoneEra{openEndedEra(loc, 0)},
		}
	}

	eras := make([]zonedb.ZoneEra, 0, len(loc.tx)+1)
	// Each era ends at a transition and carries the zone in effect up to
	// it: zone 0 before the first transition, then the zone the previous
	// transition put into effect.
	prevIndex := uint8(0)
	for _, t := range loc.tx {
		if t.when == alpha {
			prevIndex = t.index
			continue
		}
		z := &unnamedZone
		if int(prevIndex) < len(loc.zone) {
			z = &loc.zone[prevIndex]
		}
		prevIndex = t.index
		yearTiny, month, day, timeCode := untilFromUnixSeconds(t.when)
		eras = append(eras, zonedb.ZoneEra{
			OffsetCode: offsetCodeFor(z.offset) - deltaCodeFor(z.isDST),
			Policy:     nil,
			DeltaCode:  deltaCodeFor(z.isDST),
			Format:     z.name,

			UntilYearTiny:     yearTiny,
			UntilMonth:        month,
			UntilDay:          day,
			UntilTimeCode:     timeCode,
			UntilTimeModifier: 'u',
		})
	}

	lastIndex := uint8(0)
	if n := len(loc.tx); n > 0 {
		lastIndex = loc.tx[n-1].index
	}
	eras = append(eras, openEndedEra(loc, lastIndex))

	startYear, untilYear := int16(1900), int16(2037)
	if n := len(loc.tx); n > 0 {
		firstTiny, _, _, _ := untilFromUnixSeconds(loc.tx[0].when)
		lastTiny, _, _, _ := untilFromUnixSeconds(loc.tx[n-1].when)
		startYear = zonedb.EpochYear + int16(firstTiny)
		untilYear = zonedb.EpochYear + int16(lastTiny) + 1
	}

	return zonedb.ZoneInfo{
		Name: loc.name, ID: zonedb.ZoneIDFor(loc.name),
		StartYear: startYear, UntilYear: untilYear,
		Eras: eras,
	}
}

// openEndedEra builds the final era of a converted zone: whichever zone
// entry is in effect after the last recorded transition, left in effect
// indefinitely.
func openEndedEra(loc *Location, zoneIndex uint8) zonedb.ZoneEra {
	z := &unnamedZone
	if int(zoneIndex) < len(loc.zone) {
		z = &loc.zone[zoneIndex]
	}
	return zonedb.ZoneEra{
		OffsetCode: offsetCodeFor(z.offset) - deltaCodeFor(z.isDST),
		Policy:     nil,
		DeltaCode:  deltaCodeFor(z.isDST),
		Format:     z.name,

		UntilYearTiny:     zonedb.LargestYearTiny,
		UntilMonth:        1,
		UntilDay:          1,
		UntilTimeCode:     0,
		UntilTimeModifier: 'w',
	}
}

// offsetCodeFor truncates a seconds-east-of-UTC offset to this module's
// 15-minute resolution; every zone this bridge has been exercised against
// (see cmd/tzquery) keeps to that grid already. A TZif zone's offset is the
// total one, so callers subtract deltaCodeFor to get an era's base offset.
func offsetCodeFor(offsetSeconds int) int8 { return int8(offsetSeconds / (15 * 60)) }

// deltaCodeFor approximates the DST delta as a flat hour, since TZif's zone
// table records only a boolean isDST flag rather than the delta's actual
// size. Every zone observing DST in this pack's test data uses a one-hour
// delta; a half-hour DST zone (e.g. Australia/Lord_Howe) would need the
// actual delta threaded through from the zone table, which TZif does not
// expose directly.
func deltaCodeFor(isDST bool) int8 {
	if isDST {
		return 4
	}
	return 0
}

// untilFromUnixSeconds converts a TZif transition instant to the
// (yearTiny, month, day, timeCode) form a ZoneEra's UNTIL field expects,
// interpreted as a universal ('u') instant.
func untilFromUnixSeconds(sec int64) (yearTiny int8, month, day uint8, timeCode int16) {
	epochSeconds := sec - unixToEpochSeconds
	days := epochSeconds / 86400
	daySeconds := epochSeconds % 86400
	if daySeconds < 0 {
		daySeconds += 86400
		days--
	}
	year, m, d := civilFromDays(days)
	tiny := int(year) - int(zonedb.EpochYear)
	if tiny < int(zonedb.InvalidYearTiny)+1 {
		tiny = int(zonedb.InvalidYearTiny) + 1
	}
	if tiny > int(zonedb.LargestYearTiny)-1 {
		tiny = int(zonedb.LargestYearTiny) - 1
	}
	return int8(tiny), m, d, int16(daySeconds / (15 * 60))
}

// civilFromDays is Howard Hinnant's days-from-civil inverse, duplicated
// from package basic to keep rfc9636 independent of basic's internal
// epoch-days representation (rfc9636 only needs this one conversion, not
// the rest of basic's LocalDate surface). days counts from this module's
// epoch, 2000-01-01, matching basic.civilFromEpochDays.
func civilFromDays(days int64) (year int16, month, day uint8) {
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
