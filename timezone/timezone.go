// Package timezone provides TimeZone, a small dispatch value that resolves
// to either a fixed manual offset or a zonedb-backed extended zone
// processor, matching the factory/dispatch surface of
// original_source/src/ace_time/TimeZone.h. Serialization to a compact
// TimeZoneData form and the separate basic-zone code path are out of scope
// (the original spec excludes both); only the dispatch this module needs is
// kept.
package timezone

import (
	"github.com/SeppPenner/AceTime/extended"
	"github.com/SeppPenner/AceTime/timeoffset"
	"github.com/SeppPenner/AceTime/zonecache"
	"github.com/SeppPenner/AceTime/zonedb"
)

type kind int

const (
	kindError kind = iota
	kindUTC
	kindManual
	kindZone
)

// TimeZone dispatches UTC offset resolution either to a fixed
// (standard, DST) offset pair or to a cached ExtendedZoneProcessor.
type TimeZone struct {
	kind       kind
	stdOffset  timeoffset.TimeOffset
	dstOffset  timeoffset.TimeOffset
	zoneInfo   zonedb.ZoneInfoBroker
	cache      *zonecache.Cache
	processor  *extended.ExtendedZoneProcessor
}

// ForError returns a TimeZone in the error state.
func ForError() TimeZone { return TimeZone{kind: kindError} }

// ForUTC returns the fixed UTC time zone.
func ForUTC() TimeZone { return TimeZone{kind: kindUTC} }

// ForTimeOffset returns a manual time zone with a fixed standard offset and
// an optional DST offset applied on top of it. Pass the zero TimeOffset for
// dstOffset to mean "no DST".
func ForTimeOffset(stdOffset, dstOffset timeoffset.TimeOffset) TimeZone {
	return TimeZone{kind: kindManual, stdOffset: stdOffset, dstOffset: dstOffset}
}

// ForZoneInfo returns a TimeZone backed by the named zone, resolved lazily
// through cache.
func ForZoneInfo(info zonedb.ZoneInfoBroker, cache *zonecache.Cache) TimeZone {
	if info.IsNull() {
		return ForError()
	}
	return TimeZone{kind: kindZone, zoneInfo: info, cache: cache}
}

// IsError reports whether z is the error TimeZone.
func (z TimeZone) IsError() bool { return z.kind == kindError }

// IsUTC reports whether z always resolves to a zero UTC offset.
func (z TimeZone) IsUTC() bool { return z.kind == kindUTC }

func (z *TimeZone) zoneProcessor() *extended.ExtendedZoneProcessor {
	if z.processor == nil && z.cache != nil {
		z.processor = z.cache.Get(z.zoneInfo)
	}
	return z.processor
}

// UTCOffset returns the total effective UTC offset in effect at
// epochSeconds.
func (z *TimeZone) UTCOffset(epochSeconds int64) timeoffset.TimeOffset {
	switch z.kind {
	case kindUTC:
		return timeoffset.ForOffsetCode(0)
	case kindManual:
		return timeoffset.ForOffsetCode(z.stdOffset.Code() + z.dstOffset.Code())
	case kindZone:
		return z.zoneProcessor().UTCOffset(epochSeconds)
	default:
		return timeoffset.ForError()
	}
}

// DeltaOffset returns the DST delta in effect at epochSeconds.
func (z *TimeZone) DeltaOffset(epochSeconds int64) timeoffset.TimeOffset {
	switch z.kind {
	case kindUTC:
		return timeoffset.ForOffsetCode(0)
	case kindManual:
		return z.dstOffset
	case kindZone:
		return z.zoneProcessor().DeltaOffset(epochSeconds)
	default:
		return timeoffset.ForError()
	}
}

// Abbrev returns the zone abbreviation in effect at epochSeconds. Manual
// and UTC time zones have no abbreviation.
func (z *TimeZone) Abbrev(epochSeconds int64) string {
	if z.kind == kindZone {
		return z.zoneProcessor().Abbrev(epochSeconds)
	}
	return ""
}

// OffsetDateTime resolves ldt against z.
func (z *TimeZone) OffsetDateTime(ldt timeoffset.LocalDateTime) timeoffset.OffsetDateTime {
	switch z.kind {
	case kindUTC:
		return timeoffset.ForLocalDateTimeAndOffset(ldt, timeoffset.ForOffsetCode(0))
	case kindManual:
		offset := timeoffset.ForOffsetCode(z.stdOffset.Code() + z.dstOffset.Code())
		return timeoffset.ForLocalDateTimeAndOffset(ldt, offset)
	case kindZone:
		return z.zoneProcessor().OffsetDateTime(ldt)
	default:
		return timeoffset.OffsetDateTime{Offset: timeoffset.ForError()}
	}
}
