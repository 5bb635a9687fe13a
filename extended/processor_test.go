package extended

import (
	"testing"

	"github.com/SeppPenner/AceTime/timeoffset"
	"github.com/SeppPenner/AceTime/zonedb"
)

func newProcessor(t *testing.T, zoneName string) *ExtendedZoneProcessor {
	t.Helper()
	registry := zonedb.NewRegistry()
	broker := registry.Get(zoneName)
	if broker.IsNull() {
		t.Fatalf("unknown zone %q", zoneName)
	}
	p := NewExtendedZoneProcessor()
	p.SetZoneInfo(broker)
	return p
}

// America/Los_Angeles DST started 2018-03-11 02:00 local standard time,
// which becomes 03:00 wall time; 02:30 does not exist (a gap).
func TestLosAngelesSpringForwardGap(t *testing.T) {
	p := newProcessor(t, "America/Los_Angeles")

	beforeGap := timeoffset.ForParts(2018, 3, 11, 1, 59)
	odt := p.OffsetDateTime(beforeGap)
	if odt.Offset.IsError() {
		t.Fatal("unexpected error offset before the gap")
	}
	if hour, _ := odt.Offset.ToHourMinute(); hour != -8 {
		t.Errorf("got offset hour %d want -8 (standard time) just before the gap", hour)
	}

	inGap := timeoffset.ForParts(2018, 3, 11, 2, 30)
	odt = p.OffsetDateTime(inGap)
	if odt.Offset.IsError() {
		t.Fatal("unexpected error offset inside the gap")
	}
	if hour, _ := odt.Offset.ToHourMinute(); hour != -7 {
		t.Errorf("got offset hour %d want -7 (DST, extended through the gap)", hour)
	}

	afterGap := timeoffset.ForParts(2018, 3, 11, 3, 30)
	odt = p.OffsetDateTime(afterGap)
	if hour, _ := odt.Offset.ToHourMinute(); hour != -7 {
		t.Errorf("got offset hour %d want -7 (DST) after the gap", hour)
	}
}

// America/Los_Angeles DST ended 2018-11-04 02:00 wall time, becoming 01:00;
// 01:30 is ambiguous (an overlap) and resolves to the later, standard-time
// transition.
func TestLosAngelesFallBackOverlap(t *testing.T) {
	p := newProcessor(t, "America/Los_Angeles")

	inOverlap := timeoffset.ForParts(2018, 11, 4, 1, 30)
	odt := p.OffsetDateTime(inOverlap)
	if odt.Offset.IsError() {
		t.Fatal("unexpected error offset inside the overlap")
	}
	if hour, _ := odt.Offset.ToHourMinute(); hour != -8 {
		t.Errorf("got offset hour %d want -8 (standard time, the later transition)", hour)
	}
}

func TestLosAngelesAbbreviations(t *testing.T) {
	p := newProcessor(t, "America/Los_Angeles")

	summer := timeoffset.ForParts(2018, 7, 1, 12, 0)
	odt := p.OffsetDateTime(summer)
	epochSeconds := odt.ToEpochSeconds()
	if got := p.Abbrev(epochSeconds); got != "PDT" {
		t.Errorf("got abbrev %q want PDT", got)
	}

	winter := timeoffset.ForParts(2018, 1, 1, 12, 0)
	odt = p.OffsetDateTime(winter)
	epochSeconds = odt.ToEpochSeconds()
	if got := p.Abbrev(epochSeconds); got != "PST" {
		t.Errorf("got abbrev %q want PST", got)
	}
}

// Africa/Johannesburg's FORMAT is the plain string "SAST" with no '%' or
// '/', so even during the 1942-1944 wartime DST rules the abbreviation
// never changes, though the UTC offset still shifts.
func TestJohannesburgAbbreviationNeverChangesDespiteDST(t *testing.T) {
	p := newProcessor(t, "Africa/Johannesburg")

	summerDST := timeoffset.ForParts(1943, 1, 1, 12, 0)
	odt := p.OffsetDateTime(summerDST)
	epochSeconds := odt.ToEpochSeconds()

	if got := p.Abbrev(epochSeconds); got != "SAST" {
		t.Errorf("got abbrev %q want SAST", got)
	}
	if hour, _ := odt.Offset.ToHourMinute(); hour != 3 {
		t.Errorf("got offset hour %d want 3 (DST applied, +2:00 base +1:00 delta)", hour)
	}
}

// America/St_Johns truncates its historical 00:01 transition time to 00:00
// at data-compile time; the engine should resolve transitions at exactly
// midnight local standard time with no remainder.
func TestStJohnsTruncatedTransitionTime(t *testing.T) {
	p := newProcessor(t, "America/St_Johns")

	justBefore := timeoffset.ForParts(2018, 3, 10, 23, 45)
	odt := p.OffsetDateTime(justBefore)
	if hour, _ := odt.Offset.ToHourMinute(); hour != -3 {
		t.Errorf("got offset hour %d want -3 (standard, NST) before midnight transition", hour)
	}

	atMidnight := timeoffset.ForParts(2018, 3, 11, 0, 0)
	odt = p.OffsetDateTime(atMidnight)
	if hour, _ := odt.Offset.ToHourMinute(); hour != -2 {
		t.Errorf("got offset hour %d want -2 (DST, NDT) exactly at the truncated transition", hour)
	}
}

// America/Indiana/Indianapolis switched from a policy-less "simple" era
// (year-round EST) to a named-rule era (observing the US DST rules) at
// 2006-04-02 02:00.
func TestIndianapolisEraBoundaryIn2006(t *testing.T) {
	p := newProcessor(t, "America/Indiana/Indianapolis")

	before := timeoffset.ForParts(2006, 1, 1, 12, 0)
	odt := p.OffsetDateTime(before)
	if hour, _ := odt.Offset.ToHourMinute(); hour != -5 {
		t.Errorf("got offset hour %d want -5 (EST, simple era) before 2006-04-02", hour)
	}
	if got := p.Abbrev(odt.ToEpochSeconds()); got != "EST" {
		t.Errorf("got abbrev %q want EST", got)
	}

	afterSwitch := timeoffset.ForParts(2006, 7, 1, 12, 0)
	odt = p.OffsetDateTime(afterSwitch)
	if hour, _ := odt.Offset.ToHourMinute(); hour != -4 {
		t.Errorf("got offset hour %d want -4 (EDT, now observing named rules) after 2006-04-02", hour)
	}
	if got := p.Abbrev(odt.ToEpochSeconds()); got != "EDT" {
		t.Errorf("got abbrev %q want EDT", got)
	}
}

func TestUTCOffsetAlwaysZeroForEtcUTC(t *testing.T) {
	p := newProcessor(t, "Etc/UTC")

	ldt := timeoffset.ForParts(2024, 6, 15, 12, 0)
	odt := p.OffsetDateTime(ldt)
	if !odt.Offset.Equal(timeoffset.ForOffsetCode(0)) {
		t.Errorf("got offset %v want zero", odt.Offset)
	}

	epochSeconds := odt.ToEpochSeconds()
	if got := p.UTCOffset(epochSeconds); !got.Equal(timeoffset.ForOffsetCode(0)) {
		t.Errorf("UTCOffset got %v want zero", got)
	}
	if got := p.DeltaOffset(epochSeconds); !got.Equal(timeoffset.ForOffsetCode(0)) {
		t.Errorf("DeltaOffset got %v want zero", got)
	}
}

// Australia/Sydney observes DST from October to April, the reverse of the
// northern-hemisphere zones exercised elsewhere in this file: a January
// instant (southern summer) should resolve to the DST offset, and a July
// instant (southern winter) to standard time.
func TestSydneySouthernHemisphereDSTIsReversed(t *testing.T) {
	p := newProcessor(t, "Australia/Sydney")

	summer := timeoffset.ForParts(2024, 1, 15, 12, 0)
	odt := p.OffsetDateTime(summer)
	if odt.Offset.IsError() {
		t.Fatal("unexpected error offset in southern summer")
	}
	if hour, _ := odt.Offset.ToHourMinute(); hour != 11 {
		t.Errorf("got offset hour %d want 11 (AEDT) in southern summer", hour)
	}
	if got := p.Abbrev(odt.ToEpochSeconds()); got != "AEDT" {
		t.Errorf("got abbrev %q want AEDT", got)
	}

	winter := timeoffset.ForParts(2024, 7, 15, 12, 0)
	odt = p.OffsetDateTime(winter)
	if odt.Offset.IsError() {
		t.Fatal("unexpected error offset in southern winter")
	}
	if hour, _ := odt.Offset.ToHourMinute(); hour != 10 {
		t.Errorf("got offset hour %d want 10 (AEST) in southern winter", hour)
	}
	if got := p.Abbrev(odt.ToEpochSeconds()); got != "AEST" {
		t.Errorf("got abbrev %q want AEST", got)
	}
}

func TestSetZoneInfoInvalidatesCache(t *testing.T) {
	p := newProcessor(t, "America/Los_Angeles")
	_ = p.OffsetDateTime(timeoffset.ForParts(2018, 1, 1, 0, 0))
	if !p.isFilled {
		t.Fatal("expected the cache to be filled after the first query")
	}

	registry := zonedb.NewRegistry()
	p.SetZoneInfo(registry.Get("Etc/UTC"))
	if p.isFilled {
		t.Error("SetZoneInfo should invalidate the transition cache")
	}
}
