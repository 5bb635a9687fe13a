package timezone

import (
	"testing"

	"github.com/SeppPenner/AceTime/timeoffset"
	"github.com/SeppPenner/AceTime/zonecache"
	"github.com/SeppPenner/AceTime/zonedb"
)

func TestForUTCAlwaysZeroOffset(t *testing.T) {
	z := ForUTC()
	if z.IsError() {
		t.Fatal("UTC time zone should not be an error")
	}
	if got := z.UTCOffset(0); !got.Equal(timeoffset.ForOffsetCode(0)) {
		t.Errorf("got %v want zero", got)
	}
	if got := z.Abbrev(0); got != "" {
		t.Errorf("got abbrev %q want empty", got)
	}
}

func TestForTimeOffsetCombinesStandardAndDST(t *testing.T) {
	std := timeoffset.ForHourMinute(-8, 0)
	dst := timeoffset.ForHourMinute(1, 0)
	z := ForTimeOffset(std, dst)

	got := z.UTCOffset(0)
	if hour, _ := got.ToHourMinute(); hour != -7 {
		t.Errorf("got offset hour %d want -7 (combined standard+DST)", hour)
	}
	if delta := z.DeltaOffset(0); !delta.Equal(dst) {
		t.Errorf("got delta %v want %v", delta, dst)
	}
}

func TestForZoneInfoNullBrokerIsError(t *testing.T) {
	registry := zonedb.NewRegistry()
	z := ForZoneInfo(registry.Get("Nowhere/Imaginary"), zonecache.New(4))
	if !z.IsError() {
		t.Error("expected ForZoneInfo with an unknown zone to produce an error TimeZone")
	}
}

func TestForZoneInfoResolvesThroughCache(t *testing.T) {
	registry := zonedb.NewRegistry()
	cache := zonecache.New(4)
	z := ForZoneInfo(registry.Get("America/Los_Angeles"), cache)

	summer := timeoffset.ForParts(2018, 7, 1, 12, 0)
	odt := z.OffsetDateTime(summer)
	if hour, _ := odt.Offset.ToHourMinute(); hour != -7 {
		t.Errorf("got offset hour %d want -7 (PDT)", hour)
	}
	if got := z.Abbrev(odt.ToEpochSeconds()); got != "PDT" {
		t.Errorf("got abbrev %q want PDT", got)
	}
	if cache.Len() != 1 {
		t.Errorf("got cache Len %d want 1", cache.Len())
	}
}

func TestErrorTimeZoneReportsErrorOffsets(t *testing.T) {
	z := ForError()
	if !z.UTCOffset(0).IsError() {
		t.Error("expected UTCOffset to be an error offset")
	}
	if !z.DeltaOffset(0).IsError() {
		t.Error("expected DeltaOffset to be an error offset")
	}
}
