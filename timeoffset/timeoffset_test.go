package timeoffset

import (
	"testing"

	"github.com/SeppPenner/AceTime/basic"
)

func TestForOffsetStringRoundTrip(t *testing.T) {
	var tests = []string{"+00:00", "-08:00", "+05:45", "+09:00", "-09:30"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			offset, err := ForOffsetString(s)
			if err != nil {
				t.Fatalf("got error %v, want nil", err)
			}
			if got := offset.String(); got != s {
				t.Errorf("got %s want %s", got, s)
			}
		})
	}
}

func TestForOffsetStringRejectsMalformed(t *testing.T) {
	var tests = []string{"", "+0:00", "08:00", "+08:0x", "+08-00"}
	for _, s := range tests {
		if _, err := ForOffsetString(s); err == nil {
			t.Errorf("ForOffsetString(%q): got nil error, want one", s)
		}
	}
}

func TestForErrorIsError(t *testing.T) {
	if !ForError().IsError() {
		t.Error("ForError().IsError() = false, want true")
	}
	if ForOffsetCode(0).IsError() {
		t.Error("ForOffsetCode(0).IsError() = true, want false")
	}
}

func TestOffsetDateTimeEpochRoundTrip(t *testing.T) {
	offset := ForHourMinute(-8, 0)
	ldt := ForParts(2023, 6, 1, 14, 30)
	odt := ForLocalDateTimeAndOffset(ldt, offset)

	seconds := odt.ToEpochSeconds()
	back := ForEpochSeconds(seconds, offset)

	if back.Local != ldt {
		t.Errorf("got %+v want %+v", back.Local, ldt)
	}
}

func TestToEpochSecondsMatchesOffsetSign(t *testing.T) {
	ldt := LocalDateTime{Date: basic.LocalDate{Year: 2000, Month: 1, Day: 1}, TimeCode: 0}
	utc := ForLocalDateTimeAndOffset(ldt, ForOffsetCode(0))
	west := ForLocalDateTimeAndOffset(ldt, ForHourMinute(-8, 0))

	if utc.ToEpochSeconds() != 0 {
		t.Errorf("2000-01-01T00:00:00Z should be epoch 0, got %d", utc.ToEpochSeconds())
	}
	// The same wall-clock reading eight hours west of UTC is a later
	// instant: midnight there has already happened in UTC terms.
	if west.ToEpochSeconds() <= utc.ToEpochSeconds() {
		t.Errorf("west.ToEpochSeconds() = %d, want > %d", west.ToEpochSeconds(), utc.ToEpochSeconds())
	}
}
