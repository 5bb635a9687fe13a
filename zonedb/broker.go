// Package zonedb defines the read-only broker contracts that the extended
// zone processor uses to consume a compiled TZ Database description, plus a
// small in-memory implementation of those contracts.
//
// The wire format that produces this data (a packed binary blob, a TZif
// file, a generated Go table, ...) is deliberately kept out of this
// package's concern: zonedb only describes the shape that any such source
// must present. See rfc9636.ToZoneInfo for one concrete producer.
package zonedb

// InvalidYearTiny is the sentinel "no such year" tiny-year value. A real
// implementation of ZoneRuleBroker or ZoneEraBroker must never return this
// from a field that is supposed to carry a valid year.
const InvalidYearTiny int8 = -128

// LargestYearTiny is reserved by convention to mean "the largest
// representable year", used by open-ended FROM/TO rule ranges (e.g. a rule
// that applies "2007 onwards" stores ToYearTiny as LargestYearTiny).
const LargestYearTiny int8 = 127

// smallestYearTiny backs the anchor era (see anchor.go): it is the same bit
// pattern as InvalidYearTiny but used in a different context — "smaller than
// any real era's start", not "absent".
const smallestYearTiny int8 = -128

// EpochYear is the calendar year that a tiny-year value of 0 represents.
const EpochYear int16 = 2000

// ZoneRule is one line of a named ZonePolicy's RULE table.
type ZoneRule struct {
	FromYearTiny int8
	ToYearTiny   int8
	InMonth      uint8 // 1-12
	// OnDayOfWeek is 0 for "exact calendar day" (see OnDayOfMonth), else
	// 1=Sunday .. 7=Saturday.
	OnDayOfWeek uint8
	// OnDayOfMonth is interpreted together with OnDayOfWeek:
	//   OnDayOfWeek == 0: the exact day of the month.
	//   OnDayOfWeek != 0, OnDayOfMonth > 0: first OnDayOfWeek on or after
	//     OnDayOfMonth (e.g. "Sun>=8").
	//   OnDayOfWeek != 0, OnDayOfMonth < 0: last OnDayOfWeek on or before
	//     (daysInMonth + OnDayOfMonth + 1) counted from the end (e.g.
	//     OnDayOfMonth == -1 means "last OnDayOfWeek of the month").
	OnDayOfMonth int8
	AtTimeCode   int16 // 15-minute units from midnight
	AtTimeModifier byte // 'w', 's', or 'u'
	DeltaCode    int8  // 15-minute units
	// Letter is either a printable character (>= 32) used directly, or an
	// index (< 32) into the owning ZonePolicy's Letters list.
	Letter byte
}

// ZonePolicy is a named RULE set: a list of ZoneRules plus the long-form
// LETTER strings some rules reference by index.
type ZonePolicy struct {
	Rules   []ZoneRule
	Letters []string
}

// ZoneEra is one line of a Zone's era table: a UTC base offset, in effect
// from the previous era's UNTIL up to this era's own UNTIL, optionally
// modulated by a ZonePolicy's rules.
type ZoneEra struct {
	OffsetCode int8 // 15-minute units
	Policy     *ZonePolicy
	// DeltaCode is the DST delta to apply when Policy is nil (a "simple"
	// era). Ignored when Policy is non-nil; each matching ZoneRule supplies
	// its own delta instead.
	DeltaCode int8
	// Format is the abbreviation template, e.g. "P%T" or "CAT" or
	// "AEST/AEDT". A '%' is replaced by the rule's LETTER. See the
	// abbreviation formatter in package extended.
	Format string

	UntilYearTiny      int8
	UntilMonth         uint8
	UntilDay           uint8
	UntilTimeCode      int16
	UntilTimeModifier  byte
}

// ZoneInfo is a complete zone: an ordered list of ZoneEras plus the years
// for which transitions were compiled.
type ZoneInfo struct {
	Name      string
	ID        uint32
	StartYear int16
	UntilYear int16
	Eras      []ZoneEra
}

// ZoneInfoBroker is a read-only, non-owning handle onto a ZoneInfo.
type ZoneInfoBroker struct {
	info *ZoneInfo
}

// NewZoneInfoBroker wraps info. info may be nil, producing a null broker.
func NewZoneInfoBroker(info *ZoneInfo) ZoneInfoBroker {
	return ZoneInfoBroker{info: info}
}

func (b ZoneInfoBroker) IsNull() bool    { return b.info == nil }
func (b ZoneInfoBroker) IsNotNull() bool { return b.info != nil }

func (b ZoneInfoBroker) NumEras() int { return len(b.info.Eras) }

func (b ZoneInfoBroker) Era(i int) ZoneEraBroker {
	return ZoneEraBroker{era: &b.info.Eras[i]}
}

func (b ZoneInfoBroker) StartYear() int16 { return b.info.StartYear }
func (b ZoneInfoBroker) UntilYear() int16 { return b.info.UntilYear }
func (b ZoneInfoBroker) ZoneID() uint32   { return b.info.ID }
func (b ZoneInfoBroker) ZoneName() string { return b.info.Name }

// ZoneEraBroker is a read-only, non-owning handle onto a ZoneEra.
type ZoneEraBroker struct {
	era *ZoneEra
}

func (b ZoneEraBroker) IsNull() bool    { return b.era == nil }
func (b ZoneEraBroker) IsNotNull() bool { return b.era != nil }

func (b ZoneEraBroker) OffsetCode() int8 { return b.era.OffsetCode }

func (b ZoneEraBroker) ZonePolicy() ZonePolicyBroker {
	return ZonePolicyBroker{policy: b.era.Policy}
}

func (b ZoneEraBroker) DeltaCode() int8      { return b.era.DeltaCode }
func (b ZoneEraBroker) Format() string       { return b.era.Format }
func (b ZoneEraBroker) UntilYearTiny() int8  { return b.era.UntilYearTiny }
func (b ZoneEraBroker) UntilMonth() uint8    { return b.era.UntilMonth }
func (b ZoneEraBroker) UntilDay() uint8      { return b.era.UntilDay }
func (b ZoneEraBroker) UntilTimeCode() int16 { return b.era.UntilTimeCode }
func (b ZoneEraBroker) UntilTimeModifier() byte {
	return b.era.UntilTimeModifier
}

// ZonePolicyBroker is a read-only, non-owning handle onto a ZonePolicy.
type ZonePolicyBroker struct {
	policy *ZonePolicy
}

func (b ZonePolicyBroker) IsNull() bool    { return b.policy == nil }
func (b ZonePolicyBroker) IsNotNull() bool { return b.policy != nil }

func (b ZonePolicyBroker) NumRules() int { return len(b.policy.Rules) }

func (b ZonePolicyBroker) Rule(i int) ZoneRuleBroker {
	return ZoneRuleBroker{rule: &b.policy.Rules[i]}
}

func (b ZonePolicyBroker) NumLetters() int { return len(b.policy.Letters) }

func (b ZonePolicyBroker) Letter(i int) string {
	if i < 0 || i >= len(b.policy.Letters) {
		return ""
	}
	return b.policy.Letters[i]
}

// ZoneRuleBroker is a read-only, non-owning handle onto a ZoneRule.
type ZoneRuleBroker struct {
	rule *ZoneRule
}

func (b ZoneRuleBroker) IsNull() bool    { return b.rule == nil }
func (b ZoneRuleBroker) IsNotNull() bool { return b.rule != nil }

func (b ZoneRuleBroker) FromYearTiny() int8   { return b.rule.FromYearTiny }
func (b ZoneRuleBroker) ToYearTiny() int8     { return b.rule.ToYearTiny }
func (b ZoneRuleBroker) InMonth() uint8       { return b.rule.InMonth }
func (b ZoneRuleBroker) OnDayOfWeek() uint8   { return b.rule.OnDayOfWeek }
func (b ZoneRuleBroker) OnDayOfMonth() int8   { return b.rule.OnDayOfMonth }
func (b ZoneRuleBroker) AtTimeCode() int16    { return b.rule.AtTimeCode }
func (b ZoneRuleBroker) AtTimeModifier() byte { return b.rule.AtTimeModifier }
func (b ZoneRuleBroker) DeltaCode() int8      { return b.rule.DeltaCode }
func (b ZoneRuleBroker) Letter() byte         { return b.rule.Letter }
