package extended

import (
	"github.com/SeppPenner/AceTime/basic"
	"github.com/SeppPenner/AceTime/timeoffset"
	"github.com/SeppPenner/AceTime/zonedb"
)

// maxInteriorYears is the maximum number of years, other than the most
// recent prior year, that a rule can contribute transitions for within a
// 14-month viewing window.
const maxInteriorYears = 4

// ExtendedZoneProcessor resolves UTC offsets, DST deltas, abbreviations and
// wall-clock/epoch conversions for one zone at a time, caching the set of
// Transitions it derives for whichever calendar year was last queried. Not
// safe for concurrent use; package zonecache supplies one instance per
// concurrently-active zone.
type ExtendedZoneProcessor struct {
	zoneInfo zonedb.ZoneInfoBroker

	year     int16
	isFilled bool
	matches  []ZoneMatch
	storage  TransitionStorage
}

// NewExtendedZoneProcessor returns a processor with no zone bound yet; call
// SetZoneInfo before use.
func NewExtendedZoneProcessor() *ExtendedZoneProcessor {
	return &ExtendedZoneProcessor{}
}

// ZoneID returns the bound zone's stable numeric identifier.
func (p *ExtendedZoneProcessor) ZoneID() uint32 {
	return p.zoneInfo.ZoneID()
}

// SetZoneInfo rebinds the processor to a different zone, invalidating any
// cached transitions. A no-op if info is already the bound zone.
func (p *ExtendedZoneProcessor) SetZoneInfo(info zonedb.ZoneInfoBroker) {
	if p.zoneInfo.IsNotNull() && info.IsNotNull() && p.zoneInfo.ZoneID() == info.ZoneID() {
		return
	}
	p.zoneInfo = info
	p.year = 0
	p.isFilled = false
	p.matches = nil
}

func (p *ExtendedZoneProcessor) isFilledFor(year int16) bool {
	return p.isFilled && year == p.year
}

// initForEpochSeconds ensures the transition cache covers the calendar year
// containing epochSeconds, returning false if that year is outside the
// zone's compiled range.
func (p *ExtendedZoneProcessor) initForEpochSeconds(epochSeconds int64) bool {
	date := basic.ForEpochSeconds(epochSeconds)
	return p.initForYear(date.Year)
}

func (p *ExtendedZoneProcessor) initForLocalDate(date basic.LocalDate) bool {
	return p.initForYear(date.Year)
}

func (p *ExtendedZoneProcessor) initForYear(year int16) bool {
	if p.isFilledFor(year) {
		return true
	}

	p.year = year
	p.matches = nil
	p.storage.Init()

	if year < p.zoneInfo.StartYear()-1 || p.zoneInfo.UntilYear() < year {
		return false
	}

	startYm := YearMonth{Year: year - 1, Month: 12}
	untilYm := YearMonth{Year: year + 1, Month: 2}

	p.matches = findMatches(p.zoneInfo, startYm, untilYm)
	findTransitions(&p.storage, p.matches)

	active := p.storage.ActivePool()
	fixTransitionTimes(active)
	generateStartUntilTimes(active)
	calcAbbreviations(active)

	p.isFilled = true
	return true
}

// findTransitions builds the Transitions defined by each match in turn.
func findTransitions(storage *TransitionStorage, matches []ZoneMatch) {
	for i := range matches {
		findTransitionsForMatch(storage, &matches[i])
	}
}

func findTransitionsForMatch(storage *TransitionStorage, match *ZoneMatch) {
	policy := match.Era.ZonePolicy()
	if policy.IsNull() {
		findTransitionsFromSimpleMatch(storage, match)
	} else {
		findTransitionsFromNamedMatch(storage, match)
	}
}

func findTransitionsFromSimpleMatch(storage *TransitionStorage, match *ZoneMatch) {
	t := storage.GetFreeAgent()
	createTransitionForYear(t, 0, zonedb.ZoneRuleBroker{}, match)
	storage.AddFreeAgentToActivePool()
}

func findTransitionsFromNamedMatch(storage *TransitionStorage, match *ZoneMatch) {
	storage.ResetCandidatePool()
	findCandidateTransitions(storage, match)
	fixTransitionTimes(storage.CandidatePool())
	selectActiveTransitions(storage, match)
	storage.AddActiveCandidatesToActivePool()
}

func findCandidateTransitions(storage *TransitionStorage, match *ZoneMatch) {
	policy := match.Era.ZonePolicy()
	numRules := policy.NumRules()
	startY := match.Start.Year
	endY := match.Until.Year

	prior := storage.ReservePrior()
	prior.Active = false

	for r := 0; r < numRules; r++ {
		rule := policy.Rule(r)

		interiorYears := calcInteriorYears(
			widenYear(rule.FromYearTiny()), widenYear(rule.ToYearTiny()), startY, endY)
		for _, year := range interiorYears {
			t := storage.GetFreeAgent()
			createTransitionForYear(t, year, rule, match)
			status := compareTransitionToMatchFuzzy(t, match)
			switch status {
			case fuzzyBefore:
				setAsPriorTransition(storage, t)
			case fuzzyWithin:
				storage.AddFreeAgentToCandidatePool()
			}
		}

		priorYear, hasPrior := getMostRecentPriorYear(
			widenYear(rule.FromYearTiny()), widenYear(rule.ToYearTiny()), startY, endY)
		if hasPrior {
			t := storage.GetFreeAgent()
			createTransitionForYear(t, priorYear, rule, match)
			setAsPriorTransition(storage, t)
		}
	}

	if storage.Prior().Active {
		storage.AddPriorToCandidatePool()
	}
}

// calcInteriorYears returns, in ascending order and capped at
// maxInteriorYears, the years in [startYear, endYear] for which the rule
// [fromYear, toYear] is in effect.
func calcInteriorYears(fromYear, toYear, startYear, endYear int16) []int16 {
	years := make([]int16, 0, maxInteriorYears)
	for year := startYear; year <= endYear; year++ {
		if fromYear <= year && year <= toYear {
			years = append(years, year)
			if len(years) >= maxInteriorYears {
				break
			}
		}
	}
	return years
}

// getMostRecentPriorYear returns the most recent year before startYear for
// which the rule [fromYear, toYear] was in effect, and whether one exists.
// endYear is accepted but unused, preserved from the original signature
// (see DESIGN.md).
func getMostRecentPriorYear(fromYear, toYear, startYear, endYear int16) (int16, bool) {
	_ = endYear
	if fromYear < startYear {
		if toYear < startYear {
			return toYear, true
		}
		return startYear - 1, true
	}
	return 0, false
}

func getTransitionTime(year int16, rule zonedb.ZoneRuleBroker) DateTuple {
	monthDay := basic.CalcStartDayOfMonth(year, rule.InMonth(), rule.OnDayOfWeek(), rule.OnDayOfMonth())
	return DateTuple{
		Year: monthDay.Year, Month: monthDay.Month, Day: monthDay.Day,
		TimeCode: rule.AtTimeCode(), Modifier: rule.AtTimeModifier(),
	}
}

type fuzzyStatus int

const (
	fuzzyBefore fuzzyStatus = -1
	fuzzyWithin fuzzyStatus = 1
	fuzzyAfter  fuzzyStatus = 2
)

// compareTransitionToMatchFuzzy is compareTransitionToMatch's cheaper
// cousin: it only needs month-level resolution, with one month of slack on
// each side, to decide whether t belongs near match at all.
func compareTransitionToMatchFuzzy(t *Transition, match *ZoneMatch) fuzzyStatus {
	ttMonths := int32(t.TransitionTime.Year)*12 + int32(t.TransitionTime.Month)

	matchStartMonths := int32(match.Start.Year)*12 + int32(match.Start.Month)
	if ttMonths < matchStartMonths-1 {
		return fuzzyBefore
	}

	matchUntilMonths := int32(match.Until.Year)*12 + int32(match.Until.Month)
	if matchUntilMonths+2 <= ttMonths {
		return fuzzyAfter
	}

	return fuzzyWithin
}

func setAsPriorTransition(storage *TransitionStorage, t *Transition) {
	prior := storage.Prior()
	if prior.Active {
		if prior.TransitionTime.Less(t.TransitionTime) {
			t.Active = true
			storage.SetFreeAgentAsPrior()
		}
	} else {
		t.Active = true
		storage.SetFreeAgentAsPrior()
	}
}

// fixTransitionTimes normalizes the transitionTime* fields across the
// transitions, converting any 's'/'u' modifier into 'w' using the UTC
// offset of the chain's previous transition.
func fixTransitionTimes(transitions []*Transition) {
	if len(transitions) == 0 {
		return
	}
	prev := transitions[0]
	for _, curr := range transitions {
		wall, standard, universal := Expand(curr.TransitionTime, prev.OffsetCode, prev.DeltaCode)
		curr.TransitionTime = wall
		curr.TransitionTimeS = standard
		curr.TransitionTimeU = universal
		prev = curr
	}
}

// selectActiveTransitions marks each Candidate as Active or not, then
// shifts the winning "most recent prior" transition's start to the match's
// own start time.
func selectActiveTransitions(storage *TransitionStorage, match *ZoneMatch) {
	candidates := storage.CandidatePool()
	var prior *Transition
	for _, t := range candidates {
		prior = processActiveTransition(match, t, prior)
	}

	if prior != nil {
		prior.OriginalTransitionTime = prior.TransitionTime
		prior.TransitionTime = match.Start
	}
}

func processActiveTransition(match *ZoneMatch, t *Transition, prior *Transition) *Transition {
	status := compareTransitionToMatch(t, match)
	switch status {
	case 2:
		t.Active = false
	case 1:
		t.Active = true
	case 0:
		if prior != nil {
			prior.Active = false
		}
		t.Active = true
		prior = t
	default: // < 0
		if prior != nil {
			if prior.TransitionTime.Less(t.TransitionTime) {
				prior.Active = false
				t.Active = true
				prior = t
			}
		} else {
			t.Active = true
			prior = t
		}
	}
	return prior
}

// compareTransitionToMatch compares t's transition time (using whichever
// wall/standard/universal representation matches each boundary's own
// modifier) to match's interval: -1 before, 0 exactly at the start, 1
// strictly within, 2 at or after the end.
func compareTransitionToMatch(t *Transition, match *ZoneMatch) int {
	start := match.Start
	startTime := transitionTimeFor(t, start.Modifier)
	if startTime.Less(start) {
		return -1
	}
	if startTime.Equal(start) {
		return 0
	}

	until := match.Until
	untilTime := transitionTimeFor(t, until.Modifier)
	if untilTime.Less(until) {
		return 1
	}
	return 2
}

func transitionTimeFor(t *Transition, modifier byte) DateTuple {
	switch modifier {
	case ModifierStandard:
		return t.TransitionTimeS
	case ModifierUniversal:
		return t.TransitionTimeU
	default:
		return t.TransitionTime
	}
}

// generateStartUntilTimes derives each transition's StartDateTime,
// UntilDateTime, and StartEpochSeconds, re-expressing the chain's shared
// boundary instants in each transition's own UTC offset.
func generateStartUntilTimes(transitions []*Transition) {
	if len(transitions) == 0 {
		return
	}

	prev := transitions[0]
	isAfterFirst := false

	for _, t := range transitions {
		tt := t.TransitionTime
		if isAfterFirst {
			prev.UntilDateTime = tt
		}

		code := tt.TimeCode - int16(prev.OffsetCode) - int16(prev.DeltaCode) +
			int16(t.OffsetCode) + int16(t.DeltaCode)
		t.StartDateTime = Normalize(DateTuple{tt.Year, tt.Month, tt.Day, code, tt.Modifier})

		st := t.StartDateTime
		offsetSeconds := int64(timeoffset.CodeUnitSeconds) *
			int64(st.TimeCode-int16(t.OffsetCode)-int16(t.DeltaCode))
		date := basic.LocalDate{Year: st.Year, Month: st.Month, Day: st.Day}
		t.StartEpochSeconds = date.ToEpochSeconds() + offsetSeconds

		prev = t
		isAfterFirst = true
	}

	untilTime := prev.Match.Until
	wall, _, _ := Expand(untilTime, prev.OffsetCode, prev.DeltaCode)
	prev.UntilDateTime = wall
}

func calcAbbreviations(transitions []*Transition) {
	for _, t := range transitions {
		letter, hasRule := t.Letter()
		t.Abbrev = createAbbreviation(t.Format(), t.DeltaCode, letter, hasRule)
	}
}

// findTransition returns the Transition covering epochSeconds, after
// ensuring the cache is filled for its year.
func (p *ExtendedZoneProcessor) findTransition(epochSeconds int64) (*Transition, bool) {
	if !p.initForEpochSeconds(epochSeconds) {
		return nil, false
	}
	t := p.storage.FindTransition(epochSeconds)
	return t, t != nil
}

// UTCOffset returns the total effective UTC offset (base + DST delta) in
// effect at epochSeconds.
func (p *ExtendedZoneProcessor) UTCOffset(epochSeconds int64) timeoffset.TimeOffset {
	t, ok := p.findTransition(epochSeconds)
	if !ok {
		return timeoffset.ForError()
	}
	return timeoffset.ForOffsetCode(t.OffsetCode + t.DeltaCode)
}

// DeltaOffset returns the DST delta (zero outside DST) in effect at
// epochSeconds.
func (p *ExtendedZoneProcessor) DeltaOffset(epochSeconds int64) timeoffset.TimeOffset {
	t, ok := p.findTransition(epochSeconds)
	if !ok {
		return timeoffset.ForError()
	}
	return timeoffset.ForOffsetCode(t.DeltaCode)
}

// Abbrev returns the zone abbreviation (e.g. "PST", "PDT") in effect at
// epochSeconds.
func (p *ExtendedZoneProcessor) Abbrev(epochSeconds int64) string {
	t, ok := p.findTransition(epochSeconds)
	if !ok {
		return ""
	}
	return t.Abbrev
}

// OffsetDateTime resolves ldt (a wall-clock date-time with no offset
// attached) to its OffsetDateTime. Local times that fall in a DST gap are
// normalized forward past the gap; local times that fall in an overlap
// resolve to the later (post-transition) UTC offset, matching
// FindTransitionForDateTime's own tie-break.
func (p *ExtendedZoneProcessor) OffsetDateTime(ldt timeoffset.LocalDateTime) timeoffset.OffsetDateTime {
	if !p.initForLocalDate(ldt.Date) {
		return timeoffset.OffsetDateTime{Offset: timeoffset.ForError()}
	}

	t := p.storage.FindTransitionForDateTime(ldt)
	var offset timeoffset.TimeOffset
	if t != nil {
		offset = timeoffset.ForOffsetCode(t.OffsetCode + t.DeltaCode)
	} else {
		offset = timeoffset.ForError()
	}

	odt := timeoffset.ForLocalDateTimeAndOffset(ldt, offset)
	if offset.IsError() {
		return odt
	}

	epochSeconds := odt.ToEpochSeconds()
	resolved, ok := p.findTransition(epochSeconds)
	if !ok {
		return timeoffset.ForEpochSeconds(epochSeconds, timeoffset.ForError())
	}
	return timeoffset.ForEpochSeconds(epochSeconds, timeoffset.ForOffsetCode(resolved.OffsetCode+resolved.DeltaCode))
}
