package extended

import (
	"strings"

	"github.com/SeppPenner/AceTime/zonedb"
)

// Transition represents an interval of time during which a zone observed a
// constant UTC offset and DST delta. There are two kinds, distinguished by
// whether Rule is null: "simple" transitions come from a policy-less
// ZoneEra and carry the era's own DeltaCode; "named" transitions come from a
// matching ZoneRule and carry the rule's DeltaCode.
//
// TransitionTime, TransitionTimeS, and TransitionTimeU are the transition's
// start instant (TransitionTime's own modifier) expanded into all three
// wall/standard/universal representations, using the UTC offset of the
// *previous* transition — they are scratch fields only valid before
// generateStartUntilTimes runs. StartDateTime and UntilDateTime hold the
// same interval re-expressed in the *current* transition's own offset, and
// are valid only after generateStartUntilTimes runs. The original C++
// overlays these two pairs in a union to save memory; Go keeps them as
// plain always-present fields instead (see DESIGN.md).
type Transition struct {
	Match *ZoneMatch
	Rule  zonedb.ZoneRuleBroker

	TransitionTime  DateTuple
	TransitionTimeS DateTuple
	TransitionTimeU DateTuple

	StartDateTime DateTuple
	UntilDateTime DateTuple

	// OriginalTransitionTime records TransitionTime before
	// selectActiveTransitions shifts a prior transition to the start of its
	// match, for debugging.
	OriginalTransitionTime DateTuple

	StartEpochSeconds int64
	Abbrev            string

	// Active carries two different meanings at different points in init():
	// during findCandidateTransitions it marks "this is a valid prior";
	// during selectActiveTransitions (via processActiveTransition) it marks
	// "kept for the current match". See DESIGN.md.
	Active bool

	// OffsetCode is the era's base UTC offset, not the total effective
	// offset (OffsetCode + DeltaCode is the total).
	OffsetCode int8
	DeltaCode  int8
}

// Format returns the owning era's FORMAT template.
func (t *Transition) Format() string { return t.Match.Era.Format() }

// Letter returns the effective LETTER substitution for t, or "" if Rule is
// null (meaning the era's RULES column was "-" and no substitution
// applies, distinct from an explicit LETTER of "-" which also yields "").
func (t *Transition) Letter() (letter string, hasRule bool) {
	if t.Rule.IsNull() {
		return "", false
	}
	l := t.Rule.Letter()
	if l >= 32 {
		if l == '-' {
			return "", true
		}
		return string(rune(l)), true
	}
	policy := t.Match.Era.ZonePolicy()
	if int(l) >= policy.NumLetters() {
		return "", true
	}
	return policy.Letter(int(l)), true
}

// createTransitionForYear populates t for the given rule (or, if rule is
// null, for match's own simple era) in the given year.
func createTransitionForYear(t *Transition, year int16, rule zonedb.ZoneRuleBroker, match *ZoneMatch) {
	t.Match = match
	t.Rule = rule
	t.OffsetCode = match.Era.OffsetCode()

	if rule.IsNotNull() {
		t.TransitionTime = getTransitionTime(year, rule)
		t.DeltaCode = rule.DeltaCode()
	} else {
		t.TransitionTime = match.Start
		t.DeltaCode = match.Era.DeltaCode()
	}
}

// createAbbreviation renders the effective abbreviation for format given
// deltaCode and the resolved letter, per the FORMAT template rules: a plain
// string when hasRule is false, '%'-substitution, or 'std/dst' splitting.
func createAbbreviation(format string, deltaCode int8, letter string, hasRule bool) string {
	if !hasRule {
		return format
	}

	if idx := strings.IndexByte(format, '%'); idx >= 0 {
		return format[:idx] + letter + format[idx+1:]
	}

	if idx := strings.IndexByte(format, '/'); idx >= 0 {
		if deltaCode == 0 {
			return format[:idx]
		}
		return format[idx+1:]
	}

	return format
}
