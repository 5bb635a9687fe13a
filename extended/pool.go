package extended

import "github.com/SeppPenner/AceTime/timeoffset"

// maxTransitions is the maximum number of Transitions required for any
// zone in this engine's registry, including the most recent prior
// transition. AceTime's own validation against the full IANA database
// found a maximum of 7; this leaves one slot of headroom.
const maxTransitions = 8

// TransitionStorage is a fixed-capacity pool of *Transition pointers,
// partitioned into four contiguous, half-open index ranges that shift as
// findTransitionsForMatch runs:
//
//	Active:     [0, iPrior)
//	Prior:      [iPrior, iCandidates), 0 or 1 element
//	Candidates: [iCandidates, iFree)
//	Free:       [iFree, maxTransitions)
//
// After init() completes, Active holds the year's resolved transitions and
// everything else is empty. No Transition is ever allocated on the heap
// once the pool itself exists; getFreeAgent recycles slots from Free.
type TransitionStorage struct {
	pool         [maxTransitions]Transition
	transitions  [maxTransitions]*Transition
	iPrior       int
	iCandidates  int
	iFree        int
	highWaterMark int
}

// Init resets all four regions to empty and clears the high-water mark,
// pointing the pool's pointer slots at their backing storage.
func (s *TransitionStorage) Init() {
	for i := range s.pool {
		s.transitions[i] = &s.pool[i]
	}
	s.iPrior = 0
	s.iCandidates = 0
	s.iFree = 0
	s.highWaterMark = 0
}

// Prior returns the current prior-transition slot.
func (s *TransitionStorage) Prior() *Transition { return s.transitions[s.iPrior] }

func (s *TransitionStorage) swap(i, j int) {
	s.transitions[i], s.transitions[j] = s.transitions[j], s.transitions[i]
}

// ResetCandidatePool empties the Candidate pool without touching Active or
// Prior.
func (s *TransitionStorage) ResetCandidatePool() {
	s.iCandidates = s.iPrior
	s.iFree = s.iPrior
}

// CandidatePool returns the current Candidate region.
func (s *TransitionStorage) CandidatePool() []*Transition {
	return s.transitions[s.iCandidates:s.iFree]
}

// ActivePool returns [0, iFree): the Active region once the Prior and
// Candidate regions are empty, as they are after init() completes. While a
// match is being processed it also includes Prior and the Candidates.
func (s *TransitionStorage) ActivePool() []*Transition {
	return s.transitions[0:s.iFree]
}

// GetFreeAgent returns the first slot of the Free pool without removing it;
// calling it again without committing (via one of the AddFreeAgent* methods)
// returns the same slot. Tracks the high-water mark for overflow detection.
func (s *TransitionStorage) GetFreeAgent() *Transition {
	if s.iFree > s.highWaterMark {
		s.highWaterMark = s.iFree
	}
	if s.iFree < maxTransitions {
		return s.transitions[s.iFree]
	}
	return s.transitions[maxTransitions-1]
}

// AddFreeAgentToActivePool commits the current free agent directly into the
// Active pool. Valid only when the Prior and Candidate pools are empty.
func (s *TransitionStorage) AddFreeAgentToActivePool() {
	if s.iFree >= maxTransitions {
		return
	}
	s.iFree++
	s.iPrior = s.iFree
	s.iCandidates = s.iFree
}

// ReservePrior allocates the slot just after Active (before Candidates) to
// hold the most-recent-prior transition under construction, shifting
// Candidates and Free up by one.
func (s *TransitionStorage) ReservePrior() *Transition {
	s.iCandidates++
	s.iFree++
	return s.transitions[s.iPrior]
}

// SetFreeAgentAsPrior swaps the free agent into the Prior slot.
func (s *TransitionStorage) SetFreeAgentAsPrior() {
	s.swap(s.iPrior, s.iFree)
}

// AddPriorToCandidatePool folds the reserved Prior slot into the start of
// the Candidate pool.
func (s *TransitionStorage) AddPriorToCandidatePool() {
	s.iCandidates--
}

// AddFreeAgentToCandidatePool inserts the free agent into the Candidate
// pool in transitionTime order (insertion sort), then removes it from Free.
func (s *TransitionStorage) AddFreeAgentToCandidatePool() {
	if s.iFree >= maxTransitions {
		return
	}
	for i := s.iFree; i > s.iCandidates; i-- {
		curr := s.transitions[i]
		prev := s.transitions[i-1]
		if curr.TransitionTime.GreaterOrEqual(prev.TransitionTime) {
			break
		}
		s.transitions[i] = prev
		s.transitions[i-1] = curr
	}
	s.iFree++
}

// AddActiveCandidatesToActivePool moves every Candidate marked Active into
// the Active pool, in place, and collapses the Candidate pool.
func (s *TransitionStorage) AddActiveCandidatesToActivePool() {
	iActive := s.iPrior
	for iCandidate := s.iCandidates; iCandidate < s.iFree; iCandidate++ {
		if s.transitions[iCandidate].Active {
			if iActive != iCandidate {
				s.swap(iActive, iCandidate)
			}
			iActive++
		}
	}
	s.iPrior = iActive
	s.iCandidates = iActive
	s.iFree = iActive
}

// FindTransition returns the Transition whose interval contains
// epochSeconds, or nil if none matches (which should not happen for a
// well-formed registry: the anchor era guarantees coverage back to 1872).
func (s *TransitionStorage) FindTransition(epochSeconds int64) *Transition {
	var match *Transition
	for i := 0; i < s.iFree; i++ {
		candidate := s.transitions[i]
		if candidate.StartEpochSeconds > epochSeconds {
			break
		}
		match = candidate
	}
	return match
}

// FindTransitionForDateTime returns the Transition matching ldt. During a
// DST gap (no Transition covers the local time), the prior Transition is
// returned so its offset carries forward through the gap. During an
// overlap (two Transitions both cover the local time), the later one is
// returned.
func (s *TransitionStorage) FindTransitionForDateTime(ldt timeoffset.LocalDateTime) *Transition {
	localDate := DateTuple{
		Year: ldt.Date.Year, Month: ldt.Date.Month, Day: ldt.Date.Day,
		TimeCode: ldt.TimeCode, Modifier: ModifierWall,
	}
	var match *Transition
	for i := 0; i < s.iFree; i++ {
		candidate := s.transitions[i]
		if localDate.Less(candidate.StartDateTime) {
			break
		}
		match = candidate
	}
	return match
}

// HighWaterMark returns the largest Free-pool index reached since the last
// Init or ResetHighWaterMark; equal to maxTransitions means the pool
// overflowed this init().
func (s *TransitionStorage) HighWaterMark() int { return s.highWaterMark }

// ResetHighWaterMark clears the high-water mark, for diagnostics.
func (s *TransitionStorage) ResetHighWaterMark() { s.highWaterMark = 0 }
