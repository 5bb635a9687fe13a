package extended

import "testing"

func newTestStorage() *TransitionStorage {
	s := &TransitionStorage{}
	s.Init()
	return s
}

func TestGetFreeAgentTracksHighWaterMark(t *testing.T) {
	s := newTestStorage()
	s.GetFreeAgent()
	if got := s.HighWaterMark(); got != 0 {
		t.Errorf("got %d want 0", got)
	}
	s.AddFreeAgentToActivePool()
	s.GetFreeAgent()
	if got := s.HighWaterMark(); got != 1 {
		t.Errorf("got %d want 1", got)
	}
}

func TestAddFreeAgentToActivePool(t *testing.T) {
	s := newTestStorage()
	t1 := s.GetFreeAgent()
	t1.TransitionTime = DateTuple{Year: 2020, Month: 1, Day: 1}
	s.AddFreeAgentToActivePool()

	active := s.ActivePool()
	if len(active) != 1 {
		t.Fatalf("got %d active transitions, want 1", len(active))
	}
	if active[0].TransitionTime.Year != 2020 {
		t.Errorf("active pool does not contain the committed transition")
	}
}

func TestReservePriorAndSetFreeAgentAsPrior(t *testing.T) {
	s := newTestStorage()
	prior := s.ReservePrior()
	prior.Active = false

	agent := s.GetFreeAgent()
	agent.TransitionTime = DateTuple{Year: 2019, Month: 6, Day: 1}
	s.SetFreeAgentAsPrior()

	if s.Prior().TransitionTime.Year != 2019 {
		t.Errorf("prior slot was not swapped with the free agent")
	}
}

func TestAddFreeAgentToCandidatePoolSortsByTransitionTime(t *testing.T) {
	s := newTestStorage()
	prior := s.ReservePrior()
	prior.Active = false

	second := s.GetFreeAgent()
	second.TransitionTime = DateTuple{Year: 2020, Month: 6, Day: 1}
	s.AddFreeAgentToCandidatePool()

	first := s.GetFreeAgent()
	first.TransitionTime = DateTuple{Year: 2020, Month: 3, Day: 1}
	s.AddFreeAgentToCandidatePool()

	candidates := s.CandidatePool()
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	if candidates[0].TransitionTime.Month != 3 || candidates[1].TransitionTime.Month != 6 {
		t.Errorf("candidates not sorted by transitionTime: %+v, %+v",
			candidates[0].TransitionTime, candidates[1].TransitionTime)
	}
}

func TestAddActiveCandidatesToActivePool(t *testing.T) {
	s := newTestStorage()
	prior := s.ReservePrior()
	prior.Active = false

	a := s.GetFreeAgent()
	a.TransitionTime = DateTuple{Year: 2020, Month: 1, Day: 1}
	a.Active = false
	s.AddFreeAgentToCandidatePool()

	b := s.GetFreeAgent()
	b.TransitionTime = DateTuple{Year: 2020, Month: 6, Day: 1}
	b.Active = true
	s.AddFreeAgentToCandidatePool()

	s.AddActiveCandidatesToActivePool()

	active := s.ActivePool()
	if len(active) != 1 {
		t.Fatalf("got %d active transitions, want 1", len(active))
	}
	if active[0].TransitionTime.Month != 6 {
		t.Errorf("expected the active candidate (June) to survive, got %+v", active[0].TransitionTime)
	}
}

func TestFindTransitionReturnsLatestNonFutureStart(t *testing.T) {
	s := newTestStorage()
	first := s.GetFreeAgent()
	first.StartEpochSeconds = 0
	s.AddFreeAgentToActivePool()

	second := s.GetFreeAgent()
	second.StartEpochSeconds = 1000
	s.AddFreeAgentToActivePool()

	got := s.FindTransition(500)
	if got != first {
		t.Error("expected the first transition to match an epoch before the second's start")
	}

	got = s.FindTransition(1500)
	if got != second {
		t.Error("expected the second transition to match an epoch after its start")
	}
}
