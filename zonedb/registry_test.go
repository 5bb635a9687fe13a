package zonedb

import "testing"

func TestRegistryGetKnownZone(t *testing.T) {
	r := NewRegistry()
	var tests = []string{
		"America/Los_Angeles",
		"Africa/Johannesburg",
		"America/St_Johns",
		"America/Indiana/Indianapolis",
		"Etc/UTC",
	}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			broker := r.Get(name)
			if broker.IsNull() {
				t.Fatalf("Get(%q) returned a null broker", name)
			}
			if broker.ZoneName() != name {
				t.Errorf("got name %q want %q", broker.ZoneName(), name)
			}
			if broker.NumEras() == 0 {
				t.Errorf("%q has no eras", name)
			}
		})
	}
}

func TestRegistryGetUnknownZoneIsNull(t *testing.T) {
	r := NewRegistry()
	broker := r.Get("Nowhere/Nonexistent")
	if !broker.IsNull() {
		t.Error("expected a null broker for an unknown zone")
	}
}

func TestZoneIDIsStableAcrossCalls(t *testing.T) {
	a := zoneID("America/Los_Angeles")
	b := zoneID("America/Los_Angeles")
	if a != b {
		t.Errorf("zoneID is not deterministic: %d != %d", a, b)
	}
	if a == zoneID("Etc/UTC") {
		t.Error("two different zone names hashed to the same id")
	}
}

func TestAddOverridesExistingZone(t *testing.T) {
	r := NewRegistry()
	r.Add(ZoneInfo{Name: "Etc/UTC", ID: 99, StartYear: 1, UntilYear: 2, Eras: []ZoneEra{{}}})
	broker := r.Get("Etc/UTC")
	if broker.ZoneID() != 99 {
		t.Errorf("got id %d want 99", broker.ZoneID())
	}
}
