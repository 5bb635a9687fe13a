package zonecache

import (
	"testing"

	"github.com/SeppPenner/AceTime/zonedb"
)

func TestGetReusesSameProcessorForSameZone(t *testing.T) {
	registry := zonedb.NewRegistry()
	c := New(2)

	info := registry.Get("America/Los_Angeles")
	first := c.Get(info)
	second := c.Get(info)

	if first != second {
		t.Error("expected repeated Get for the same zone to return the same processor")
	}
	if c.Len() != 1 {
		t.Errorf("got Len %d want 1", c.Len())
	}
}

func TestGetEvictsLeastRecentlyUsed(t *testing.T) {
	registry := zonedb.NewRegistry()
	c := New(2)

	la := c.Get(registry.Get("America/Los_Angeles"))
	_ = c.Get(registry.Get("Africa/Johannesburg"))
	// Touch la again so St_Johns' insertion evicts Johannesburg, not LA.
	_ = c.Get(registry.Get("America/Los_Angeles"))
	_ = c.Get(registry.Get("America/St_Johns"))

	if c.Len() != 2 {
		t.Fatalf("got Len %d want 2", c.Len())
	}
	if got := c.Get(registry.Get("America/Los_Angeles")); got != la {
		t.Error("expected the recently-touched Los_Angeles processor to survive eviction")
	}
}

func TestNewClampsCapacityToOne(t *testing.T) {
	c := New(0)
	if c.capacity != 1 {
		t.Errorf("got capacity %d want 1", c.capacity)
	}
}
