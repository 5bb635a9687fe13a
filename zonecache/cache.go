// Package zonecache multiplexes a fixed number of extended.ExtendedZoneProcessor
// instances across an arbitrary number of zones, evicting the
// least-recently-used processor when capacity is exceeded.
package zonecache

import (
	"container/list"
	"sync"

	"github.com/SeppPenner/AceTime/extended"
	"github.com/SeppPenner/AceTime/zonedb"
)

type entry struct {
	zoneID    uint32
	processor *extended.ExtendedZoneProcessor
}

// Cache is a fixed-capacity, LRU-evicting pool of ExtendedZoneProcessor
// instances keyed by zone id. Safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	byZoneID map[uint32]*list.Element
}

// New returns a Cache holding at most capacity processors at once. A
// capacity below 1 is raised to 1.
func New(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		byZoneID: make(map[uint32]*list.Element, capacity),
	}
}

// Get returns the ExtendedZoneProcessor bound to info, creating one (and
// evicting the least-recently-used entry if the cache is at capacity) if
// necessary, or reusing an existing entry and marking it most-recently-used.
func (c *Cache) Get(info zonedb.ZoneInfoBroker) *extended.ExtendedZoneProcessor {
	c.mu.Lock()
	defer c.mu.Unlock()

	zoneID := info.ZoneID()
	if elem, ok := c.byZoneID[zoneID]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry).processor
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.byZoneID, oldest.Value.(*entry).zoneID)
		}
	}

	processor := extended.NewExtendedZoneProcessor()
	processor.SetZoneInfo(info)
	elem := c.order.PushFront(&entry{zoneID: zoneID, processor: processor})
	c.byZoneID[zoneID] = elem
	return processor
}

// Len returns the number of processors currently resident.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
