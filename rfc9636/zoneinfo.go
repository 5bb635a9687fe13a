// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// https://github.com/golang/go/blob/master/src/time/zoneinfo.go

package rfc9636

import "fmt"

// A Location is the parsed contents of one TZif zone file: the set of
// offset/name/isDST triples a zone cycles through, the transition instants
// between them, and the POSIX "extend" string covering instants past the
// last compiled transition.
type Location struct {
	name string
	zone []zone
	tx   []zoneTrans

	// The tzdata information can be followed by a string that describes
	// how to handle DST transitions not recorded in zoneTrans.
	// The format is the TZ environment variable without a colon; see
	// https://pubs.opengroup.org/onlinepubs/9699919799/basedefs/V1_chap08.html.
	// Example string, for America/Los_Angeles: PST8PDT,M3.2.0,M11.1.0
	extend string
}

// A zone represents a single time zone such as CET.
type zone struct {
	name   string // abbreviated name, "CET"
	offset int    // seconds east of UTC
	isDST  bool   // is this zone Daylight Savings Time?
}

// A zoneTrans represents a single time zone transition.
type zoneTrans struct {
	when         int64 // transition time, in seconds since 1970 GMT
	index        uint8 // the index of the zone that goes into effect at that time
	isstd, isutc bool  // ignored - no idea what these mean
}

// alpha and omega are the beginning and end of time for zone
// transitions.
const (
	alpha = -1 << 63  // math.MinInt64
	omega = 1<<63 - 1 // math.MaxInt64
)

// Extend returns the POSIX TZ string tzInfo falls back to past its last
// compiled transition.
func (tzInfo *Location) Extend() string {
	return tzInfo.extend
}

// DumpLocation prints tzInfo's zones and transitions, for the CLI's debug
// loglevel (see cmd/tzquery).
func DumpLocation(tzInfo *Location) {
	fmt.Println("Name:", tzInfo.name)
	fmt.Println("Zone[", len(tzInfo.zone), "]")
	for i, z := range tzInfo.zone {
		fmt.Printf("  [%d]: %+v\n", i, z)
	}
	fmt.Println("Transition[", len(tzInfo.tx), "]")
	for i, tx := range tzInfo.tx {
		fmt.Printf("  [%d]: %+v\n", i, tx)
	}
	fmt.Println("Extend:", tzInfo.extend)
}
