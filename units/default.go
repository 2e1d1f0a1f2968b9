// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

// mapTable is a TimeUnitTable backed by a plain map, used by Default, All,
// Custom and the zero-identifier Empty table.
type mapTable map[string]Entry

func (t mapTable) IsEmpty() bool { return len(t) == 0 }

func (t mapTable) Get(identifier string) (Entry, bool) {
	e, ok := t[identifier]
	return e, ok
}

// Empty returns a TimeUnitTable that recognizes no identifiers. A scanner
// configured with an empty table rejects any non-empty unit token.
func Empty() TimeUnitTable { return mapTable(nil) }

var defaultIDs = map[string]TimeUnit{
	"ns": Nanosecond,
	"Ms": Microsecond,
	"ms": Millisecond,
	"s":  Second,
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"w":  Week,
}

var allIDs = map[string]TimeUnit{
	"ns": Nanosecond,
	"Ms": Microsecond,
	"ms": Millisecond,
	"s":  Second,
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"w":  Week,
	"M":  Month,
	"y":  Year,
}

func fromIDs(ids map[string]TimeUnit) mapTable {
	t := make(mapTable, len(ids))
	for id, u := range ids {
		t[id] = Entry{Unit: u, Multiplier: Identity}
	}
	return t
}

// Default returns the table of single- and double-letter identifiers for
// Nanosecond through Week: ns, Ms, ms, s, m, h, d, w. Microsecond is "Ms"
// (capital M) so it does not collide with Minute's "m".
func Default() TimeUnitTable { return fromIDs(defaultIDs) }

// All returns Default plus Month ("M") and Year ("y").
func All() TimeUnitTable { return fromIDs(allIDs) }

// Custom builds a TimeUnitTable from a caller-supplied identifier set, for
// callers that need identifiers Default and All do not provide (long
// forms, locale-specific spellings, a restricted subset, ...).
func Custom(ids map[string]Entry) TimeUnitTable {
	t := make(mapTable, len(ids))
	for id, e := range ids {
		t[id] = e
	}
	return t
}
