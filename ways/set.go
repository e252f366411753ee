package ways

import (
	"sort"
	"strconv"
	"strings"
)

// JunctionSet is a set of junctions keyed by junction ID.
//
// Sets are treated as immutable values by convention: With, Union and
// Diff allocate fresh sets and never touch the receiver, so a set may
// be shared between any number of problem states.
type JunctionSet map[int]*Junction

// NewJunctionSet builds a set from the given junctions.
// Complexity: O(len(junctions)).
func NewJunctionSet(junctions ...*Junction) JunctionSet {
	s := make(JunctionSet, len(junctions))
	for _, j := range junctions {
		s[j.ID] = j
	}

	return s
}

// Has reports whether j is a member of the set.
// Complexity: O(1).
func (s JunctionSet) Has(j *Junction) bool {
	_, ok := s[j.ID]

	return ok
}

// Len returns the number of junctions in the set.
func (s JunctionSet) Len() int { return len(s) }

// With returns a fresh set containing all members of s plus j.
// The receiver is left untouched.
// Complexity: O(|s|).
func (s JunctionSet) With(j *Junction) JunctionSet {
	out := make(JunctionSet, len(s)+1)
	for id, member := range s {
		out[id] = member
	}
	out[j.ID] = j

	return out
}

// Union returns a fresh set holding every member of s and other.
// Complexity: O(|s| + |other|).
func (s JunctionSet) Union(other JunctionSet) JunctionSet {
	out := make(JunctionSet, len(s)+len(other))
	for id, member := range s {
		out[id] = member
	}
	for id, member := range other {
		out[id] = member
	}

	return out
}

// Diff returns a fresh set holding the members of s absent from other.
// Complexity: O(|s|).
func (s JunctionSet) Diff(other JunctionSet) JunctionSet {
	out := make(JunctionSet, len(s))
	for id, member := range s {
		if _, ok := other[id]; !ok {
			out[id] = member
		}
	}

	return out
}

// Equal reports whether s and other contain exactly the same junction IDs.
// Complexity: O(|s|).
func (s JunctionSet) Equal(other JunctionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}

	return true
}

// Sorted returns the members in ascending ID order. Downstream
// algorithms iterate this slice so that expansion order, and therefore
// whole searches, are reproducible.
// Complexity: O(|s| log |s|).
func (s JunctionSet) Sorted() []*Junction {
	out := make([]*Junction, 0, len(s))
	for _, j := range s {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })

	return out
}

// KeyString renders the sorted member IDs as "1,4,9". It is the
// canonical textual identity of the set, used when building state keys.
// Complexity: O(|s| log |s|).
func (s JunctionSet) KeyString() string {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}
