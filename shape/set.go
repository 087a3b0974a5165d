package shape

import "sort"

// Set is a collection of Shapes unique under edge-set equality. Iteration
// order via Shapes is deterministic (sorted by canonical key).
type Set struct {
	members map[string]*Shape
}

// NewSet builds a Set holding the given shapes, deduplicated.
func NewSet(shapes ...*Shape) *Set {
	set := &Set{members: make(map[string]*Shape, len(shapes))}
	for _, s := range shapes {
		set.Add(s)
	}

	return set
}

// Add inserts s, reporting whether it was absent before.
func (set *Set) Add(s *Shape) bool {
	if _, dup := set.members[s.key]; dup {
		return false
	}
	set.members[s.key] = s

	return true
}

// Has reports whether a shape with the same edge set is present.
func (set *Set) Has(s *Shape) bool {
	_, ok := set.members[s.key]

	return ok
}

// Len reports the number of distinct shapes.
func (set *Set) Len() int { return len(set.members) }

// Shapes returns the members sorted by canonical key.
func (set *Set) Shapes() []*Shape {
	keys := make([]string, 0, len(set.members))
	for k := range set.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Shape, 0, len(keys))
	for _, k := range keys {
		out = append(out, set.members[k])
	}

	return out
}

// Sizes returns the ring-size histogram: edge count → number of shapes.
func (set *Set) Sizes() map[int]int {
	hist := make(map[int]int, len(set.members))
	for _, s := range set.members {
		hist[s.Len()]++
	}

	return hist
}
