// Package set provides a minimal set built on top of a map.
package set

// Set is an unordered collection of unique values.
type Set[T comparable] map[T]struct{}

// New returns a Set containing vals.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add adds v to the set. It reports whether v was newly added, as
// opposed to having already been present.
func (s Set[T]) Add(v T) bool {
	if s.Has(v) {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}
