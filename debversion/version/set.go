package version

import "sort"

// Sort orders versions ascending, in place, by Compare.
func Sort(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})
}

// Set is a collection of versions deduplicated by their canonical rendering.
// Versions that compare equal but render differently (such as "1.0" and
// "0:1.0") are kept as distinct members.
type Set struct {
	versions map[string]Version
}

// NewSet returns a Set holding the given versions.
func NewSet(versions ...Version) *Set {
	s := &Set{versions: make(map[string]Version)}
	s.Add(versions...)
	return s
}

// Add inserts versions into the set.
func (s *Set) Add(versions ...Version) {
	if s.versions == nil {
		s.versions = make(map[string]Version)
	}
	for _, v := range versions {
		s.versions[v.String()] = v
	}
}

// Remove deletes versions from the set.
func (s *Set) Remove(versions ...Version) {
	for _, v := range versions {
		delete(s.versions, v.String())
	}
}

// Contains reports whether every given version is a member of the set.
func (s *Set) Contains(versions ...Version) bool {
	for _, v := range versions {
		if _, ok := s.versions[v.String()]; !ok {
			return false
		}
	}
	return true
}

// Values returns the members in ascending order.
func (s *Set) Values() []Version {
	if len(s.versions) == 0 {
		return nil
	}
	out := make([]Version, 0, len(s.versions))
	for _, v := range s.versions {
		out = append(out, v)
	}
	Sort(out)
	return out
}

// Size returns the number of members.
func (s *Set) Size() int {
	return len(s.versions)
}

// Clear removes all members.
func (s *Set) Clear() {
	s.versions = make(map[string]Version)
}
