package pip

import "sort"

// PackageSet is a set of normalized package identifiers, either bare names
// or "name==version" specifiers. Insertion order is irrelevant.
type PackageSet map[string]struct{}

// Add inserts a specifier, ignoring empty strings.
func (s PackageSet) Add(spec string) {
	if spec != "" {
		s[spec] = struct{}{}
	}
}

// Has reports whether the exact specifier is present.
func (s PackageSet) Has(spec string) bool {
	_, ok := s[spec]
	return ok
}

// Sorted returns the specifiers in lexical order.
func (s PackageSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for spec := range s {
		out = append(out, spec)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether two sets hold the same specifiers.
func (s PackageSet) Equal(other PackageSet) bool {
	if len(s) != len(other) {
		return false
	}
	for spec := range s {
		if !other.Has(spec) {
			return false
		}
	}
	return true
}
