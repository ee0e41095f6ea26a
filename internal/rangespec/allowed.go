package rangespec

import (
	"sort"
	"strings"
)

// AllowedSet is the set of top-level directory names produced by expanding
// one range spec. It is built once per invocation and read-only afterwards.
type AllowedSet map[string]struct{}

// NewAllowedSet expands spec and collects the resulting names.
func NewAllowedSet(spec string) (AllowedSet, error) {
	names, err := Expand(spec)
	if err != nil {
		return nil, err
	}
	set := make(AllowedSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set, nil
}

// Contains reports whether name is in the set.
func (s AllowedSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// String renders the members sorted, for log lines.
func (s AllowedSet) String() string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
