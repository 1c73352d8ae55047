package profile

import "strings"

// Tags is an open-vocabulary label set. Order is kept for display only;
// duplicates carry no meaning.
type Tags []string

// Set returns the distinct tags
func (t Tags) Set() map[string]struct{} {
	set := make(map[string]struct{}, len(t))
	for _, tag := range t {
		set[tag] = struct{}{}
	}
	return set
}

// Intersect returns the distinct tags present in both sets, in t's order
func (t Tags) Intersect(other Tags) Tags {
	theirs := other.Set()
	seen := make(map[string]struct{}, len(t))
	var common Tags
	for _, tag := range t {
		if _, ok := theirs[tag]; !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		common = append(common, tag)
	}
	return common
}

// UnionLen returns the number of distinct tags across both sets
func (t Tags) UnionLen(other Tags) int {
	set := t.Set()
	for _, tag := range other {
		set[tag] = struct{}{}
	}
	return len(set)
}

func (t Tags) String() string {
	return strings.Join(t, ", ")
}
