package vocab

import "sort"

// TagSet is an unordered set of tags.
type TagSet map[string]struct{}

// NewTagSet builds a set from tags.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// Add inserts tag.
func (s TagSet) Add(tag string) {
	s[tag] = struct{}{}
}

// Contains reports whether tag is present.
func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Union returns a new set holding the tags of s and other.
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for tag := range s {
		out[tag] = struct{}{}
	}
	for tag := range other {
		out[tag] = struct{}{}
	}
	return out
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
