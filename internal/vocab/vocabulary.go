package vocab

import "sort"

// Vocabulary maps normalized keys to their tags.
type Vocabulary struct {
	entries map[string]TagSet
}

// Load reads path and builds a vocabulary, filtering tags through stop.
func Load(path string, stop Stopwords) (*Vocabulary, error) {
	records, err := readSource("vocabulary", path)
	if err != nil {
		return nil, err
	}
	return build(records, stop), nil
}

// New returns an empty vocabulary.
func New() *Vocabulary {
	return &Vocabulary{entries: make(map[string]TagSet)}
}

func build(records []record, stop Stopwords) *Vocabulary {
	v := New()
	for _, rec := range records {
		v.AddEntry(rec, stop)
	}
	return v
}

// AddEntry adds one source line: fields[0] is the raw key and the rest are
// candidate tags. Empty fields and stopwords are dropped; tags keep their
// case. A line left with no tags adds nothing.
func (v *Vocabulary) AddEntry(fields []string, stop Stopwords) {
	if len(fields) == 0 {
		return
	}
	key := Normalize(fields[0])
	tags := make(TagSet)
	for _, field := range fields[1:] {
		if field == "" || stop.Contains(field) {
			continue
		}
		tags.Add(field)
	}
	v.Merge(key, tags)
}

// Merge unions tags into key. Empty sets are ignored.
func (v *Vocabulary) Merge(key string, tags TagSet) {
	if len(tags) == 0 {
		return
	}
	if existing, ok := v.entries[key]; ok {
		tags = existing.Union(tags)
	} else {
		tags = NewTagSet().Union(tags)
	}
	v.entries[key] = tags
}

// Lookup returns the tags for an already normalized key.
func (v *Vocabulary) Lookup(key string) (TagSet, bool) {
	tags, ok := v.entries[key]
	return tags, ok
}

// Len returns the number of keys.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Keys returns every key in lexical order.
func (v *Vocabulary) Keys() []string {
	keys := make([]string, 0, len(v.entries))
	for key := range v.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
