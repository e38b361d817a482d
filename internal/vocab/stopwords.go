package vocab

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stopwords is a read-only set of words excluded from tags. Words are
// lowercased on load and Contains lowercases the token, so matching is
// case-insensitive in both directions. DSpace's LoadTagsForBitstreams stores
// stopwords as written and lowercases only the token, so there a stopword
// containing capitals never matches; here it does.
type Stopwords struct {
	words map[string]struct{}
}

// LoadStopwords reads every non-empty field of every line of path.
func LoadStopwords(path string) (Stopwords, error) {
	records, err := readSource("stopword", path)
	if err != nil {
		return Stopwords{}, err
	}
	return buildStopwords(records), nil
}

// NewStopwords builds a set from words.
func NewStopwords(words ...string) Stopwords {
	return buildStopwords([]record{words})
}

func buildStopwords(records []record) Stopwords {
	lower := cases.Lower(language.Und)
	words := make(map[string]struct{})
	for _, rec := range records {
		for _, field := range rec {
			if field == "" {
				continue
			}
			words[lower.String(field)] = struct{}{}
		}
	}
	return Stopwords{words: words}
}

// Contains reports whether token, lowercased, is a stopword.
func (s Stopwords) Contains(token string) bool {
	if len(s.words) == 0 {
		return false
	}
	_, ok := s.words[cases.Lower(language.Und).String(token)]
	return ok
}

// Len returns the number of distinct stopwords.
func (s Stopwords) Len() int {
	return len(s.words)
}
