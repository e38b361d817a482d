package diacritics

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"café’s “best”", "café's \"best\""},
		{"‘quoted’", "'quoted'"},
		{"„low”", "\"low\""},
		{"‹a›", `\a\`},
		{"small˜tilde", "small~tilde"},
		{"1914–1918 — war", "1914-1918 - war"},
		{"plain | pipe", "plain | pipe"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Clean(tc.in); got != tc.want {
			t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
