package diacritics

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var replacements = map[rune]rune{
	'‘': '\'',
	'’': '\'',
	'“': '"',
	'”': '"',
	'„': '"',
	'‹': '\\',
	'›': '\\',
	'˜': '~',
	'–': '-',
	'—': '-',
}

func mapPunctuation(r rune) rune {
	if repl, ok := replacements[r]; ok {
		return repl
	}
	return r
}

// Clean replaces curly quotes, single guillemets, the small tilde, and en and
// em dashes with their ASCII counterparts. Every other rune is kept.
func Clean(value string) string {
	out, _, err := transform.String(runes.Map(mapPunctuation), value)
	if err != nil {
		return value
	}
	return out
}
