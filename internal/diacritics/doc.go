// Package diacritics implements the nodiacritics curation task, which
// replaces word-processor punctuation in item titles with plain ASCII.
package diacritics
