// Package vocab loads the controlled vocabulary used to tag items from the
// names of their files.
//
// A vocabulary source holds one entry per line: a raw key followed by
// candidate tags, separated by commas. Keys pass through Normalize, the same
// function applied to file names, so "0042d-a.jpg" in the table and
// "0042c-b.jpg" on disk meet at "0042". Stopwords are matched without regard
// to case and never become tags. Sources ending in .html or .htm are read as
// an HTML table with one entry per row.
//
// Load failures carry stack traces (github.com/cockroachdb/errors) and are
// marked services.ErrConfiguration.
package vocab
