// Command curate runs curation tasks against a repository store.
//
//	curate import manifest.yaml
//	curate run loadtags 10683/1
//	curate run nodiacritics 10683/42 --table
//
// The task report is printed to stdout; logs go to stderr and to curate.log
// in the configured log directory. A run whose final status is ERROR exits
// non-zero.
package main
