// Package tagging implements the loadtags curation task: files in an item's
// ORIGINAL bundle are reduced to vocabulary keys, and the tags of every
// matched key are appended to the configured metadata field.
package tagging
