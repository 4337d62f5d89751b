// Package report renders the final fandom list in the supported output
// formats: plain text, an aligned table, pretty and compact JSON, YAML,
// and Markdown.
//
// Every writer consumes the list exactly once, renders every record, and
// preserves the given order. Format selection happens through a single
// dispatch table (see NewWriter); unknown format names are rejected at
// the CLI boundary before any fetching begins.
package report
