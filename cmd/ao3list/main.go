// Package main provides the entry point for the ao3list CLI.
//
// ao3list scrapes the Archive of Our Own category index pages and produces
// a deduplicated, filterable, sortable list of fandoms with their work
// counts and canonical URLs.
//
// Usage:
//
//	ao3list fetch
//	ao3list fetch -c anime -c tv -m 100 -o table
//
// See --help for all available options.
package main

// main is the entry point for ao3list.
func main() {
	Execute()
}
