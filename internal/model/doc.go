// Package model defines the core data structures used throughout ao3list.
//
// This package contains the following main types:
//   - Fandom: One fandom entry (name, work count, canonical URL)
//   - Record: The serialization shape used by the structured output formats
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (scraper, aggregate, report) need to use
// these types, so centralizing them prevents import cycles.
package model
