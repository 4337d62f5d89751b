package model

// Fandom represents one fandom entry scraped from a category index page.
// It is an immutable value: created once during parsing and never mutated
// afterwards.
//
// Design decision: We use an explicit struct with named fields rather than
// positional data because:
//  1. The triple (Name, Count, URL) is the identity used for deduplication
//  2. Named fields make the JSON/YAML output shape obvious
//  3. Value semantics allow cheap copying and comparison
type Fandom struct {
	// Name is the display name of the fandom, trimmed of surrounding
	// whitespace.
	Name string `json:"name" yaml:"name"`

	// Count is the number of works tagged under this fandom. Parsed from
	// the parenthesized suffix of the index entry, e.g. "(1234)".
	Count int `json:"count" yaml:"count"`

	// URL is the absolute URL of the fandom page (base origin plus the
	// relative path from the index anchor).
	URL string `json:"url" yaml:"url"`
}

// Equal reports whether two fandoms are the same entry.
// All three fields must match: a fandom listed in two category groups with
// different work counts is deliberately treated as two distinct entries.
func (f Fandom) Equal(other Fandom) bool {
	return f.Name == other.Name && f.Count == other.Count && f.URL == other.URL
}

// Record is the serialization shape shared by the JSON, YAML, and Markdown
// output formats. Field order matters for readability: count first, then
// name, then URL.
type Record struct {
	Count int    `json:"count" yaml:"count"`
	Name  string `json:"name" yaml:"name"`
	URL   string `json:"url" yaml:"url"`
}

// ToRecords converts a fandom list into serializable records, preserving
// order. The result is never nil so an empty list serializes as [] rather
// than null.
func ToRecords(fandoms []Fandom) []Record {
	records := make([]Record, 0, len(fandoms))
	for _, f := range fandoms {
		records = append(records, Record{
			Count: f.Count,
			Name:  f.Name,
			URL:   f.URL,
		})
	}
	return records
}
