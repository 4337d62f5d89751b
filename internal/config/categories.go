package config

import "sort"

// categories maps short category names to the archive-internal path
// segments used in category index URLs. The segments are pre-escaped
// exactly as the archive expects them, so they are substituted into the
// URL template verbatim.
//
// This table is read-only package data: constructed once, never mutated.
var categories = map[string]string{
	"anime":       "Anime%20*a*%20Manga",
	"books":       "Books%20*a*%20Literature",
	"cartoons":    "Cartoons%20*a*%20Comics%20*a*%20Graphic%20Novels",
	"celebrities": "Celebrities%20*a*%20Real People",
	"movies":      "Movies",
	"music":       "Music%20*a*%20Bands",
	"other":       "Other%20Media",
	"theater":     "Theater",
	"tv":          "TV%20Shows",
	"videogames":  "Video%20Games",
}

// CategoryNames returns every known short category name in sorted order.
func CategoryNames() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PathSegment returns the archive path segment for a short category name.
// The second return value is false for unknown names.
func PathSegment(name string) (string, bool) {
	segment, ok := categories[name]
	return segment, ok
}
