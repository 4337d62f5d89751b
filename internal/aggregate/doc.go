// Package aggregate merges fandom lists scraped from multiple category
// index pages into a single result set.
//
// The merge deduplicates by full structural equality (name, count, and
// URL), the filter drops entries below a minimum work count, and the sort
// orders by work count descending while keeping ties in their original
// relative order.
package aggregate
