// Package config provides configuration structures and utilities for
// ao3list. It defines the run configuration assembled from CLI flags, the
// fixed category-name lookup table, and the optional YAML override file.
package config
