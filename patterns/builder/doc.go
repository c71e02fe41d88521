// Package builder demonstrates the Builder pattern.
//
// ClusterBuilder replaces a family of constructors with variable argument
// lists: required fields go to NewClusterBuilder, optional ones are set by
// chained methods, and Build validates the result.
package builder
