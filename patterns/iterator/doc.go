// Package iterator demonstrates the Iterator pattern.
//
// Callers walk a Container through an Iterator cursor (or a range-over-func
// sequence) without seeing how items are stored.
package iterator
