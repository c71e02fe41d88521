// Package flyweight demonstrates the Flyweight pattern.
//
// Books of the same type share one BookType value handed out by a caching
// factory, instead of each book carrying its own copy.
package flyweight
