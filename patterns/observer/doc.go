// Package observer demonstrates the Observer pattern.
//
// A stock subject keeps an ordered list of observers and notifies all of them
// when an out-of-stock product is restocked.
package observer
