// Package singleton demonstrates the Singleton pattern.
//
// The instance is created on first use and shared by every caller afterwards.
// sync.Once makes the lazy creation safe for concurrent callers, and Created
// reports how many constructions happened without triggering one.
package singleton
