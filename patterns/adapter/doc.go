// Package adapter demonstrates the Adapter pattern.
//
// An adapter wraps a type with an incompatible API and exposes the interface
// the caller expects, without touching the wrapped type.
package adapter
