// Package gopatterns is a catalogue of small, explicit design pattern demos for Go.
//
// Every pattern lives in its own package under patterns/ and is deliberately tiny:
//
//   - creational: factory, abstractfactory, builder, singleton, prototype
//   - structural: decorator, adapter, composite, facade, flyweight, proxy
//   - behavioral: strategy, observer, chain, command, iterator
//
// Each package exposes its capability interfaces, a closed set of variants, and a
// Demo(w io.Writer) error driver that writes a fixed transcript. Demos never share
// state and never touch anything but the writer they are given.
//
// Inheritance chains from classic OO write-ups are expressed as interfaces plus
// composition: a type "is-a" capability by implementing it, and "has-a" by holding it.
//
// Package gopatterns See subpackages:
//   - patterns/*: the demos themselves
//   - internal/catalog: the named registry of demos
//   - cmd/patterns: CLI to list and run demos
package gopatterns
