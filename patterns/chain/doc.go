// Package chain demonstrates the Chain of Responsibility pattern.
//
// A request (a customer's order) passes along a chain of departments; each
// handles its own step and forwards to the next. New departments are added
// by linking, without touching existing handlers.
package chain
