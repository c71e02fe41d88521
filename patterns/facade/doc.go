// Package facade demonstrates the Facade pattern.
//
// Operation hides the order, payment and delivery subsystems behind one call.
package facade
