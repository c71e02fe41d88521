// Package factory demonstrates the Factory pattern.
//
// A factory maps a discriminator to one concrete implementation of a shared
// interface. Unknown discriminators yield no value rather than an error.
package factory
