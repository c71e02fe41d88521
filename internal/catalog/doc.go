// Package catalog keeps the named set of runnable pattern demos.
//
// A Registry maps a demo name to its metadata and driver. It is filled once
// at start-up (see Builtin) and read afterwards; it is not safe for concurrent
// registration.
//
// Error paths build messages with strconv.Quote instead of fmt.Errorf so typed
// errors stay cheap to construct and easy to assert with errors.As.
package catalog
