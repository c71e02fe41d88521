// Package prototype demonstrates the Prototype pattern.
//
// Types that can be copied share a Clone method, so callers duplicate values
// without knowing how they are built.
package prototype
