// Package composite demonstrates the Composite pattern.
//
// Files and folders share the Component interface, so a folder tree is
// searched the same way as a single file.
package composite
