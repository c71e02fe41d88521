// Package abstractfactory demonstrates the Abstract Factory pattern.
//
// A GUIFactory produces a family of related widgets. Both products of one
// factory always belong to the same platform, so a Windows button is never
// paired with a Mac checkbox.
package abstractfactory
