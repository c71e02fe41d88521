// Package command demonstrates the Command pattern.
//
// Each action on a TV is wrapped in a Command value; the remote control only
// knows how to execute whatever command sits in a slot.
package command
