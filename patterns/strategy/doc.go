// Package strategy demonstrates the Strategy pattern.
//
// A Vehicle holds one interchangeable DriveStrategy and delegates Drive to it.
// Vehicles that share driving logic share a strategy variant instead of
// duplicating the method in each vehicle type.
package strategy
