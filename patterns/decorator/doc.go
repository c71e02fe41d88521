// Package decorator demonstrates the Decorator pattern.
//
// Toppings wrap exactly one inner Pizza and add to its cost. Any wrapper is
// itself a Pizza, so chains nest to any depth and always end at a base pizza.
package decorator
