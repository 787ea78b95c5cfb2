// Package rng provides the core randomness abstraction for the Mega Millions
// lottery simulator.
package rng

// Source is the randomness provider for draws and tickets.
//
// Implementations back a statistical simulation; they are not required to be
// cryptographically secure.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
