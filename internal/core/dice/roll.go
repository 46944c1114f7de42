// Package dice provides seeded dice rolling for engine drivers. The
// engine core never generates randomness; callers roll here and pass the
// value in.
package dice

import (
	"errors"
	"math/rand"
)

var (
	// ErrInvalidSides indicates a die with fewer than one side.
	ErrInvalidSides = errors.New("die must have at least one side")
)

// Pair is the result of rolling two dice of the same kind.
type Pair struct {
	A int
	B int
}

// Total returns the combined value of both dice.
func (p Pair) Total() int {
	return p.A + p.B
}

// IsDouble reports whether both dice landed on the same value.
func (p Pair) IsDouble() bool {
	return p.A == p.B
}

// Roller rolls dice from a seeded source.
//
// A Roller is deterministic with respect to its seed: the same seed and
// the same call sequence always produce the same values.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller seeded with the given value.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// RollPair rolls two dice with the given number of sides.
func (r *Roller) RollPair(sides int) (Pair, error) {
	if sides <= 0 {
		return Pair{}, ErrInvalidSides
	}
	return Pair{
		A: r.rng.Intn(sides) + 1,
		B: r.rng.Intn(sides) + 1,
	}, nil
}
