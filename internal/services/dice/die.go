// Package dice rolls dice backed by any random.Generator.
package dice

import (
	"github.com/mcoot/protocols-go/internal/dependencies/random"
	"github.com/mcoot/protocols-go/internal/model"
)

// Die is an N-sided die. It does not own its generator; the same
// generator may back many dice.
type Die struct {
	sides     int
	generator random.Generator
}

// New creates a die with the given number of sides.
// Returns model.ErrInvalidSides if sides <= 0.
func New(sides int, generator random.Generator) (*Die, error) {
	if sides <= 0 {
		return nil, model.ErrInvalidSides
	}
	if generator == nil {
		return nil, model.ErrNilGenerator
	}
	return &Die{
		sides:     sides,
		generator: generator,
	}, nil
}

// Sides returns the number of faces
func (d *Die) Sides() int {
	return d.sides
}

// Roll maps one generator draw onto a face in [1, sides].
//
// The draw is taken modulo sides before adding one, so for a generator in
// [1, 10] the result is only uniform when sides divides 10. A d6 maps
// draws 1..10 to 2,3,4,5,6,1,2,3,4,5.
func (d *Die) Roll() int {
	return d.generator.Random()%d.sides + 1
}
