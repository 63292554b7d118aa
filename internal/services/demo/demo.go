// Package demo walks through the naming and random number capabilities
// and prints what each step produces.
package demo

import (
	"fmt"
	"io"

	"github.com/mcoot/protocols-go/internal/dependencies/random"
	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/services/dice"
)

// ShipSpec names a starship for the walkthrough
type ShipSpec struct {
	Name   string
	Prefix string
}

// Script holds the inputs for a walkthrough
type Script struct {
	People []string
	Ships  [2]ShipSpec
	Sides  int
	Rolls  int
}

// DefaultScript returns the stock walkthrough
func DefaultScript() Script {
	return Script{
		People: []string{"Johnny Hicks"},
		Ships: [2]ShipSpec{
			{Name: "Enterprise", Prefix: "USS"},
			{Name: "Serenity"},
		},
		Sides: 6,
		Rolls: 5,
	}
}

// Run writes the walkthrough to w, drawing all randomness from gen
func Run(w io.Writer, script Script, gen random.Generator) error {
	die, err := dice.New(script.Sides, gen)
	if err != nil {
		return err
	}

	var named []model.Named
	for _, p := range script.People {
		named = append(named, model.NewPerson(p))
	}
	first := model.NewStarship(script.Ships[0].Name, script.Ships[0].Prefix)
	second := model.NewStarship(script.Ships[1].Name, script.Ships[1].Prefix)
	named = append(named, first, second)

	p := &printer{w: w}
	for _, n := range named {
		p.printf("%s\n", n.FullName())
	}

	p.printf("Random number: %d\n", gen.Random())

	if first.Equal(second) {
		p.printf("Same Starship!\n")
	}

	for i := 0; i < script.Rolls; i++ {
		p.printf("Random dice roll is %d\n", die.Roll())
	}

	return p.err
}

// printer keeps the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
