package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/protocols-go/internal/dependencies/random"
	"github.com/mcoot/protocols-go/internal/services/demo"
)

func newDemoCmd() *cobra.Command {
	script := demo.DefaultScript()
	var seed uint64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through names, equality and dice locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var gen random.Generator
			if seed != 0 {
				gen = random.NewOneThroughTen(seed)
			} else {
				g, err := random.NewOneThroughTenFromEntropy()
				if err != nil {
					return err
				}
				gen = g
			}

			if err := demo.Run(cmd.OutOrStdout(), script, gen); err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&script.People, "person", script.People, "People to name")
	cmd.Flags().StringVar(&script.Ships[0].Name, "ship-a", script.Ships[0].Name, "First starship name")
	cmd.Flags().StringVar(&script.Ships[0].Prefix, "ship-a-prefix", script.Ships[0].Prefix, "First starship prefix")
	cmd.Flags().StringVar(&script.Ships[1].Name, "ship-b", script.Ships[1].Name, "Second starship name")
	cmd.Flags().StringVar(&script.Ships[1].Prefix, "ship-b-prefix", script.Ships[1].Prefix, "Second starship prefix")
	cmd.Flags().IntVar(&script.Sides, "sides", script.Sides, "Number of sides on the die")
	cmd.Flags().IntVar(&script.Rolls, "rolls", script.Rolls, "Number of dice rolls")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Generator seed (0 seeds from crypto/rand)")

	return cmd
}
