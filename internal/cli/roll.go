package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRollCmd() *cobra.Command {
	var sides, count int

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll a die on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]int{"sides": sides, "count": count}

			var result RollResult
			if err := client.Post("/api/v1/dice/roll", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&sides, "sides", 6, "Number of sides on the die")
	cmd.Flags().IntVar(&count, "count", 1, "Number of rolls")

	return cmd
}

func newRollsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rolls",
		Short: "Show recent rolls, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RollList
			if err := client.Get(fmt.Sprintf("/api/v1/dice/rolls?limit=%d", limit), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of rolls to show")

	return cmd
}
