package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newStarshipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "starship",
		Aliases: []string{"ship"},
		Short:   "Manage the starship registry",
	}

	cmd.AddCommand(newStarshipCreateCmd())
	cmd.AddCommand(newStarshipGetCmd())
	cmd.AddCommand(newStarshipListCmd())
	cmd.AddCommand(newStarshipCompareCmd())

	return cmd
}

func newStarshipCreateCmd() *cobra.Command {
	var name, prefix string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a starship",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"name": name, "prefix": prefix}

			var result Starship
			if err := client.Post("/api/v1/starships", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Starship name (required)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Optional prefix, e.g. USS")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStarshipGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a registered starship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Starship
			if err := client.Get("/api/v1/starships/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newStarshipListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered starships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StarshipList
			if err := client.Get("/api/v1/starships", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newStarshipCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <left-id> <right-id>",
		Short: "Check whether two starships share a full name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"left_id": args[0], "right_id": args[1]}

			var result Comparison
			if err := client.Post("/api/v1/starships/compare", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
