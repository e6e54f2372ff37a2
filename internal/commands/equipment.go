package commands

import (
	"fmt"
	"strconv"

	"github.com/jasonschulke/mooove/internal/exercises"

	"github.com/spf13/cobra"
)

func (c *CLI) newEquipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Show or set the weights of your equipment",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List configured equipment weights",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.app.Store.LoadEquipmentConfig(cmd.Context())
			if c.jsonOutput {
				return c.printJSON(cmd, cfg)
			}
			for _, eq := range exercises.EquipmentTypes {
				if w, ok := cfg.WeightFor(eq); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %g lb\n", eq, w)
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <equipment> <weight-lb>",
		Short: "Set the weight used for an equipment type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[1])
			}
			eq := exercises.Equipment(args[0])
			if err := c.app.Store.SetEquipmentWeight(cmd.Context(), eq, weight); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %g lb\n", eq, weight)
			return nil
		},
	})

	return cmd
}
