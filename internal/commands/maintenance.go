package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newBackfillEffortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill-effort",
		Short: "Give completed sessions without an effort score a made-up one (4-6)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filled, err := c.app.Store.BackfillEffortScores(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backfilled %d sessions\n", filled)
			return nil
		},
	}
}
