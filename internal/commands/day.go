package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Inspect or mark past days as trained or rested",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status <yyyy-mm-dd>",
		Short: "Show what a day holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := c.app.Toggler.DayStatus(cmd.Context(), args[0])
			if c.jsonOutput {
				return c.printJSON(cmd, map[string]string{"date": args[0], "status": string(status)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], status)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <yyyy-mm-dd>",
		Short: "Cycle a day through none, workout and rest",
		Long: `Cycles a past day: none -> workout -> rest -> none. A "workout" mark adds a
placeholder session. Days with a logged workout are protected and never change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.app.Toggler.ToggleYearDayStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, map[string]string{"date": args[0], "status": string(status)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], status)
			return nil
		},
	})

	return cmd
}
