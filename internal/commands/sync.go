package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errSyncDisabled = errors.New("cloud sync is disabled, set sync_endpoint in the config")

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror local data to the sync server",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "push",
		Short: "Upload a snapshot of all synced data now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.app.Syncer == nil {
				return errSyncDisabled
			}
			// nothing left for the debounced push to do
			c.app.Scheduler.Cancel()
			if err := c.app.Syncer.Push(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Pushed")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "pull",
		Short: "Restore the remote snapshot, only when this device has no data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.app.Syncer == nil {
				return errSyncDisabled
			}
			if !c.app.Store.IsEmpty(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "Local data present, nothing restored")
				return nil
			}
			restored := c.app.Syncer.PullIfEmpty(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d documents\n", restored)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "device",
		Short: "Print this device's sync id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := c.app.Store.DeviceID(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	})

	return cmd
}
