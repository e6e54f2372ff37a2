package commands

import (
	"fmt"
	"strings"

	"github.com/jasonschulke/mooove/internal/store"

	"github.com/spf13/cobra"
)

func (c *CLI) newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Manage the stored coach conversation",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the stored conversation",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history := c.app.Store.LoadChatHistory(cmd.Context())
			if c.jsonOutput {
				return c.printJSON(cmd, history)
			}
			for _, msg := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n",
					msg.Timestamp.Local().Format("2006-01-02 15:04"), msg.Role, msg.Content)
			}
			return nil
		},
	})

	var role string
	add := &cobra.Command{
		Use:   "add <message>",
		Short: "Append a message to the conversation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := c.app.Store.AddChatMessage(cmd.Context(), store.ChatRole(role), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, msg)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s message\n", msg.Role)
			return nil
		},
	}
	add.Flags().StringVar(&role, "role", string(store.ChatRoleUser), "user or assistant")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Store.ClearChatHistory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Chat history cleared")
			return nil
		},
	})

	return cmd
}

func (c *CLI) newAPIKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage the coach API key stored on this device",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key>",
		Short: "Store an API key, encrypted for this device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Store.SaveAPIKey(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key saved")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Store.ClearAPIKey(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which API key is in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			userKey := c.app.Store.UserAPIKey(ctx)
			switch {
			case userKey != "":
				fmt.Fprintf(out, "using your key %s\n", maskKey(userKey))
			case c.app.Store.LoadAPIKey(ctx) != "":
				fmt.Fprintln(out, "using the built-in fallback key")
			default:
				fmt.Fprintln(out, "no API key configured")
			}
			return nil
		},
	})

	return cmd
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
