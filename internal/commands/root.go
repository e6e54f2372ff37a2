package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jasonschulke/mooove/internal/config"
	"github.com/jasonschulke/mooove/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

const skipAppAnnotation = "mooove/skip-app"

// AppFactory builds the App for the selected environment and config file.
type AppFactory func(ctx context.Context, env, configPath string) (*App, error)

// DefaultAppFactory loads the config, sets up logging and opens the app.
func DefaultAppFactory(ctx context.Context, env, configPath string) (*App, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN(),
		SentryServerName: "mooove-cli",
	})

	return NewApp(ctx, cfg)
}

type CLI struct {
	factory     AppFactory
	versionInfo string

	env        string
	configPath string
	jsonOutput bool

	app  *App
	root *cobra.Command
}

func New(factory AppFactory, versionInfo string) *CLI {
	c := &CLI{
		factory:     factory,
		versionInfo: versionInfo,
	}
	c.root = c.newRootCmd()
	return c
}

func (c *CLI) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mooove",
		Short: "A local-first workout tracker",
		Long: `mooove tracks workouts built from blocks of exercises, logs sessions
and shows streaks, averages and history. Data lives on this device and can be
mirrored to a sync server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsApp(cmd) || c.app != nil {
				return nil
			}
			app, err := c.factory(cmd.Context(), c.env, c.configPath)
			if err != nil {
				return err
			}
			c.app = app
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.env, "env", "development", "config environment section")
	root.PersistentFlags().StringVar(&c.configPath, "config", "./config.toml", "path to the config file")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "print JSON instead of text")

	root.AddCommand(
		c.newVersionCmd(),
		c.newStatsCmd(),
		c.newHistoryCmd(),
		c.newAveragesCmd(),
		c.newHeatmapCmd(),
		c.newWeekCmd(),
		c.newDayCmd(),
		c.newExercisesCmd(),
		c.newWorkoutsCmd(),
		c.newSessionCmd(),
		c.newEquipmentCmd(),
		c.newSyncCmd(),
		c.newChatCmd(),
		c.newAPIKeyCmd(),
		c.newBackfillEffortCmd(),
	)

	return root
}

// Execute runs the command line and always closes the app afterwards, so a
// pending sync is flushed even when the command failed.
func (c *CLI) Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c.root.SetArgs(args)
	c.root.SetOut(stdout)
	c.root.SetErr(stderr)

	err := c.root.ExecuteContext(ctx)
	if c.app != nil {
		err = multierr.Append(err, c.app.Close(ctx))
		c.app = nil
	}
	return err
}

func skipsApp(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		if _, ok := cmd.Annotations[skipAppAnnotation]; ok {
			return true
		}
		switch cmd.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAppAnnotation: ""},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.versionInfo)
		},
	}
}

func (c *CLI) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sentryDSN() string {
	return os.Getenv("MOOOVE_SENTRY_DSN")
}
