package commands

import (
	"fmt"
	"time"

	"github.com/jasonschulke/mooove/internal/workouts"

	"github.com/spf13/cobra"
)

func (c *CLI) newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"s"},
		Short:   "Run a workout session and manage past sessions",
	}
	cmd.AddCommand(
		c.newSessionStartCmd(),
		c.newSessionLogCmd(),
		c.newSessionFinishCmd(),
		c.newSessionDiscardCmd(),
		c.newSessionCurrentCmd(),
		c.newSessionListCmd(),
		c.newSessionEditCmd(),
		c.newSessionRemoveCmd(),
	)
	return cmd
}

func (c *CLI) newSessionStartCmd() *cobra.Command {
	var workoutID, name string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a session, optionally from a saved workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var blocks []workouts.Block
			if workoutID != "" {
				w, err := c.app.Store.GetSavedWorkoutByID(ctx, workoutID)
				if err != nil {
					return err
				}
				blocks = w.Blocks
				if name == "" {
					name = w.Name
				}
			}

			session, err := c.app.Store.StartSession(ctx, name, blocks)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, session)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s at %s\n", session.Name, session.StartedAt.Local().Format("15:04"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&workoutID, "workout", "w", "", "saved workout id")
	cmd.Flags().StringVar(&name, "name", "", "session name")
	return cmd
}

func (c *CLI) newSessionLogCmd() *cobra.Command {
	var (
		weight   float64
		reps     string
		duration int
		effort   int
	)
	cmd := &cobra.Command{
		Use:   "log <exercise-id>",
		Short: "Log a completed exercise in the current session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := workouts.ExerciseLog{ExerciseID: args[0]}
			if cmd.Flags().Changed("weight") {
				entry.Weight = &weight
			}
			if cmd.Flags().Changed("duration") {
				entry.Duration = &duration
			}
			if cmd.Flags().Changed("effort") {
				entry.Effort = &effort
			}
			if reps != "" {
				r, err := workouts.ParseReps(reps)
				if err != nil {
					return err
				}
				entry.Reps = &r
			}

			session, err := c.app.Store.LogExercise(cmd.Context(), entry)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, session)
			}
			logged := session.Exercises[len(session.Exercises)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %s (%d so far)\n", args[0], formatLog(logged), len(session.Exercises))
			return nil
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in lb")
	cmd.Flags().StringVar(&reps, "reps", "", "reps, a number or AMRAP")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in seconds")
	cmd.Flags().IntVar(&effort, "effort", 0, "effort 1-10")
	return cmd
}

func (c *CLI) newSessionFinishCmd() *cobra.Command {
	var effort int
	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Complete the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var overall *int
			if cmd.Flags().Changed("effort") {
				overall = &effort
			}
			session, err := c.app.Store.FinishSession(cmd.Context(), overall)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, session)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Finished %s: %d exercises in %s\n",
				session.Name, len(session.Exercises), formatDuration(*session.TotalDuration))
			return nil
		},
	}
	cmd.Flags().IntVar(&effort, "effort", 0, "overall effort 1-10")
	return cmd
}

func (c *CLI) newSessionDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Drop the current session without saving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Store.ClearCurrentSession(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Current session discarded")
			return nil
		},
	}
}

func (c *CLI) newSessionCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the session in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := c.app.Store.LoadCurrentSession(cmd.Context())
			if c.jsonOutput {
				return c.printJSON(cmd, current)
			}
			out := cmd.OutOrStdout()
			if current == nil {
				fmt.Fprintln(out, "No session in progress")
				return nil
			}
			elapsed := time.Since(current.StartedAt).Round(time.Second)
			fmt.Fprintf(out, "%s, started %s ago\n", current.Name, elapsed)
			for _, l := range current.Exercises {
				fmt.Fprintf(out, "  %-28s %s\n", l.ExerciseID, formatLog(l))
			}
			return nil
		},
	}
}

func (c *CLI) newSessionListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List past sessions, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions := c.app.Store.LoadSessions(cmd.Context())
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[:limit]
			}
			if c.jsonOutput {
				return c.printJSON(cmd, sessions)
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions yet")
				return nil
			}
			for _, s := range sessions {
				duration := "-"
				if s.TotalDuration != nil {
					duration = formatDuration(*s.TotalDuration)
				}
				effort := "-"
				if s.OverallEffort != nil {
					effort = fmt.Sprintf("%d", *s.OverallEffort)
				}
				fmt.Fprintf(out, "%-40s %s  %-24s %3d ex  %-8s effort %s\n",
					s.ID, s.StartedAt.Local().Format("2006-01-02"), s.Name, len(s.Exercises), duration, effort)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "max sessions, 0 for all")
	return cmd
}

func (c *CLI) newSessionRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <session-id>",
		Short: "Delete a past session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Store.DeleteSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func (c *CLI) newSessionEditCmd() *cobra.Command {
	var (
		name, cardioType string
		effort           int
		distance         float64
	)
	cmd := &cobra.Command{
		Use:   "edit <session-id>",
		Short: "Change the name, effort or cardio details of a past session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch workouts.SessionPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("effort") {
				if effort < 1 || effort > 10 {
					return fmt.Errorf("effort must be between 1 and 10, got %d", effort)
				}
				patch.OverallEffort = &effort
			}
			if cmd.Flags().Changed("cardio") {
				patch.CardioType = &cardioType
			}
			if cmd.Flags().Changed("distance") {
				patch.Distance = &distance
			}

			updated, err := c.app.Store.UpdateSession(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", updated.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "session name")
	cmd.Flags().IntVar(&effort, "effort", 0, "overall effort 1-10")
	cmd.Flags().StringVar(&cardioType, "cardio", "", "cardio type, e.g. run or row")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance covered")
	return cmd
}
