package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/jasonschulke/mooove/internal/stats"
	"github.com/jasonschulke/mooove/internal/workouts"

	"github.com/spf13/cobra"
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show workout totals and streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := c.app.Analyzer.WorkoutStats(cmd.Context())
			if c.jsonOutput {
				return c.printJSON(cmd, st)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total workouts:  %d\n", st.TotalWorkouts)
			fmt.Fprintf(out, "Last 7 days:     %d\n", st.ThisWeek)
			fmt.Fprintf(out, "Last month:      %d\n", st.ThisMonth)
			fmt.Fprintf(out, "Avg duration:    %s\n", formatDuration(st.AvgDuration))
			fmt.Fprintf(out, "Current streak:  %d days\n", st.CurrentStreak)
			fmt.Fprintf(out, "Longest streak:  %d days\n", st.LongestStreak)
			fmt.Fprintln(out, "By weekday:")
			for i, count := range st.DayOfWeek {
				fmt.Fprintf(out, "  %s %3d %s\n", weekdayNames[i], count, strings.Repeat("#", count))
			}
			return nil
		},
	}
}

func (c *CLI) newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <exercise-id>",
		Short: "Show logged entries for one exercise, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := c.app.Analyzer.ExerciseHistory(cmd.Context(), args[0], limit)
			if c.jsonOutput {
				return c.printJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No history for %s\n", args[0])
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %-24s %s\n",
					e.StartedAt.Local().Format("2006-01-02 15:04"),
					e.SessionName,
					formatLog(e.Log),
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "max entries, 0 for all")
	return cmd
}

func (c *CLI) newAveragesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "averages <exercise-id>",
		Short: "Show last week's average weight and reps for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			avg := c.app.Analyzer.LastWeekAverages(cmd.Context(), args[0])
			if c.jsonOutput {
				return c.printJSON(cmd, avg)
			}
			if avg == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries for %s in the last 7 days\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d lb x %d reps\n", args[0], avg.AvgWeight, avg.AvgReps)
			return nil
		},
	}
}

func (c *CLI) newHeatmapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heatmap",
		Short: "Show workouts per day over the last year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			days := c.app.Analyzer.YearlyContributions(cmd.Context())
			if c.jsonOutput {
				return c.printJSON(cmd, days)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderHeatmap(days))
			return nil
		},
	}
}

func (c *CLI) newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "List the days trained since Sunday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dates := c.app.Analyzer.ThisWeekWorkoutDates(cmd.Context())
			if c.jsonOutput {
				return c.printJSON(cmd, dates)
			}
			if len(dates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts this week yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(dates, "\n"))
			return nil
		},
	}
}

// renderHeatmap lays the days out in weekday rows, one column per week.
func renderHeatmap(days []stats.DayCount) string {
	if len(days) == 0 {
		return ""
	}

	first, err := time.Parse(workouts.DateKeyLayout, days[0].Date)
	if err != nil {
		return ""
	}
	offset := int(first.Weekday())
	weeks := (offset + len(days) + 6) / 7

	var rows [7][]byte
	for i := range rows {
		rows[i] = []byte(strings.Repeat(" ", weeks))
	}
	for i, d := range days {
		cell := offset + i
		mark := byte('.')
		switch {
		case d.Count >= 2:
			mark = '#'
		case d.Count == 1:
			mark = '+'
		}
		rows[cell%7][cell/7] = mark
	}

	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString(weekdayNames[i])
		sb.WriteString(" ")
		sb.Write(row)
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatDuration(seconds int) string {
	return (time.Duration(seconds) * time.Second).String()
}

func formatLog(l workouts.ExerciseLog) string {
	var parts []string
	if l.Weight != nil {
		parts = append(parts, fmt.Sprintf("%g lb", *l.Weight))
	}
	if l.Reps != nil {
		parts = append(parts, l.Reps.String()+" reps")
	}
	if l.Duration != nil {
		parts = append(parts, formatDuration(*l.Duration))
	}
	if l.Effort != nil {
		parts = append(parts, fmt.Sprintf("effort %d", *l.Effort))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
