package commands

import (
	"errors"
	"fmt"

	"github.com/jasonschulke/mooove/internal/exercises"
	"github.com/jasonschulke/mooove/internal/store"
	"github.com/jasonschulke/mooove/internal/workouts"

	"github.com/spf13/cobra"
)

func (c *CLI) newExercisesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercises",
		Aliases: []string{"ex"},
		Short:   "Browse the exercise catalog and manage custom exercises",
	}
	cmd.AddCommand(
		c.newExercisesListCmd(),
		c.newExercisesAddCmd(),
		c.newExercisesRemoveCmd(),
		c.newExercisesAltCmd(),
	)
	return cmd
}

func (c *CLI) newExercisesListCmd() *cobra.Command {
	var area, blockType string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List exercises",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := c.app.Store.Catalog(cmd.Context())

			var list []exercises.Exercise
			switch {
			case area != "":
				if !exercises.Area(area).Valid() {
					return fmt.Errorf("unknown area %q", area)
				}
				list = catalog.ByArea(exercises.Area(area))
			case blockType != "":
				if !workouts.BlockType(blockType).Valid() {
					return fmt.Errorf("unknown block type %q", blockType)
				}
				list = catalog.ForBlockType(workouts.BlockType(blockType))
			default:
				list = catalog.All()
			}

			if c.jsonOutput {
				return c.printJSON(cmd, list)
			}
			printExercises(cmd, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&area, "area", "", "only exercises of this area")
	cmd.Flags().StringVar(&blockType, "block", "", "only exercises allowed in this block type")
	return cmd
}

func (c *CLI) newExercisesAltCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alt <exercise-id>",
		Short: "List alternatives for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := c.app.Store.Catalog(cmd.Context())
			if _, ok := catalog.Get(args[0]); !ok {
				return fmt.Errorf("unknown exercise %q", args[0])
			}
			alts := catalog.Alternatives(args[0])
			if c.jsonOutput {
				return c.printJSON(cmd, alts)
			}
			printExercises(cmd, alts)
			return nil
		},
	}
}

func (c *CLI) newExercisesAddCmd() *cobra.Command {
	var (
		name, area, equipment, reps, description string
		weight                                   float64
		duration                                 int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex := exercises.Exercise{
				Name:        name,
				Area:        exercises.Area(area),
				Equipment:   exercises.Equipment(equipment),
				Description: description,
			}
			if cmd.Flags().Changed("weight") {
				ex.DefaultWeight = &weight
			}
			if cmd.Flags().Changed("duration") {
				ex.DefaultDuration = &duration
			}
			if reps != "" {
				r, err := workouts.ParseReps(reps)
				if err != nil {
					return err
				}
				ex.DefaultReps = &r
			}

			added, err := c.app.Store.AddCustomExercise(cmd.Context(), ex)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, added)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", added.Name, added.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "exercise name")
	cmd.Flags().StringVar(&area, "area", "", "body area, e.g. squat, pull, core")
	cmd.Flags().StringVar(&equipment, "equipment", string(exercises.EquipmentBodyweight), "equipment type")
	cmd.Flags().Float64Var(&weight, "weight", 0, "default weight in lb")
	cmd.Flags().StringVar(&reps, "reps", "", "default reps, a number or AMRAP")
	cmd.Flags().IntVar(&duration, "duration", 0, "default duration in seconds")
	cmd.Flags().StringVar(&description, "description", "", "free text description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("area")
	return cmd
}

func (c *CLI) newExercisesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <exercise-id>",
		Short: "Delete a custom exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.Store.DeleteCustomExercise(cmd.Context(), args[0])
			if errors.Is(err, store.ErrBuiltInExercise) {
				return fmt.Errorf("%s is a built-in exercise and cannot be deleted", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func printExercises(cmd *cobra.Command, list []exercises.Exercise) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No exercises found")
		return
	}
	fmt.Fprintf(out, "%-28s %-32s %-13s %s\n", "ID", "NAME", "AREA", "EQUIPMENT")
	for _, ex := range list {
		fmt.Fprintf(out, "%-28s %-32s %-13s %s\n", ex.ID, ex.Name, ex.Area, ex.Equipment)
	}
}
