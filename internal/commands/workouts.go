package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jasonschulke/mooove/internal/builder"
	"github.com/jasonschulke/mooove/internal/exercises"
	"github.com/jasonschulke/mooove/internal/workouts"

	"github.com/spf13/cobra"
)

// blockSpec is the parsed form of a --block flag:
//
//	type[:name]=ex1,ex2/ex3[*repeat]
//
// Sets are separated by "/", exercises inside a set by ",". A trailing *N
// copies the last set until the block has N sets.
type blockSpec struct {
	Type   workouts.BlockType
	Name   string
	Sets   [][]string
	Repeat int
}

func parseBlockSpec(raw string) (blockSpec, error) {
	head, body, ok := strings.Cut(raw, "=")
	if !ok {
		return blockSpec{}, fmt.Errorf("block %q: expected type=exercises", raw)
	}

	var spec blockSpec
	typeName, name, _ := strings.Cut(head, ":")
	spec.Type = workouts.BlockType(strings.ToLower(strings.TrimSpace(typeName)))
	if !spec.Type.Valid() {
		return blockSpec{}, fmt.Errorf("block %q: %w: %s", raw, builder.ErrUnknownBlock, typeName)
	}
	spec.Name = strings.TrimSpace(name)

	if idx := strings.LastIndex(body, "*"); idx >= 0 {
		n, err := strconv.Atoi(strings.TrimSpace(body[idx+1:]))
		if err != nil || n < 1 {
			return blockSpec{}, fmt.Errorf("block %q: invalid repeat count", raw)
		}
		spec.Repeat = n
		body = body[:idx]
	}

	for _, rawSet := range strings.Split(body, "/") {
		var ids []string
		for _, id := range strings.Split(rawSet, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			spec.Sets = append(spec.Sets, ids)
		}
	}
	if len(spec.Sets) == 0 {
		return blockSpec{}, fmt.Errorf("block %q: no exercises", raw)
	}
	return spec, nil
}

// apply adds the block to b. Unknown exercise ids are rejected.
func (spec blockSpec) apply(b *builder.Builder, catalog *exercises.Catalog) error {
	i, err := b.AddBlock(spec.Type)
	if err != nil {
		return err
	}
	if spec.Name != "" {
		if err := b.RenameBlock(i, spec.Name); err != nil {
			return err
		}
	}

	draft, err := b.Block(i)
	if err != nil {
		return err
	}
	for draft.SetCount() > 1 {
		if err := b.RemoveSet(i); err != nil {
			return err
		}
	}

	for n, ids := range spec.Sets {
		set := n + 1
		if set > draft.SetCount() {
			if err := b.AddSet(i); err != nil {
				return err
			}
		}
		for _, id := range ids {
			if _, ok := catalog.Get(id); !ok {
				return fmt.Errorf("unknown exercise %q", id)
			}
			if _, err := b.AddExercise(i, set, id); err != nil {
				return err
			}
		}
	}

	for set := len(spec.Sets); set < spec.Repeat; set++ {
		if err := b.AddSet(i); err != nil {
			return err
		}
		for pos := range draft.Set(set) {
			if err := b.CopyToNextSet(i, set, pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *CLI) newWorkoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workouts",
		Aliases: []string{"wo"},
		Short:   "Manage saved workouts",
	}
	cmd.AddCommand(
		c.newWorkoutsListCmd(),
		c.newWorkoutsShowCmd(),
		c.newWorkoutsBuildCmd(),
		c.newWorkoutsRemoveCmd(),
	)
	return cmd
}

func (c *CLI) newWorkoutsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List saved workouts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved := c.app.Store.LoadSavedWorkouts(cmd.Context())
			if c.jsonOutput {
				return c.printJSON(cmd, saved)
			}

			out := cmd.OutOrStdout()
			if len(saved) == 0 {
				fmt.Fprintln(out, "No saved workouts. Use 'mooove workouts build' to create one.")
				return nil
			}
			for _, w := range saved {
				est := "-"
				if w.EstimatedMinutes != nil {
					est = fmt.Sprintf("%d min", *w.EstimatedMinutes)
				}
				fmt.Fprintf(out, "%-40s %-28s %2d blocks  %s\n", w.ID, w.Name, len(w.Blocks), est)
			}
			return nil
		},
	}
}

func (c *CLI) newWorkoutsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <workout-id>",
		Short: "Show the blocks and sets of a saved workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.app.Store.GetSavedWorkoutByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, w)
			}

			catalog := c.app.Store.Catalog(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", w.Name)
			for _, block := range w.Blocks {
				fmt.Fprintf(out, "  [%s] %s\n", block.Type, block.Name)
				for _, group := range workouts.GroupBySet(block) {
					fmt.Fprintf(out, "    set %d\n", group.Number)
					for _, ex := range group.Exercises {
						fmt.Fprintf(out, "      %-30s %s\n", catalog.Name(ex.ExerciseID), formatPlanned(ex))
					}
				}
			}
			return nil
		},
	}
}

func (c *CLI) newWorkoutsBuildCmd() *cobra.Command {
	var (
		name     string
		editID   string
		estimate int
		blocks   []string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Create or edit a saved workout from block specs",
		Long: `Builds a workout from one or more --block flags of the form

  type[:name]=ex1,ex2/ex3,ex4[*N]

Sets are separated by "/", exercises by ",". *N repeats the last set until
the block has N sets. Example:

  mooove workouts build --name "Legs" \
    --block "warmup=jumping-jacks" \
    --block "strength:Main=goblet-squat,kb-swing*3"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			specs := make([]blockSpec, 0, len(blocks))
			for _, raw := range blocks {
				spec, err := parseBlockSpec(raw)
				if err != nil {
					return err
				}
				specs = append(specs, spec)
			}

			b := builder.New()
			if editID != "" {
				existing, err := c.app.Store.GetSavedWorkoutByID(ctx, editID)
				if err != nil {
					return err
				}
				b = builder.FromSavedWorkout(*existing)
				if name == "" {
					name = existing.Name
				}
				if len(specs) > 0 {
					for len(b.Blocks()) > 0 {
						if err := b.RemoveBlock(0); err != nil {
							return err
						}
					}
				}
			}

			catalog := c.app.Store.Catalog(ctx)
			for _, spec := range specs {
				if err := spec.apply(b, catalog); err != nil {
					return err
				}
			}

			var est *int
			if cmd.Flags().Changed("minutes") {
				est = &estimate
			}
			saved, err := b.Save(ctx, c.app.Store, name, est, catalog, c.app.Store.LoadEquipmentConfig(ctx))
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return c.printJSON(cmd, saved)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", saved.Name, saved.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "workout name")
	cmd.Flags().StringVar(&editID, "edit", "", "id of a saved workout to edit")
	cmd.Flags().IntVar(&estimate, "minutes", 0, "estimated duration in minutes")
	cmd.Flags().StringArrayVar(&blocks, "block", nil, "block spec, repeatable")
	return cmd
}

func (c *CLI) newWorkoutsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <workout-id>",
		Short: "Delete a saved workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Store.DeleteSavedWorkout(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func formatPlanned(ex workouts.WorkoutExercise) string {
	return formatLog(workouts.ExerciseLog{
		Weight:   ex.Weight,
		Reps:     ex.Reps,
		Duration: ex.Duration,
	})
}
