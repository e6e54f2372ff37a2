package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jasonschulke/mooove/internal/exercises"
	"github.com/jasonschulke/mooove/internal/telemetry/tracing"
	"github.com/jasonschulke/mooove/internal/workouts"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoExercises     = errors.New("workout has no exercises")
	ErrNameRequired    = errors.New("workout name is required")
	ErrInvalidPosition = errors.New("invalid position")
	ErrUnknownBlock    = errors.New("unknown block type")
)

// Override carries block-level values that win over catalog defaults.
type Override struct {
	Weight   *float64
	Reps     *workouts.Reps
	Duration *int
}

// BlockDraft is a block under construction. sets[n-1] holds the ordered
// exercise ids of set n, so set numbers are always 1..len(sets).
type BlockDraft struct {
	ID        string
	Type      workouts.BlockType
	Name      string
	sets      [][]string
	overrides map[string]Override
}

func (b *BlockDraft) SetCount() int {
	return len(b.sets)
}

// Set returns a copy of the exercise ids in set n (1-based).
func (b *BlockDraft) Set(n int) []string {
	if n < 1 || n > len(b.sets) {
		return nil
	}
	out := make([]string, len(b.sets[n-1]))
	copy(out, b.sets[n-1])
	return out
}

func (b *BlockDraft) ExerciseCount() int {
	count := 0
	for _, set := range b.sets {
		count += len(set)
	}
	return count
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=builder_test

type workoutSaver interface {
	AddSavedWorkout(ctx context.Context, name string, blocks []workouts.Block, estimatedMinutes *int) (*workouts.SavedWorkout, error)
	UpdateSavedWorkout(ctx context.Context, id string, patch workouts.SavedWorkoutPatch) (*workouts.SavedWorkout, error)
}

// Builder holds the mutable block/set state of a workout being composed or edited.
type Builder struct {
	blocks []*BlockDraft
	// id of the saved workout being edited, empty when composing a new one
	editingID string
	// ability to inject block id generation (for unit testing)
	NewBlockIDFunc func() string
}

func New() *Builder {
	return &Builder{
		NewBlockIDFunc: uuid.NewString,
	}
}

// FromSavedWorkout opens an existing saved workout in edit mode.
func FromSavedWorkout(w workouts.SavedWorkout) *Builder {
	b := FromBlocks(w.Blocks)
	b.editingID = w.ID
	return b
}

// FromBlocks rebuilds drafts from finalized blocks. Entries return to the set
// named by their tag, and weight, reps and duration stored on them become
// block-level overrides.
func FromBlocks(blocks []workouts.Block) *Builder {
	b := New()
	for _, block := range blocks {
		draft := &BlockDraft{
			ID:        block.ID,
			Type:      block.Type,
			Name:      block.Name,
			overrides: make(map[string]Override),
		}
		if draft.ID == "" {
			draft.ID = b.NewBlockIDFunc()
		}
		for _, group := range workouts.GroupBySet(block) {
			var ids []string
			for _, ex := range group.Exercises {
				if containsID(ids, ex.ExerciseID) {
					continue
				}
				ids = append(ids, ex.ExerciseID)
				if _, seen := draft.overrides[ex.ExerciseID]; !seen && (ex.Weight != nil || ex.Reps != nil || ex.Duration != nil) {
					draft.overrides[ex.ExerciseID] = Override{
						Weight:   ex.Weight,
						Reps:     ex.Reps,
						Duration: ex.Duration,
					}
				}
			}
			for len(draft.sets) < group.Number {
				draft.sets = append(draft.sets, nil)
			}
			draft.sets[group.Number-1] = ids
		}
		if len(draft.sets) == 0 {
			draft.sets = make([][]string, max(block.Type.DefaultSets(), 1))
		}
		b.blocks = append(b.blocks, draft)
	}
	return b
}

func (b *Builder) EditingID() string {
	return b.editingID
}

func (b *Builder) Blocks() []*BlockDraft {
	out := make([]*BlockDraft, len(b.blocks))
	copy(out, b.blocks)
	return out
}

func (b *Builder) Block(i int) (*BlockDraft, error) {
	if i < 0 || i >= len(b.blocks) {
		return nil, fmt.Errorf("block %d: %w", i, ErrInvalidPosition)
	}
	return b.blocks[i], nil
}

// AddBlock appends an empty block of the given type and returns its index.
func (b *Builder) AddBlock(blockType workouts.BlockType) (int, error) {
	if !blockType.Valid() {
		return -1, fmt.Errorf("%w: %s", ErrUnknownBlock, blockType)
	}
	b.blocks = append(b.blocks, &BlockDraft{
		ID:        b.NewBlockIDFunc(),
		Type:      blockType,
		Name:      blockType.DisplayName(),
		sets:      make([][]string, blockType.DefaultSets()),
		overrides: make(map[string]Override),
	})
	return len(b.blocks) - 1, nil
}

func (b *Builder) RemoveBlock(i int) error {
	if _, err := b.Block(i); err != nil {
		return err
	}
	b.blocks = append(b.blocks[:i], b.blocks[i+1:]...)
	return nil
}

// MoveBlockUp swaps block i with its predecessor; no-op for the first block.
func (b *Builder) MoveBlockUp(i int) error {
	if _, err := b.Block(i); err != nil {
		return err
	}
	if i == 0 {
		return nil
	}
	b.blocks[i-1], b.blocks[i] = b.blocks[i], b.blocks[i-1]
	return nil
}

// MoveBlockDown swaps block i with its successor; no-op for the last block.
func (b *Builder) MoveBlockDown(i int) error {
	if _, err := b.Block(i); err != nil {
		return err
	}
	if i == len(b.blocks)-1 {
		return nil
	}
	b.blocks[i], b.blocks[i+1] = b.blocks[i+1], b.blocks[i]
	return nil
}

func (b *Builder) RenameBlock(i int, name string) error {
	block, err := b.Block(i)
	if err != nil {
		return err
	}
	block.Name = strings.TrimSpace(name)
	return nil
}

func (b *Builder) AddSet(i int) error {
	block, err := b.Block(i)
	if err != nil {
		return err
	}
	block.sets = append(block.sets, nil)
	return nil
}

// RemoveSet drops the last set of block i. A block never has fewer than one set.
func (b *Builder) RemoveSet(i int) error {
	block, err := b.Block(i)
	if err != nil {
		return err
	}
	if len(block.sets) <= 1 {
		return nil
	}
	block.sets = block.sets[:len(block.sets)-1]
	return nil
}

func (b *Builder) setOf(i, set int) (*BlockDraft, error) {
	block, err := b.Block(i)
	if err != nil {
		return nil, err
	}
	if set < 1 || set > len(block.sets) {
		return nil, fmt.Errorf("block %d set %d: %w", i, set, ErrInvalidPosition)
	}
	return block, nil
}

// AddExercise appends exerciseID to the given set. Returns false when the
// exercise is already in that set.
func (b *Builder) AddExercise(i, set int, exerciseID string) (bool, error) {
	block, err := b.setOf(i, set)
	if err != nil {
		return false, err
	}
	if containsID(block.sets[set-1], exerciseID) {
		return false, nil
	}
	block.sets[set-1] = append(block.sets[set-1], exerciseID)
	return true, nil
}

func (b *Builder) RemoveExercise(i, set, pos int) error {
	block, err := b.setOf(i, set)
	if err != nil {
		return err
	}
	ids := block.sets[set-1]
	if pos < 0 || pos >= len(ids) {
		return fmt.Errorf("exercise %d: %w", pos, ErrInvalidPosition)
	}
	block.sets[set-1] = append(ids[:pos], ids[pos+1:]...)
	return nil
}

func (b *Builder) MoveExerciseUp(i, set, pos int) error {
	return b.swapExercises(i, set, pos, pos-1)
}

func (b *Builder) MoveExerciseDown(i, set, pos int) error {
	return b.swapExercises(i, set, pos, pos+1)
}

func (b *Builder) swapExercises(i, set, pos, target int) error {
	block, err := b.setOf(i, set)
	if err != nil {
		return err
	}
	ids := block.sets[set-1]
	if pos < 0 || pos >= len(ids) {
		return fmt.Errorf("exercise %d: %w", pos, ErrInvalidPosition)
	}
	if target < 0 || target >= len(ids) {
		return nil
	}
	ids[pos], ids[target] = ids[target], ids[pos]
	return nil
}

// CopyToNextSet copies the exercise at pos of set n into set n+1. It is a
// no-op when set n is the last set or set n+1 already holds the exercise.
func (b *Builder) CopyToNextSet(i, set, pos int) error {
	block, err := b.setOf(i, set)
	if err != nil {
		return err
	}
	ids := block.sets[set-1]
	if pos < 0 || pos >= len(ids) {
		return fmt.Errorf("exercise %d: %w", pos, ErrInvalidPosition)
	}
	if set == len(block.sets) || containsID(block.sets[set], ids[pos]) {
		return nil
	}
	block.sets[set] = append(block.sets[set], ids[pos])
	return nil
}

// SetOverride sets block-level values for an exercise of block i.
func (b *Builder) SetOverride(i int, exerciseID string, o Override) error {
	block, err := b.Block(i)
	if err != nil {
		return err
	}
	block.overrides[exerciseID] = o
	return nil
}

// AvailableExercises lists catalog exercises whose area fits block i.
func (b *Builder) AvailableExercises(i int, catalog *exercises.Catalog) ([]exercises.Exercise, error) {
	block, err := b.Block(i)
	if err != nil {
		return nil, err
	}
	return catalog.ForBlockType(block.Type), nil
}

func (b *Builder) ExerciseCount() int {
	count := 0
	for _, block := range b.blocks {
		count += block.ExerciseCount()
	}
	return count
}

// Finalize converts the drafts into workout blocks. Blocks without exercises
// are dropped. Entries carry their draft set number, which is omitted only
// for single-set blocks.
func (b *Builder) Finalize(catalog *exercises.Catalog, equipment exercises.EquipmentConfig) ([]workouts.Block, error) {
	if b.ExerciseCount() == 0 {
		return nil, ErrNoExercises
	}

	blocks := make([]workouts.Block, 0, len(b.blocks))
	for _, draft := range b.blocks {
		if draft.ExerciseCount() == 0 {
			continue
		}
		tagged := draft.SetCount() > 1
		var entries []workouts.WorkoutExercise
		for n, ids := range draft.sets {
			for _, id := range ids {
				entry := draft.entry(id, catalog, equipment)
				if tagged {
					setNumber := n + 1
					entry.Sets = &setNumber
				}
				entries = append(entries, entry)
			}
		}

		name := draft.Name
		if name == "" {
			name = draft.Type.DisplayName()
		}
		blocks = append(blocks, workouts.Block{
			ID:        draft.ID,
			Type:      draft.Type,
			Name:      name,
			Exercises: entries,
		})
	}

	return blocks, nil
}

func (b *BlockDraft) entry(id string, catalog *exercises.Catalog, equipment exercises.EquipmentConfig) workouts.WorkoutExercise {
	entry := workouts.WorkoutExercise{ExerciseID: id}
	if ex, ok := catalog.Get(id); ok {
		entry.Weight = exercises.DefaultWeightFor(ex, equipment)
		entry.Reps = ex.DefaultReps
		entry.Duration = ex.DefaultDuration
	} else {
		log.Debugf("builder: exercise [%s] not in catalog, using overrides only", id)
	}

	if o, ok := b.overrides[id]; ok {
		if o.Weight != nil {
			entry.Weight = o.Weight
		}
		if o.Reps != nil {
			entry.Reps = o.Reps
		}
		if o.Duration != nil {
			entry.Duration = o.Duration
		}
	}
	return entry
}

// Save finalizes the drafts and stores them as a saved workout, updating the
// edited workout when the builder was opened in edit mode.
func (b *Builder) Save(
	ctx context.Context,
	saver workoutSaver,
	name string,
	estimatedMinutes *int,
	catalog *exercises.Catalog,
	equipment exercises.EquipmentConfig,
) (_ *workouts.SavedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "builder.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	blocks, err := b.Finalize(catalog, equipment)
	if err != nil {
		return nil, err
	}

	if b.editingID != "" {
		return saver.UpdateSavedWorkout(ctx, b.editingID, workouts.SavedWorkoutPatch{
			Name:             &name,
			EstimatedMinutes: estimatedMinutes,
			Blocks:           blocks,
		})
	}

	saved, err := saver.AddSavedWorkout(ctx, name, blocks, estimatedMinutes)
	if err != nil {
		return nil, err
	}
	b.editingID = saved.ID
	return saved, nil
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
