package workouts

import "sort"

// SetGroup holds the exercises of one set of a block, in order.
type SetGroup struct {
	Number    int
	Exercises []WorkoutExercise
}

// GroupBySet groups the flat exercise list of a block by set number.
// Groups are ordered by set number, entries keep their relative order.
func GroupBySet(block Block) []SetGroup {
	byNumber := make(map[int][]WorkoutExercise)
	for _, ex := range block.Exercises {
		n := ex.SetNumber()
		byNumber[n] = append(byNumber[n], ex)
	}

	groups := make([]SetGroup, 0, len(byNumber))
	for n, exs := range byNumber {
		groups = append(groups, SetGroup{Number: n, Exercises: exs})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Number < groups[j].Number
	})
	return groups
}
