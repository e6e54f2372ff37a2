package exercises

import "github.com/jasonschulke/mooove/internal/workouts"

func reps(n int) *workouts.Reps {
	r := workouts.FixedReps(n)
	return &r
}

func amrap() *workouts.Reps {
	r := workouts.AMRAP()
	return &r
}

func seconds(n int) *int {
	return &n
}

func pounds(w float64) *float64 {
	return &w
}

var builtIns = []Exercise{
	// warmup
	{ID: "jumping-jacks", Name: "Jumping Jacks", Area: AreaWarmup, Equipment: EquipmentBodyweight, DefaultDuration: seconds(60)},
	{ID: "arm-circles", Name: "Arm Circles", Area: AreaWarmup, Equipment: EquipmentBodyweight, DefaultDuration: seconds(30)},
	{ID: "worlds-greatest-stretch", Name: "World's Greatest Stretch", Area: AreaWarmup, Equipment: EquipmentBodyweight, DefaultReps: reps(5), Description: "Lunge, elbow to instep, rotate and reach."},
	{ID: "band-pull-apart", Name: "Band Pull-Apart", Area: AreaWarmup, Equipment: EquipmentBand, DefaultReps: reps(15)},
	{ID: "cat-cow", Name: "Cat-Cow", Area: AreaWarmup, Equipment: EquipmentBodyweight, DefaultReps: reps(10)},
	{ID: "hip-circles", Name: "Hip Circles", Area: AreaWarmup, Equipment: EquipmentBodyweight, DefaultReps: reps(10)},

	// squat
	{ID: "goblet-squat", Name: "Goblet Squat", Area: AreaSquat, Equipment: EquipmentKettlebell, DefaultReps: reps(10), Alternatives: []string{"db-goblet-squat", "zercher-squat"}},
	{ID: "db-goblet-squat", Name: "Dumbbell Goblet Squat", Area: AreaSquat, Equipment: EquipmentDumbbell, DefaultReps: reps(10), Alternatives: []string{"goblet-squat"}},
	{ID: "zercher-squat", Name: "Sandbag Zercher Squat", Area: AreaSquat, Equipment: EquipmentSandbag, DefaultReps: reps(8), Description: "Bag held in the crook of the elbows.", Alternatives: []string{"goblet-squat", "back-squat"}},
	{ID: "back-squat", Name: "Barbell Back Squat", Area: AreaSquat, Equipment: EquipmentBarbell, DefaultReps: reps(5), Alternatives: []string{"zercher-squat"}},
	{ID: "split-squat", Name: "Dumbbell Split Squat", Area: AreaSquat, Equipment: EquipmentDumbbell, DefaultReps: reps(8)},
	{ID: "air-squat", Name: "Air Squat", Area: AreaSquat, Equipment: EquipmentBodyweight, DefaultReps: reps(20)},

	// hinge
	{ID: "kb-swing", Name: "Kettlebell Swing", Area: AreaHinge, Equipment: EquipmentKettlebell, DefaultReps: reps(15), Alternatives: []string{"db-rdl"}},
	{ID: "db-rdl", Name: "Dumbbell Romanian Deadlift", Area: AreaHinge, Equipment: EquipmentDumbbell, DefaultReps: reps(10), Alternatives: []string{"kb-swing", "deadlift"}},
	{ID: "deadlift", Name: "Barbell Deadlift", Area: AreaHinge, Equipment: EquipmentBarbell, DefaultReps: reps(5)},
	{ID: "sandbag-clean", Name: "Sandbag Clean", Area: AreaHinge, Equipment: EquipmentSandbag, DefaultReps: reps(6)},
	{ID: "glute-bridge", Name: "Glute Bridge", Area: AreaHinge, Equipment: EquipmentBodyweight, DefaultReps: reps(15)},

	// press
	{ID: "db-overhead-press", Name: "Dumbbell Overhead Press", Area: AreaPress, Equipment: EquipmentDumbbell, DefaultReps: reps(8), Alternatives: []string{"kb-press"}},
	{ID: "kb-press", Name: "Kettlebell Press", Area: AreaPress, Equipment: EquipmentKettlebell, DefaultReps: reps(6), Alternatives: []string{"db-overhead-press"}},
	{ID: "barbell-press", Name: "Barbell Overhead Press", Area: AreaPress, Equipment: EquipmentBarbell, DefaultReps: reps(5)},

	// push
	{ID: "push-up", Name: "Push-Up", Area: AreaPush, Equipment: EquipmentBodyweight, DefaultReps: amrap(), Alternatives: []string{"db-bench-press"}},
	{ID: "db-bench-press", Name: "Dumbbell Bench Press", Area: AreaPush, Equipment: EquipmentDumbbell, DefaultReps: reps(10), Alternatives: []string{"push-up"}},
	{ID: "bench-press", Name: "Barbell Bench Press", Area: AreaPush, Equipment: EquipmentBarbell, DefaultReps: reps(5)},
	{ID: "dips", Name: "Dips", Area: AreaPush, Equipment: EquipmentBodyweight, DefaultReps: amrap()},

	// pull
	{ID: "pull-up", Name: "Pull-Up", Area: AreaPull, Equipment: EquipmentBodyweight, DefaultReps: amrap(), Alternatives: []string{"db-row"}},
	{ID: "db-row", Name: "Dumbbell Row", Area: AreaPull, Equipment: EquipmentDumbbell, DefaultReps: reps(10), Alternatives: []string{"kb-row", "pull-up"}},
	{ID: "kb-row", Name: "Kettlebell Row", Area: AreaPull, Equipment: EquipmentKettlebell, DefaultReps: reps(10)},
	{ID: "band-row", Name: "Band Row", Area: AreaPull, Equipment: EquipmentBand, DefaultReps: reps(15)},

	// core
	{ID: "plank", Name: "Plank", Area: AreaCore, Equipment: EquipmentBodyweight, DefaultDuration: seconds(45)},
	{ID: "dead-bug", Name: "Dead Bug", Area: AreaCore, Equipment: EquipmentBodyweight, DefaultReps: reps(10)},
	{ID: "bird-dog", Name: "Bird Dog", Area: AreaCore, Equipment: EquipmentBodyweight, DefaultReps: reps(10)},
	{ID: "suitcase-carry", Name: "Suitcase Carry", Area: AreaCore, Equipment: EquipmentKettlebell, DefaultDuration: seconds(40)},
	{ID: "hollow-hold", Name: "Hollow Hold", Area: AreaCore, Equipment: EquipmentBodyweight, DefaultDuration: seconds(30)},

	// conditioning
	{ID: "burpees", Name: "Burpees", Area: AreaConditioning, Equipment: EquipmentBodyweight, DefaultReps: reps(10)},
	{ID: "mountain-climbers", Name: "Mountain Climbers", Area: AreaConditioning, Equipment: EquipmentBodyweight, DefaultDuration: seconds(40)},
	{ID: "rower", Name: "Rower", Area: AreaConditioning, Equipment: EquipmentMachine, DefaultDuration: seconds(300)},
	{ID: "bike", Name: "Assault Bike", Area: AreaConditioning, Equipment: EquipmentMachine, DefaultDuration: seconds(300)},
	{ID: "run", Name: "Run", Area: AreaConditioning, Equipment: EquipmentBodyweight, DefaultDuration: seconds(1200)},
	{ID: "jump-rope", Name: "Jump Rope", Area: AreaConditioning, Equipment: EquipmentBodyweight, DefaultDuration: seconds(60)},

	// full body
	{ID: "kb-clean-press", Name: "Kettlebell Clean & Press", Area: AreaFullBody, Equipment: EquipmentKettlebell, DefaultReps: reps(5)},
	{ID: "db-thruster", Name: "Dumbbell Thruster", Area: AreaFullBody, Equipment: EquipmentDumbbell, DefaultReps: reps(10)},
	{ID: "sandbag-shouldering", Name: "Sandbag Shouldering", Area: AreaFullBody, Equipment: EquipmentSandbag, DefaultReps: reps(6)},
	{ID: "turkish-get-up", Name: "Turkish Get-Up", Area: AreaFullBody, Equipment: EquipmentKettlebell, DefaultReps: reps(2), DefaultWeight: pounds(25)},

	// cooldown
	{ID: "childs-pose", Name: "Child's Pose", Area: AreaCooldown, Equipment: EquipmentBodyweight, DefaultDuration: seconds(60)},
	{ID: "pigeon-stretch", Name: "Pigeon Stretch", Area: AreaCooldown, Equipment: EquipmentBodyweight, DefaultDuration: seconds(60)},
	{ID: "hamstring-stretch", Name: "Hamstring Stretch", Area: AreaCooldown, Equipment: EquipmentBodyweight, DefaultDuration: seconds(45)},
	{ID: "couch-stretch", Name: "Couch Stretch", Area: AreaCooldown, Equipment: EquipmentBodyweight, DefaultDuration: seconds(60)},
}

// BuiltIns returns a copy of the fixed exercise catalog.
func BuiltIns() []Exercise {
	out := make([]Exercise, len(builtIns))
	copy(out, builtIns)
	return out
}

func IsBuiltIn(id string) bool {
	for _, ex := range builtIns {
		if ex.ID == id {
			return true
		}
	}
	return false
}
