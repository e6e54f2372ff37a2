package exercises

import (
	"strings"

	"github.com/jasonschulke/mooove/internal/workouts"
)

const CustomIDPrefix = "custom-"

type Area string

const (
	AreaWarmup       Area = "warmup"
	AreaSquat        Area = "squat"
	AreaHinge        Area = "hinge"
	AreaPress        Area = "press"
	AreaPush         Area = "push"
	AreaPull         Area = "pull"
	AreaCore         Area = "core"
	AreaConditioning Area = "conditioning"
	AreaCooldown     Area = "cooldown"
	AreaFullBody     Area = "full-body"
)

var Areas = []Area{
	AreaWarmup, AreaSquat, AreaHinge, AreaPress, AreaPush,
	AreaPull, AreaCore, AreaConditioning, AreaCooldown, AreaFullBody,
}

func (a Area) Valid() bool {
	for _, area := range Areas {
		if area == a {
			return true
		}
	}
	return false
}

type Equipment string

const (
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBarbell    Equipment = "barbell"
	EquipmentSandbag    Equipment = "sandbag"
	EquipmentBand       Equipment = "band"
	EquipmentMachine    Equipment = "machine"
)

var EquipmentTypes = []Equipment{
	EquipmentBodyweight, EquipmentDumbbell, EquipmentKettlebell, EquipmentBarbell,
	EquipmentSandbag, EquipmentBand, EquipmentMachine,
}

func (e Equipment) Valid() bool {
	for _, eq := range EquipmentTypes {
		if eq == e {
			return true
		}
	}
	return false
}

type Exercise struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Area            Area           `json:"area"`
	Equipment       Equipment      `json:"equipment"`
	DefaultWeight   *float64       `json:"defaultWeight,omitempty"`
	DefaultReps     *workouts.Reps `json:"defaultReps,omitempty"`
	DefaultDuration *int           `json:"defaultDuration,omitempty"`
	Description     string         `json:"description,omitempty"`
	Alternatives    []string       `json:"alternatives,omitempty"`
}

func (e Exercise) IsCustom() bool {
	return IsCustomID(e.ID)
}

func IsCustomID(id string) bool {
	return strings.HasPrefix(id, CustomIDPrefix)
}

// blockAreas lists the exercise areas selectable per block type.
var blockAreas = map[workouts.BlockType][]Area{
	workouts.BlockWarmup:       {AreaWarmup, AreaCore, AreaFullBody},
	workouts.BlockStrength:     {AreaSquat, AreaHinge, AreaPress, AreaPush, AreaPull, AreaCore, AreaFullBody},
	workouts.BlockConditioning: {AreaConditioning, AreaFullBody, AreaCore},
	workouts.BlockCardio:       {AreaConditioning},
	workouts.BlockCooldown:     {AreaWarmup, AreaCore, AreaCooldown},
}

func AllowedAreas(blockType workouts.BlockType) []Area {
	areas := blockAreas[blockType]
	out := make([]Area, len(areas))
	copy(out, areas)
	return out
}

func AreaAllowed(blockType workouts.BlockType, area Area) bool {
	for _, a := range blockAreas[blockType] {
		if a == area {
			return true
		}
	}
	return false
}
