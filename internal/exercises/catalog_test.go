package exercises

import (
	"strings"
	"testing"

	"github.com/jasonschulke/mooove/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBuiltIns_WellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, ex := range BuiltIns() {
		assert.False(t, seen[ex.ID], "duplicate id %s", ex.ID)
		seen[ex.ID] = true
		assert.NotEmpty(t, ex.Name, ex.ID)
		assert.True(t, ex.Area.Valid(), ex.ID)
		assert.True(t, ex.Equipment.Valid(), ex.ID)
		assert.False(t, ex.IsCustom(), ex.ID)
	}
	// alternatives point at real built-ins
	for _, ex := range BuiltIns() {
		for _, alt := range ex.Alternatives {
			assert.True(t, seen[alt], "%s -> unknown alternative %s", ex.ID, alt)
		}
	}
}

func TestCatalog_UnionAndLookup(t *testing.T) {
	custom := Exercise{ID: "custom-123", Name: "Zombie Walk", Area: AreaCore, Equipment: EquipmentBodyweight}
	c := NewCatalog([]Exercise{custom})

	assert.Len(t, c.All(), len(BuiltIns())+1)

	got, ok := c.Get("custom-123")
	require.True(t, ok)
	assert.Equal(t, "Zombie Walk", got.Name)
	assert.True(t, got.IsCustom())

	got, ok = c.Get("goblet-squat")
	require.True(t, ok)
	assert.Equal(t, AreaSquat, got.Area)

	_, ok = c.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "nope", c.Name("nope"))
	assert.Equal(t, "Goblet Squat", c.Name("goblet-squat"))
}

func TestCatalog_CustomCannotShadowBuiltIn(t *testing.T) {
	c := NewCatalog([]Exercise{{ID: "goblet-squat", Name: "Fake"}})
	got, ok := c.Get("goblet-squat")
	require.True(t, ok)
	assert.Equal(t, "Goblet Squat", got.Name)
}

func TestCatalog_ForBlockType(t *testing.T) {
	c := NewCatalog(nil)

	for _, ex := range c.ForBlockType(workouts.BlockCooldown) {
		assert.Contains(t, []Area{AreaWarmup, AreaCore, AreaCooldown}, ex.Area)
	}
	for _, ex := range c.ForBlockType(workouts.BlockCardio) {
		assert.Equal(t, AreaConditioning, ex.Area)
	}

	strength := c.ForBlockType(workouts.BlockStrength)
	require.NotEmpty(t, strength)
	for i := 1; i < len(strength); i++ {
		assert.LessOrEqual(t, strings.ToLower(strength[i-1].Name), strings.ToLower(strength[i].Name))
	}
	for _, ex := range strength {
		assert.NotEqual(t, AreaCooldown, ex.Area)
	}
}

func TestCatalog_Alternatives(t *testing.T) {
	c := NewCatalog(nil)
	alts := c.Alternatives("zercher-squat")
	require.Len(t, alts, 2)
	assert.Equal(t, "goblet-squat", alts[0].ID)
	assert.Nil(t, c.Alternatives("nope"))
}

func TestAllowedAreas_ReturnsCopy(t *testing.T) {
	areas := AllowedAreas(workouts.BlockWarmup)
	areas[0] = AreaPull
	assert.Equal(t, AreaWarmup, AllowedAreas(workouts.BlockWarmup)[0])
	assert.Empty(t, AllowedAreas(workouts.BlockType("yoga")))
}

func TestDefaultWeightFor(t *testing.T) {
	cfg := DefaultEquipmentConfig()

	zercher, _ := NewCatalog(nil).Get("zercher-squat")
	w := DefaultWeightFor(zercher, cfg)
	require.NotNil(t, w)
	assert.Equal(t, 60.0, *w)

	tgu, _ := NewCatalog(nil).Get("turkish-get-up")
	w = DefaultWeightFor(tgu, cfg)
	require.NotNil(t, w)
	assert.Equal(t, 25.0, *w)

	plank, _ := NewCatalog(nil).Get("plank")
	assert.Nil(t, DefaultWeightFor(plank, cfg))

	assert.True(t, IsConfigurable(EquipmentBarbell))
	assert.False(t, IsConfigurable(EquipmentBand))
}
