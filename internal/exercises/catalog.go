package exercises

import (
	"sort"
	"strings"

	"github.com/jasonschulke/mooove/internal/workouts"
)

// Catalog is the read-time union of built-in and custom exercises.
type Catalog struct {
	ordered []Exercise
	byID    map[string]Exercise
}

func NewCatalog(custom []Exercise) *Catalog {
	c := &Catalog{
		byID: make(map[string]Exercise, len(builtIns)+len(custom)),
	}
	for _, ex := range builtIns {
		c.add(ex)
	}
	for _, ex := range custom {
		c.add(ex)
	}
	return c
}

func (c *Catalog) add(ex Exercise) {
	if _, exists := c.byID[ex.ID]; exists {
		return
	}
	c.byID[ex.ID] = ex
	c.ordered = append(c.ordered, ex)
}

func (c *Catalog) Get(id string) (Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// Name returns the display name of id, falling back to the id itself.
func (c *Catalog) Name(id string) string {
	if ex, ok := c.byID[id]; ok {
		return ex.Name
	}
	return id
}

func (c *Catalog) All() []Exercise {
	out := make([]Exercise, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *Catalog) ByArea(area Area) []Exercise {
	var out []Exercise
	for _, ex := range c.ordered {
		if ex.Area == area {
			out = append(out, ex)
		}
	}
	return out
}

// ForBlockType lists the exercises selectable in a block of the given type,
// sorted by name.
func (c *Catalog) ForBlockType(blockType workouts.BlockType) []Exercise {
	var out []Exercise
	for _, ex := range c.ordered {
		if AreaAllowed(blockType, ex.Area) {
			out = append(out, ex)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Alternatives resolves the alternative ids of an exercise, skipping unknown ones.
func (c *Catalog) Alternatives(id string) []Exercise {
	ex, ok := c.byID[id]
	if !ok {
		return nil
	}
	var out []Exercise
	for _, altID := range ex.Alternatives {
		if alt, ok := c.byID[altID]; ok {
			out = append(out, alt)
		}
	}
	return out
}
