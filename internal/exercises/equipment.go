package exercises

// EquipmentConfig holds the user's default load per weighted equipment type, in lb.
type EquipmentConfig map[Equipment]float64

// ConfigurableEquipment are the equipment types an EquipmentConfig covers.
var ConfigurableEquipment = []Equipment{
	EquipmentDumbbell,
	EquipmentKettlebell,
	EquipmentBarbell,
	EquipmentSandbag,
}

func DefaultEquipmentConfig() EquipmentConfig {
	return EquipmentConfig{
		EquipmentDumbbell:   25,
		EquipmentKettlebell: 35,
		EquipmentBarbell:    95,
		EquipmentSandbag:    60,
	}
}

func (c EquipmentConfig) WeightFor(eq Equipment) (float64, bool) {
	w, ok := c[eq]
	return w, ok
}

// IsConfigurable reports whether eq can carry a default weight.
func IsConfigurable(eq Equipment) bool {
	for _, e := range ConfigurableEquipment {
		if e == eq {
			return true
		}
	}
	return false
}

// DefaultWeightFor returns the weight to prefill for ex: its own default
// when set, otherwise the equipment default.
func DefaultWeightFor(ex Exercise, cfg EquipmentConfig) *float64 {
	if ex.DefaultWeight != nil {
		w := *ex.DefaultWeight
		return &w
	}
	if w, ok := cfg.WeightFor(ex.Equipment); ok {
		return &w
	}
	return nil
}
