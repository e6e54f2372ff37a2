package store

import (
	"context"
	"fmt"

	"github.com/jasonschulke/mooove/internal/exercises"
)

func validateEquipmentConfig(cfg exercises.EquipmentConfig) error {
	for eq, w := range cfg {
		if !exercises.IsConfigurable(eq) {
			return fmt.Errorf("equipment %q has no default weight", eq)
		}
		if w < 0 {
			return fmt.Errorf("equipment %q: negative weight %v", eq, w)
		}
	}
	return nil
}

// LoadEquipmentConfig returns the stored defaults, filling in any
// equipment type the stored document lacks.
func (s *Store) LoadEquipmentConfig(ctx context.Context) exercises.EquipmentConfig {
	merged := exercises.DefaultEquipmentConfig()
	stored, ok := loadDocument(ctx, s, KeyEquipmentConfig, schemaEquipmentConfig, validateEquipmentConfig)
	if !ok {
		return merged
	}
	for eq, w := range stored {
		merged[eq] = w
	}
	return merged
}

func (s *Store) SaveEquipmentConfig(ctx context.Context, cfg exercises.EquipmentConfig) error {
	if err := validateEquipmentConfig(cfg); err != nil {
		return err
	}
	return s.saveDocument(ctx, KeyEquipmentConfig, schemaEquipmentConfig, cfg)
}

func (s *Store) SetEquipmentWeight(ctx context.Context, eq exercises.Equipment, weight float64) error {
	cfg := s.LoadEquipmentConfig(ctx)
	cfg[eq] = weight
	return s.SaveEquipmentConfig(ctx, cfg)
}
