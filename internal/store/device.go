package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jasonschulke/mooove/internal/kv"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DeviceID returns the persisted device identity, generating it on first use.
func (s *Store) DeviceID(ctx context.Context) (string, error) {
	s.deviceIDMu.Lock()
	defer s.deviceIDMu.Unlock()

	if s.deviceID != "" {
		return s.deviceID, nil
	}

	id, err := s.kv.Get(ctx, KeyDeviceID)
	if err == nil {
		if _, parseErr := uuid.Parse(id); parseErr == nil {
			s.deviceID = id
			return id, nil
		}
		log.Warnf("store: stored device id [%s] is not a uuid, generating a new one", id)
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		return "", fmt.Errorf("read device id: %w", err)
	}

	id = uuid.NewString()
	if err := s.kv.Set(ctx, KeyDeviceID, id); err != nil {
		return "", fmt.Errorf("save device id: %w", err)
	}
	s.deviceID = id
	return id, nil
}
