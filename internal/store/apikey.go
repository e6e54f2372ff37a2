package store

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/jasonschulke/mooove/pkg"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/nacl/secretbox"
)

const apiKeySalt = "mooove-api-key|"

// The user's assistant API key is sealed with a key derived from the device
// id. This keeps it out of plain sight in the storage file, nothing more.
func (s *Store) apiKeySecret(ctx context.Context) (*[32]byte, error) {
	deviceID, err := s.DeviceID(ctx)
	if err != nil {
		return nil, err
	}
	secret := sha256.Sum256([]byte(apiKeySalt + deviceID))
	return &secret, nil
}

func (s *Store) SaveAPIKey(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("empty api key")
	}

	secret, err := s.apiKeySecret(ctx)
	if err != nil {
		return err
	}

	nonceBytes, err := pkg.GenerateRandomBytes(24)
	if err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	var nonce [24]byte
	copy(nonce[:], nonceBytes)
	sealed := secretbox.Seal(nonce[:], []byte(apiKey), &nonce, secret)

	return s.saveDocument(ctx, KeyAPIKey, schemaAPIKey, base64.StdEncoding.EncodeToString(sealed))
}

func (s *Store) ClearAPIKey(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyAPIKey); err != nil {
		return fmt.Errorf("clear api key: %w", err)
	}
	return nil
}

// UserAPIKey returns the key the user stored, or "" when none is set.
func (s *Store) UserAPIKey(ctx context.Context) string {
	encoded, ok := loadDocument[string](ctx, s, KeyAPIKey, schemaAPIKey, nil)
	if !ok || encoded == "" {
		return ""
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(sealed) < 24 {
		log.Warnln("store: stored api key is malformed")
		return ""
	}
	secret, err := s.apiKeySecret(ctx)
	if err != nil {
		log.Warnf("store: api key secret: %s", err)
		return ""
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, secret)
	if !ok {
		log.Warnln("store: stored api key cannot be opened on this device")
		return ""
	}
	return string(plain)
}

// LoadAPIKey returns the user's key, falling back to the configured one.
func (s *Store) LoadAPIKey(ctx context.Context) string {
	if key := s.UserAPIKey(ctx); key != "" {
		return key
	}
	return s.fallbackAPIKey
}
