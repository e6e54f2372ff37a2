package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jasonschulke/mooove/internal/kv"
	"github.com/jasonschulke/mooove/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

const (
	documentVersion = 1
	keyPrefix       = "mooove."

	KeySessions        = keyPrefix + "sessions"
	KeyCurrentSession  = keyPrefix + "currentSession"
	KeySavedWorkouts   = keyPrefix + "savedWorkouts"
	KeyRestDays        = keyPrefix + "restDays"
	KeyCustomExercises = keyPrefix + "customExercises"
	KeyEquipmentConfig = keyPrefix + "equipmentConfig"
	KeyChatHistory     = keyPrefix + "chatHistory"
	KeyAPIKey          = keyPrefix + "apiKey"
	KeyDeviceID        = keyPrefix + "deviceId"
)

const (
	schemaSessions        = "sessions"
	schemaCurrentSession  = "current-session"
	schemaSavedWorkouts   = "saved-workouts"
	schemaRestDays        = "rest-days"
	schemaCustomExercises = "custom-exercises"
	schemaEquipmentConfig = "equipment-config"
	schemaChatHistory     = "chat-history"
	schemaAPIKey          = "api-key"
)

var keySchemas = map[string]string{
	KeySessions:        schemaSessions,
	KeyCurrentSession:  schemaCurrentSession,
	KeySavedWorkouts:   schemaSavedWorkouts,
	KeyRestDays:        schemaRestDays,
	KeyCustomExercises: schemaCustomExercises,
	KeyEquipmentConfig: schemaEquipmentConfig,
	KeyChatHistory:     schemaChatHistory,
	KeyAPIKey:          schemaAPIKey,
}

var (
	ErrNotFound          = errors.New("not found")
	ErrBuiltInExercise   = errors.New("built-in exercises are read-only")
	ErrInvalidExercise   = errors.New("invalid exercise")
	ErrNoActiveSession   = errors.New("no workout session in progress")
	ErrSessionInProgress = errors.New("a workout session is already in progress")
	ErrInvalidEffort     = errors.New("effort must be between 1 and 10")
)

// syncKeys are the documents mirrored to the cloud snapshot.
var syncKeys = []string{
	KeySessions,
	KeySavedWorkouts,
	KeyRestDays,
	KeyCustomExercises,
	KeyEquipmentConfig,
	KeyChatHistory,
}

func SyncKeys() []string {
	out := make([]string, len(syncKeys))
	copy(out, syncKeys)
	return out
}

func isSyncKey(key string) bool {
	for _, k := range syncKeys {
		if k == key {
			return true
		}
	}
	return false
}

// syncNotifier is told about every successful write of a synced document.
type syncNotifier interface {
	Schedule()
}

type noopNotifier struct{}

func (noopNotifier) Schedule() {}

// envelope is the versioned, tagged on-disk shape of every document.
type envelope struct {
	Schema  string          `json:"schema"`
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

type Store struct {
	kv       kv.Store
	notifier syncNotifier

	fallbackAPIKey string

	deviceIDMu sync.Mutex
	deviceID   string

	// ability to inject clock, ids and randomness (for unit testing)
	NowFunc   func() time.Time
	NewIDFunc func(prefix string) string
	IntNFunc  func(n int) int
}

// New creates a Store on top of kvStore. notifier may be nil when cloud
// sync is disabled. fallbackAPIKey is used when the user has not set a key.
func New(kvStore kv.Store, notifier syncNotifier, fallbackAPIKey string) *Store {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Store{
		kv:             kvStore,
		notifier:       notifier,
		fallbackAPIKey: fallbackAPIKey,
		NowFunc:        time.Now,
		NewIDFunc:      newID,
		IntNFunc:       rand.IntN,
	}
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// touch returns a timestamp strictly after prev.
func (s *Store) touch(prev time.Time) time.Time {
	now := s.NowFunc()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}

// loadDocument reads and decodes the document at key. It never fails: a
// missing, unreadable or malformed document yields ok == false.
func loadDocument[T any](ctx context.Context, s *Store, key, schema string, validate func(T) error) (_ T, ok bool) {
	var zero T

	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return zero, false
	}
	if err != nil {
		log.Warnf("store: read [%s]: %s", key, err)
		return zero, false
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Warnf("store: [%s] is not a valid document, using default: %s", key, err)
		return zero, false
	}
	if env.Schema != schema || env.Version != documentVersion {
		log.Warnf("store: [%s] has schema %s/v%d, want %s/v%d, using default", key, env.Schema, env.Version, schema, documentVersion)
		return zero, false
	}

	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		log.Warnf("store: [%s] data malformed, using default: %s", key, err)
		return zero, false
	}
	if validate != nil {
		if err := validate(v); err != nil {
			log.Warnf("store: [%s] failed validation, using default: %s", key, err)
			return zero, false
		}
	}

	return v, true
}

func encodeDocument(schema string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", schema, err)
	}
	doc, err := json.Marshal(envelope{
		Schema:  schema,
		Version: documentVersion,
		Data:    data,
	})
	if err != nil {
		return "", fmt.Errorf("marshal %s envelope: %w", schema, err)
	}
	return string(doc), nil
}

// saveDocument serializes v fully before touching storage, so a failed
// marshal never leaves a partially written value behind.
func (s *Store) saveDocument(ctx context.Context, key, schema string, v any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	doc, err := encodeDocument(schema, v)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, key, doc); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	if isSyncKey(key) {
		s.notifier.Schedule()
	}
	return nil
}

// IsEmpty reports whether the device has neither sessions nor saved workouts.
func (s *Store) IsEmpty(ctx context.Context) bool {
	return len(s.LoadSessions(ctx)) == 0 && len(s.LoadSavedWorkouts(ctx)) == 0
}

// Snapshot returns the raw stored documents of all synced keys.
func (s *Store) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	snapshot := make(map[string]json.RawMessage, len(syncKeys))
	for _, key := range syncKeys {
		raw, err := s.kv.Get(ctx, key)
		if errors.Is(err, kv.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", key, err)
		}
		if !json.Valid([]byte(raw)) {
			log.Warnf("store: skipping invalid document [%s] in snapshot", key)
			continue
		}
		snapshot[key] = json.RawMessage(raw)
	}
	return snapshot, nil
}

// Restore writes the given raw documents without scheduling a sync push.
// Unknown keys and invalid JSON are skipped.
func (s *Store) Restore(ctx context.Context, docs map[string]json.RawMessage) (restored int, err error) {
	for _, key := range syncKeys {
		raw, ok := docs[key]
		if !ok {
			continue
		}
		var env envelope
		if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil || env.Schema != keySchemas[key] || env.Version != documentVersion {
			log.Warnf("store: skipping restore of [%s]: not a valid document", key)
			continue
		}
		if setErr := s.kv.Set(ctx, key, string(raw)); setErr != nil {
			err = multierr.Append(err, fmt.Errorf("restore %s: %w", key, setErr))
			continue
		}
		restored++
	}
	return restored, err
}
