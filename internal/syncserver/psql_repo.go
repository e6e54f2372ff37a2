package syncserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jasonschulke/mooove/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const createSnapshotTableSQL = `
CREATE TABLE IF NOT EXISTS device_snapshot (
	device_id  TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type PsqlRepo struct {
	db *pgxpool.Pool
}

func NewPsqlRepo(db *pgxpool.Pool) *PsqlRepo {
	return &PsqlRepo{
		db: db,
	}
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (r *PsqlRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createSnapshotTableSQL); err != nil {
		return fmt.Errorf("create device_snapshot table: %w", err)
	}
	return nil
}

func (r *PsqlRepo) Get(ctx context.Context, deviceID string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "psqlRepo.get")
	span.SetAttributes(attribute.String("device", deviceID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var payload []byte
	err = r.db.QueryRow(
		ctx,
		`SELECT payload FROM device_snapshot WHERE device_id = $1;`,
		deviceID,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot: %w", err)
	}

	return payload, nil
}

func (r *PsqlRepo) Put(ctx context.Context, deviceID string, payload []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "psqlRepo.put")
	span.SetAttributes(attribute.String("device", deviceID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO device_snapshot (device_id, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (device_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at;`,
		deviceID, string(payload),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("upsert snapshot: no rows affected")
	}

	return nil
}
