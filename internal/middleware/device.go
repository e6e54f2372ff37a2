package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jasonschulke/mooove/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DeviceIDHeader = "X-Device-ID"

type deviceIDKey struct{}

// DeviceIDFromContext returns the device id set by RequireDeviceID.
func DeviceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(deviceIDKey{}).(string)
	return id, ok && id != ""
}

func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, deviceIDKey{}, deviceID)
}

// RequireDeviceID rejects requests under pathPrefix that do not carry a
// UUID device id header. Other paths pass through untouched.
func RequireDeviceID(pathPrefix string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || !strings.HasPrefix(r.URL.Path, pathPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.deviceID")
			defer span.End()

			raw := r.Header.Get(DeviceIDHeader)
			parsed, err := uuid.Parse(raw)
			if err != nil {
				log.Tracef("[device id middleware] invalid device id [%s] => %s", raw, r.URL.Path)
				http.Error(w, "missing or invalid device id", http.StatusBadRequest)
				span.SetStatus(codes.Error, "invalid-device-id")
				return
			}

			deviceID := parsed.String()
			span.SetAttributes(attribute.String("device_id", deviceID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(WithDeviceID(ctx, deviceID)))
		})
	}
}
