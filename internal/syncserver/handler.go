package syncserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jasonschulke/mooove/internal/middleware"
	"github.com/jasonschulke/mooove/internal/telemetry/metrics"
	"github.com/jasonschulke/mooove/internal/telemetry/tracing"
	"github.com/jasonschulke/mooove/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var emptySnapshot = []byte(`{"data":{}}`)

type snapshotBody struct {
	Data map[string]json.RawMessage `json:"data"`
}

type Handler struct {
	repo           snapshotRepo
	metricsManager *metrics.Manager
	versionInfo    string
}

func NewHandler(
	repo snapshotRepo,
	metricsManager *metrics.Manager,
	versionInfo string,
) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		versionInfo:    versionInfo,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	syncRouter := mainRouter.PathPrefix("/sync").Subrouter()
	syncRouter.HandleFunc("", handler.HandleGet).Methods("GET", "OPTIONS").Name("sync-get")
	syncRouter.HandleFunc("", handler.HandlePost).Methods("POST").Name("sync-post")

	// device id must be resolved before the limiter keys on it
	syncRouter.Use(middleware.RequireDeviceID("/sync"))
	syncRouter.Use(middleware.RateLimit(rateLimiter, handler.metricsManager, "sync", allowedPerMin))
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "syncHandler.get")
	defer span.End()

	deviceID, ok := middleware.DeviceIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, http.StatusBadRequest, "missing device id")
		return
	}
	span.SetAttributes(attribute.String("device", deviceID))

	payload, err := handler.repo.Get(ctx, deviceID)
	if errors.Is(err, ErrSnapshotNotFound) {
		span.SetAttributes(attribute.Bool("snapshot.found", false))
		pkg.WriteJSONOK(w, emptySnapshot)
		return
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("get snapshot for [%s]: %s", deviceID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to get snapshot")
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSnapshotsServed.Inc()
	}
	span.SetAttributes(attribute.Bool("snapshot.found", true))
	pkg.WriteJSONOK(w, payload)
}

func (handler *Handler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "syncHandler.post")
	defer span.End()

	deviceID, ok := middleware.DeviceIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, http.StatusBadRequest, "missing device id")
		return
	}
	span.SetAttributes(attribute.String("device", deviceID))

	reqBytes, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			pkg.WriteJSONError(w, http.StatusRequestEntityTooLarge, "snapshot too large")
			return
		}
		log.Errorf("read snapshot body for [%s]: %s", deviceID, err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	var body snapshotBody
	if err := json.Unmarshal(reqBytes, &body); err != nil {
		span.SetStatus(codes.Error, "invalid-json")
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Data == nil {
		span.SetStatus(codes.Error, "missing-data")
		pkg.WriteJSONError(w, http.StatusBadRequest, "missing data object")
		return
	}

	// stored compacted, so the same snapshot always has the same bytes
	payload, err := json.Marshal(body)
	if err != nil {
		log.Errorf("marshal snapshot for [%s]: %s", deviceID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := handler.repo.Put(ctx, deviceID, payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("put snapshot for [%s]: %s", deviceID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "failed to store snapshot")
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSnapshotsStored.Inc()
		handler.metricsManager.HistSnapshotSizeBytes.Observe(float64(len(payload)))
	}
	span.SetAttributes(attribute.Int("snapshot.keys", len(body.Data)))
	log.Debugf("snapshot stored for [%s]: %d keys, %d bytes", deviceID, len(body.Data), len(payload))

	pkg.WriteJSONOK(w, []byte(`{"ok":true}`))
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextOK(w, handler.versionInfo)
}
