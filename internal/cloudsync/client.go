package cloudsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jasonschulke/mooove/internal/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DeviceIDHeader = "X-Device-ID"
	SyncedAtKey    = "_syncedAt"

	defaultClientTimeout = 30 * time.Second
	maxResponseBytes     = 16 << 20
)

// ErrSyncUnavailable covers every way the remote can fail: network errors,
// non-2xx statuses and bodies that are not the expected JSON.
var ErrSyncUnavailable = errors.New("sync unavailable")

// Payload is the body exchanged with the sync endpoint.
type Payload struct {
	Data map[string]json.RawMessage `json:"data"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client

	// ability to inject clock (for unit testing)
	NowFunc func() time.Time
}

// NewClient creates a sync client for endpoint. A nil httpClient gets a
// traced client with a request timeout.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   defaultClientTimeout,
		}
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		NowFunc:    time.Now,
	}
}

// Push uploads the snapshot, stamped with the current time under _syncedAt.
func (c *Client) Push(ctx context.Context, deviceID string, snapshot map[string]json.RawMessage) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cloudsync.client.push")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data := make(map[string]json.RawMessage, len(snapshot)+1)
	for k, v := range snapshot {
		data[k] = v
	}
	syncedAt, err := json.Marshal(c.NowFunc().UTC())
	if err != nil {
		return fmt.Errorf("marshal synced at: %w", err)
	}
	data[SyncedAtKey] = syncedAt

	body, err := json.Marshal(Payload{Data: data})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := c.do(req, deviceID); err != nil {
		return err
	}
	return nil
}

// Pull downloads the remote snapshot. The _syncedAt stamp is stripped.
func (c *Client) Pull(ctx context.Context, deviceID string) (_ map[string]json.RawMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cloudsync.client.pull")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	respBytes, err := c.do(req, deviceID)
	if err != nil {
		return nil, err
	}

	var payload Payload
	if err := json.Unmarshal(respBytes, &payload); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %s", ErrSyncUnavailable, err)
	}
	if payload.Data == nil {
		payload.Data = map[string]json.RawMessage{}
	}
	delete(payload.Data, SyncedAtKey)

	return payload.Data, nil
}

func (c *Client) do(req *http.Request, deviceID string) ([]byte, error) {
	req.Header.Set(DeviceIDHeader, deviceID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http client do: %s", ErrSyncUnavailable, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %s", ErrSyncUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrSyncUnavailable, resp.StatusCode)
	}
	if len(respBytes) > 0 && !json.Valid(respBytes) {
		return nil, fmt.Errorf("%w: response is not json", ErrSyncUnavailable)
	}

	return respBytes, nil
}
