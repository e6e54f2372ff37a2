package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jasonschulke/mooove/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestRequireDeviceID(t *testing.T) {
	testCases := []struct {
		name             string
		path             string
		method           string
		deviceID         string
		expectedStatus   int
		expectedDeviceID string
	}{
		{
			name:             "valid device id",
			path:             "/sync",
			method:           http.MethodGet,
			deviceID:         "7D4F3E2A-1B0C-4D5E-8F9A-0B1C2D3E4F5A",
			expectedStatus:   http.StatusOK,
			expectedDeviceID: "7d4f3e2a-1b0c-4d5e-8f9a-0b1c2d3e4f5a",
		},
		{
			name:           "missing device id",
			path:           "/sync",
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not a uuid",
			path:           "/sync",
			method:         http.MethodGet,
			deviceID:       "../../etc/passwd",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "other path",
			path:           "/version",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "preflight",
			path:           "/sync",
			method:         http.MethodOptions,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.deviceID != "" {
				req.Header.Set(middleware.DeviceIDHeader, tc.deviceID)
			}

			var seenDeviceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenDeviceID, _ = middleware.DeviceIDFromContext(r.Context())
			})

			rr := httptest.NewRecorder()
			middleware.RequireDeviceID("/sync")(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectedDeviceID, seenDeviceID)
		})
	}
}
