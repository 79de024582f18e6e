package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/interfaces/http/handlers/testutil"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return fmt.Errorf("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]HealthCheck
		wantCode   int
		wantStatus string
	}{
		{"no dependencies", nil, http.StatusOK, "healthy"},
		{"all healthy", map[string]HealthCheck{"database": ok, "redis": ok}, http.StatusOK, "healthy"},
		{"redis down", map[string]HealthCheck{"database": ok, "redis": down}, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.checks, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

			handler.HealthCheck(c)

			assert.Equal(t, tt.wantCode, w.Code)

			var body struct {
				Status     string            `json:"status"`
				Components map[string]string `json:"components"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Len(t, body.Components, len(tt.checks))
		})
	}
}

func TestHealthHandler_Version(t *testing.T) {
	handler := NewHealthHandler(nil, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/version", nil)

	handler.Version(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"dev"`)
}
