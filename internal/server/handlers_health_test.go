package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&fakeAtlas{}, &fakeResolver{})

	rec := doRequest(srv, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["version"])
}

func TestHandleRoot(t *testing.T) {
	srv := newTestServer(&fakeAtlas{}, &fakeResolver{})

	rec := doRequest(srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "HistoryMap API", resp["message"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&fakeAtlas{}, &fakeResolver{})

	rec := doRequest(srv, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
