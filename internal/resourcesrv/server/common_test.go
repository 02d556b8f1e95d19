package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/dbmanager"
)

// newTestServer mounts a server over a fresh in-memory store.
func newTestServer(t *testing.T) *ResourceServer {
	t.Helper()
	ctx := log.Logger.WithContext(context.Background())
	store, err := db.Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, DSN: dbmanager.MemoryDSN})
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	require.Nil(t, store.EnsureSchema(ctx))

	s, err := CreateNewServer(db.NewResourceRepository(store))
	require.NoError(t, err, "create new server")
	s.MountHandlers()
	return s
}

func executeTestRequest(t *testing.T, s *ResourceServer, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	expected := "application/json"
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotEmpty(t, h.Get("X-Request-ID"), "No Request Id")
}

func compareJson(t *testing.T, expected any, actual string) {
	j, err := json.Marshal(expected)
	assert.NoError(t, err, "json marshal")
	assert.JSONEq(t, string(j), actual, "Expected: %v\n Got: %v\n", expected, actual)
}

func setRequestBodyAndHeader(t *testing.T, req *http.Request, data interface{}) {
	var jsonData []byte
	if s, ok := data.(string); ok {
		jsonData = []byte(s)
	} else if b, ok := data.([]byte); ok {
		jsonData = b
	} else {
		var err error
		jsonData, err = json.Marshal(data)
		assert.NoError(t, err, "Failed to marshal data into JSON")
	}

	req.Body = io.NopCloser(bytes.NewReader(jsonData))
	req.ContentLength = int64(len(jsonData))
	req.Header.Set("Content-Type", "application/json")
}

func newJsonRequest(t *testing.T, method, target string, body any) *http.Request {
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	if body != nil {
		setRequestBodyAndHeader(t, req, body)
	}
	return req
}
