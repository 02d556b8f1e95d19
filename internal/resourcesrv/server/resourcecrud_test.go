package server

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func createResource(t *testing.T, s *ResourceServer, body string) int64 {
	t.Helper()
	rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPost, "/api/resources", body))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return gjson.Get(rr.Body.String(), "id").Int()
}

func TestCreateResource(t *testing.T) {
	s := newTestServer(t)

	body, err := sjson.Set(`{}`, "name", "Test Resource")
	require.NoError(t, err)
	body, _ = sjson.Set(body, "description", "Test Description")
	body, _ = sjson.Set(body, "category", "electronics")
	body, _ = sjson.Set(body, "status", "active")

	rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPost, "/api/resources", body))
	assert.Equal(t, http.StatusCreated, rr.Code)
	checkHeader(t, rr.Header())

	rsp := gjson.Parse(rr.Body.String())
	id := rsp.Get("id").Int()
	assert.Greater(t, id, int64(0))
	assert.Equal(t, "Test Resource", rsp.Get("name").String())
	assert.Equal(t, "Test Description", rsp.Get("description").String())
	assert.Equal(t, "electronics", rsp.Get("category").String())
	assert.Equal(t, "active", rsp.Get("status").String())
	assert.Equal(t, "Resource created successfully", rsp.Get("message").String())
	assert.True(t, rsp.Get("created_at").Exists())
	assert.Equal(t, "/api/resources/"+strconv.FormatInt(id, 10), rr.Header().Get("Location"))

	t.Run("defaults", func(t *testing.T) {
		rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPost, "/api/resources", `{"name":"Minimal Resource"}`))
		require.Equal(t, http.StatusCreated, rr.Code)
		rsp := gjson.Parse(rr.Body.String())
		assert.Equal(t, "active", rsp.Get("status").String())
		assert.Equal(t, gjson.Null, rsp.Get("description").Type)
		assert.Equal(t, gjson.Null, rsp.Get("category").Type)
	})

	t.Run("missing name", func(t *testing.T) {
		for _, body := range []string{`{"description":"No name provided"}`, `{"name":""}`, ``} {
			rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPost, "/api/resources", body))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			checkHeader(t, rr.Header())
			assert.Equal(t, "Name is required", gjson.Get(rr.Body.String(), "error").String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPost, "/api/resources", `{"name":`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("form body", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, "/api/resources", strings.NewReader("name=Form+Resource&category=tools"))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := executeTestRequest(t, s, req)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Form Resource", gjson.Get(rr.Body.String(), "name").String())
		assert.Equal(t, "tools", gjson.Get(rr.Body.String(), "category").String())
	})
}

func TestListResources(t *testing.T) {
	s := newTestServer(t)
	createResource(t, s, `{"name":"Laptop","description":"Dell XPS 15","category":"electronics","status":"active"}`)
	createResource(t, s, `{"name":"Phone","description":"iPhone 15","category":"electronics","status":"inactive"}`)
	createResource(t, s, `{"name":"Book","description":"TypeScript Guide","category":"books","status":"active"}`)

	tests := []struct {
		query string
		names []string
	}{
		{"", []string{"Book", "Phone", "Laptop"}},
		{"?category=electronics", []string{"Phone", "Laptop"}},
		{"?status=active", []string{"Book", "Laptop"}},
		{"?name=Laptop", []string{"Laptop"}},
		{"?name=o", []string{"Book", "Phone", "Laptop"}},
		{"?category=electronics&status=active", []string{"Laptop"}},
		{"?category=furniture", []string{}},
	}
	for _, tt := range tests {
		t.Run("list"+tt.query, func(t *testing.T) {
			rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodGet, "/api/resources"+tt.query, nil))
			assert.Equal(t, http.StatusOK, rr.Code)
			checkHeader(t, rr.Header())
			rsp := gjson.Parse(rr.Body.String())
			assert.True(t, rsp.Get("data").IsArray())
			assert.Equal(t, int64(len(tt.names)), rsp.Get("count").Int())
			got := []string{}
			for _, n := range rsp.Get("data.#.name").Array() {
				got = append(got, n.String())
			}
			assert.Equal(t, tt.names, got)
		})
	}
}

func TestGetResource(t *testing.T) {
	s := newTestServer(t)
	id := createResource(t, s, `{"name":"Single Resource","category":"test"}`)

	rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodGet, "/api/resources/"+strconv.FormatInt(id, 10), nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	checkHeader(t, rr.Header())
	rsp := gjson.Parse(rr.Body.String())
	assert.Equal(t, id, rsp.Get("id").Int())
	assert.Equal(t, "Single Resource", rsp.Get("name").String())
	assert.Equal(t, "test", rsp.Get("category").String())
	assert.False(t, rsp.Get("message").Exists())

	for _, target := range []string{"/api/resources/99999", "/api/resources/abc", "/api/resources/0", "/api/resources/-1"} {
		rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, target)
		compareJson(t, map[string]any{"result": 0, "error": "Resource not found"}, rr.Body.String())
	}
}

func TestUpdateResource(t *testing.T) {
	s := newTestServer(t)
	id := createResource(t, s, `{"name":"Original Name","description":"Original Description","category":"original"}`)
	target := "/api/resources/" + strconv.FormatInt(id, 10)

	before := executeTestRequest(t, s, newJsonRequest(t, http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, before.Code)

	rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPut, target, `{"name":"Updated Name","status":"inactive"}`))
	assert.Equal(t, http.StatusOK, rr.Code)
	checkHeader(t, rr.Header())
	compareJson(t, map[string]any{"message": "Resource updated successfully", "changes": 1}, rr.Body.String())

	after := executeTestRequest(t, s, newJsonRequest(t, http.MethodGet, target, nil))
	rsp := gjson.Parse(after.Body.String())
	assert.Equal(t, "Updated Name", rsp.Get("name").String())
	assert.Equal(t, "Original Description", rsp.Get("description").String())
	assert.Equal(t, "original", rsp.Get("category").String())
	assert.Equal(t, "inactive", rsp.Get("status").String())
	assert.Equal(t, gjson.Get(before.Body.String(), "created_at").String(), rsp.Get("created_at").String())

	t.Run("no fields", func(t *testing.T) {
		rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPut, target, `{}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "No fields to update", gjson.Get(rr.Body.String(), "error").String())
	})

	t.Run("null clears description", func(t *testing.T) {
		rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPut, target, `{"description":null}`))
		require.Equal(t, http.StatusOK, rr.Code)
		got := executeTestRequest(t, s, newJsonRequest(t, http.MethodGet, target, nil))
		assert.Equal(t, gjson.Null, gjson.Get(got.Body.String(), "description").Type)
	})

	t.Run("empty name", func(t *testing.T) {
		rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPut, target, `{"name":""}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing resource", func(t *testing.T) {
		for _, body := range []string{`{"name":"Updated Name"}`, `{}`} {
			rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodPut, "/api/resources/99999", body))
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Resource not found", gjson.Get(rr.Body.String(), "error").String())
		}
	})

	t.Run("form body", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPut, target, strings.NewReader("status=archived"))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := executeTestRequest(t, s, req)
		require.Equal(t, http.StatusOK, rr.Code)
		got := executeTestRequest(t, s, newJsonRequest(t, http.MethodGet, target, nil))
		assert.Equal(t, "archived", gjson.Get(got.Body.String(), "status").String())
	})
}

func TestDeleteResource(t *testing.T) {
	s := newTestServer(t)
	id := createResource(t, s, `{"name":"To Be Deleted"}`)
	target := "/api/resources/" + strconv.FormatInt(id, 10)

	rr := executeTestRequest(t, s, newJsonRequest(t, http.MethodDelete, target, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	checkHeader(t, rr.Header())
	compareJson(t, map[string]any{"message": "Resource deleted successfully"}, rr.Body.String())

	rr = executeTestRequest(t, s, newJsonRequest(t, http.MethodGet, target, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = executeTestRequest(t, s, newJsonRequest(t, http.MethodDelete, target, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Resource not found", gjson.Get(rr.Body.String(), "error").String())
}
