package apis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tansive/resourcesrv/internal/common/httpx"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/models"
)

func TestCreateResourceReqValidate(t *testing.T) {
	req := &CreateResourceReq{}
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*httpx.Error).StatusCode)
	assert.Equal(t, "Name is required", err.Error())

	req.Name = "Laptop"
	assert.NoError(t, req.Validate())
}

func TestCreateResourceReqInput(t *testing.T) {
	empty := ""
	books := "books"
	req := &CreateResourceReq{Name: "Book", Description: &empty, Category: &books}
	in := req.ResourceInput()
	assert.Equal(t, "Book", in.Name)
	assert.Nil(t, in.Description)
	require.NotNil(t, in.Category)
	assert.Equal(t, "books", *in.Category)
	assert.Equal(t, "", in.Status)
}

func TestParseResourcePatch(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    models.ResourcePatch
		wantErr bool
	}{
		{
			name: "empty object",
			body: `{}`,
			want: models.ResourcePatch{},
		},
		{
			name: "unknown fields are ignored",
			body: `{"colour":"red"}`,
			want: models.ResourcePatch{},
		},
		{
			name: "string and null",
			body: `{"name":"X","description":null}`,
			want: models.ResourcePatch{Name: models.Set("X"), Description: models.Null()},
		},
		{
			name: "empty string is present",
			body: `{"status":""}`,
			want: models.ResourcePatch{Status: models.Set("")},
		},
		{
			name:    "number rejected",
			body:    `{"category":5}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			body:    `["name"]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResourcePatch([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, err.(*httpx.Error).StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourceIdFromRequest(t *testing.T) {
	tests := []struct {
		param   string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/resources/"+tt.param, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.param)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			id, err := resourceIdFromRequest(r)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusNotFound, err.(*httpx.Error).StatusCode)
				assert.Equal(t, "Resource not found", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
