// Package apis exposes the resource repository over HTTP.
package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tansive/resourcesrv/internal/common/httpx"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db"
)

func resourceHandlers(h *resourceHandler) []httpx.ResponseHandlerParam {
	return []httpx.ResponseHandlerParam{
		{
			Method:  http.MethodPost,
			Path:    "/resources",
			Handler: h.createResource,
		},
		{
			Method:  http.MethodGet,
			Path:    "/resources",
			Handler: h.listResources,
		},
		{
			Method:  http.MethodGet,
			Path:    "/resources/{id}",
			Handler: h.getResource,
		},
		{
			Method:  http.MethodPut,
			Path:    "/resources/{id}",
			Handler: h.updateResource,
		},
		{
			Method:  http.MethodDelete,
			Path:    "/resources/{id}",
			Handler: h.deleteResource,
		},
	}
}

// Endpoints describes the routes registered by Router, keyed by
// "METHOD path" relative to the mount point.
func Endpoints() map[string]string {
	return map[string]string{
		"POST /resources":       "Create a new resource",
		"GET /resources":        "List all resources (supports filters: name, category, status)",
		"GET /resources/:id":    "Get a specific resource",
		"PUT /resources/:id":    "Update a resource",
		"DELETE /resources/:id": "Delete a resource",
	}
}

func Router(r chi.Router, repo db.ResourceManager) {
	h := &resourceHandler{repo: repo}
	for _, handler := range resourceHandlers(h) {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
}
