package apis

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/common/httpx"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/models"
)

type CreateResourceRsp struct {
	models.Resource
	Message string `json:"message"`
}

type ListResourcesRsp struct {
	Data  []models.Resource `json:"data"`
	Count int               `json:"count"`
}

type UpdateResourceRsp struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

type MessageRsp struct {
	Message string `json:"message"`
}

type resourceHandler struct {
	repo db.ResourceManager
}

// Create a new resource
func (h *resourceHandler) createResource(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	var req CreateResourceReq
	if err := httpx.GetRequestData(r, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err := h.repo.CreateResource(ctx, req.ResourceInput())
	if err != nil {
		return nil, ToHttpxError(err)
	}
	log.Ctx(ctx).Info().Int64("id", res.ID).Msg("resource created")

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   strings.TrimRight(r.URL.Path, "/") + "/" + strconv.FormatInt(res.ID, 10),
		Response: &CreateResourceRsp{
			Resource: *res,
			Message:  "Resource created successfully",
		},
	}, nil
}

func (h *resourceHandler) listResources(r *http.Request) (*httpx.Response, error) {
	resources, err := h.repo.ListResources(r.Context(), filterFromRequest(r))
	if err != nil {
		return nil, ToHttpxError(err)
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: &ListResourcesRsp{
			Data:  resources,
			Count: len(resources),
		},
	}, nil
}

func (h *resourceHandler) getResource(r *http.Request) (*httpx.Response, error) {
	id, err := resourceIdFromRequest(r)
	if err != nil {
		return nil, err
	}
	res, appErr := h.repo.GetResource(r.Context(), id)
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   res,
	}, nil
}

// Update the supplied fields of a resource
func (h *resourceHandler) updateResource(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	id, err := resourceIdFromRequest(r)
	if err != nil {
		return nil, err
	}
	body, err := httpx.ReadRequestBody(r)
	if err != nil {
		return nil, err
	}
	patch, err := parseResourcePatch(body)
	if err != nil {
		return nil, err
	}

	changes, appErr := h.repo.UpdateResource(ctx, id, patch)
	if appErr != nil {
		return nil, ToHttpxError(appErr)
	}
	log.Ctx(ctx).Info().Int64("id", id).Int64("changes", changes).Msg("resource updated")

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: &UpdateResourceRsp{
			Message: "Resource updated successfully",
			Changes: changes,
		},
	}, nil
}

func (h *resourceHandler) deleteResource(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	id, err := resourceIdFromRequest(r)
	if err != nil {
		return nil, err
	}
	if appErr := h.repo.DeleteResource(ctx, id); appErr != nil {
		return nil, ToHttpxError(appErr)
	}
	log.Ctx(ctx).Info().Int64("id", id).Msg("resource deleted")

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   &MessageRsp{Message: "Resource deleted successfully"},
	}, nil
}
