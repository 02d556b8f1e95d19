package apis

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/tansive/resourcesrv/internal/common/httpx"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/dberror"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db/models"
	"github.com/tidwall/gjson"
)

// CreateResourceReq is the body accepted by POST /resources.
type CreateResourceReq struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      string  `json:"status"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate reports the first failing field as a 400 error.
func (req *CreateResourceReq) Validate() error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		field := fieldLabel(fe.Field())
		switch fe.Tag() {
		case "required":
			return httpx.ErrInvalidRequest(field + " is required")
		default:
			return httpx.ErrInvalidRequest(field + " is invalid")
		}
	}
	return httpx.ErrInvalidRequest()
}

// ResourceInput converts the request to repository input. Empty optional
// strings are stored as NULL.
func (req *CreateResourceReq) ResourceInput() *models.ResourceInput {
	return &models.ResourceInput{
		Name:        req.Name,
		Description: nullIfEmpty(req.Description),
		Category:    nullIfEmpty(req.Category),
		Status:      req.Status,
	}
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

var patchFields = []string{"name", "description", "category", "status"}

// parseResourcePatch distinguishes absent, null and string values for each
// updatable field of the body.
func parseResourcePatch(body []byte) (models.ResourcePatch, error) {
	var patch models.ResourcePatch
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return patch, httpx.ErrUnableToParseReqData()
	}
	targets := []*models.Optional{&patch.Name, &patch.Description, &patch.Category, &patch.Status}
	for i, field := range patchFields {
		v := doc.Get(field)
		if !v.Exists() {
			continue
		}
		switch v.Type {
		case gjson.Null:
			*targets[i] = models.Null()
		case gjson.String:
			*targets[i] = models.Set(v.String())
		default:
			return patch, httpx.ErrInvalidRequest(fieldLabel(field) + " must be a string")
		}
	}
	return patch, nil
}

// resourceIdFromRequest parses the {id} URL parameter. Anything that is not a
// positive integer cannot name a resource.
func resourceIdFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ToHttpxError(dberror.ErrResourceNotFound)
	}
	return id, nil
}

func filterFromRequest(r *http.Request) models.ResourceFilter {
	q := r.URL.Query()
	return models.ResourceFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}
}
