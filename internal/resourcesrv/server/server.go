package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/common/httpx"
	"github.com/tansive/resourcesrv/internal/common/logtrace"
	commonmiddleware "github.com/tansive/resourcesrv/internal/common/middleware"
	"github.com/tansive/resourcesrv/internal/resourcesrv/apis"
	"github.com/tansive/resourcesrv/internal/resourcesrv/config"
	"github.com/tansive/resourcesrv/internal/resourcesrv/db"
)

const (
	ServerVersion = "Resource Server: 0.1.0"
	ApiVersion    = "v1"
)

type ResourceServer struct {
	Router *chi.Mux
	repo   db.ResourceManager
}

func CreateNewServer(repo db.ResourceManager) (*ResourceServer, error) {
	if repo == nil {
		return nil, fmt.Errorf("resource repository not configured")
	}
	s := &ResourceServer{
		Router: chi.NewRouter(),
		repo:   repo,
	}
	return s, nil
}

func (s *ResourceServer) MountHandlers() {
	s.Router.Use(commonmiddleware.RequestLogger)
	s.Router.Use(commonmiddleware.PanicHandler)
	if config.Config().HandleCORS {
		s.Router.Use(s.HandleCORS())
	}
	// must be set before mounting so that sub-routers inherit them
	s.Router.NotFound(routeNotFound)
	s.Router.MethodNotAllowed(routeNotFound)

	s.Router.Get("/", s.getIndex)
	s.Router.Get("/health", s.getHealth)
	s.Router.Get("/version", s.getVersion)

	if prefix := config.Config().APIPrefix; prefix != "" {
		s.Router.Route(prefix, s.mountResourceHandlers)
	} else {
		s.mountResourceHandlers(s.Router)
	}

	if logtrace.IsTraceEnabled() {
		//print all the routes in the router by transversing the tree and printing the patterns
		fmt.Println("Routes in resource router")
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			fmt.Printf("%s %s\n", method, route)
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			fmt.Printf("Logging err: %s\n", err.Error())
		}
	}
}

func (s *ResourceServer) mountResourceHandlers(r chi.Router) {
	apis.Router(r, s.repo)
}

// HandleCORS answers preflight requests and allows every origin.
func (s *ResourceServer) HandleCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", commonmiddleware.RequestIdHeader},
		ExposedHeaders: []string{"Location", commonmiddleware.RequestIdHeader},
		MaxAge:         300,
	})
}

type GetIndexRsp struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

func (s *ResourceServer) getIndex(w http.ResponseWriter, r *http.Request) {
	prefix := config.Config().APIPrefix
	endpoints := make(map[string]string)
	for route, desc := range apis.Endpoints() {
		method, path, _ := strings.Cut(route, " ")
		endpoints[method+" "+prefix+path] = desc
	}
	rsp := &GetIndexRsp{
		Message:   "Welcome to CRUD API",
		Endpoints: endpoints,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

type GetHealthRsp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *ResourceServer) getHealth(w http.ResponseWriter, r *http.Request) {
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, &GetHealthRsp{
		Status:  "OK",
		Message: "Server is running",
	})
}

type GetVersionRsp struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

func (s *ResourceServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &GetVersionRsp{
		ServerVersion: ServerVersion,
		ApiVersion:    ApiVersion,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("route not found")
	httpx.ErrRouteNotFound().Send(w)
}
