package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/common/httpx"
)

// PanicHandler turns a panicking handler into a 500 response. The
// http.ErrAbortHandler sentinel is re-raised so the server can drop the
// connection quietly.
func PanicHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Ctx(r.Context()).Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			httpx.ErrApplicationError("Unable to process request. Please try again later.").Send(w)
		}()
		next.ServeHTTP(w, r)
	})
}
