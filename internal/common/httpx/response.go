package httpx

import (
	"context"
	"net/http"

	json "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

// SendJsonRsp writes rsp as a JSON body with the given status code. An
// optional location is set as the Location header.
func SendJsonRsp(ctx context.Context, w http.ResponseWriter, statusCode int, rsp any, location ...string) {
	if w == nil {
		return
	}
	rspJson, err := json.Marshal(rsp)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to marshal response")
		ErrApplicationError("Unable to encode response").Send(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}
	w.WriteHeader(statusCode)
	if _, err := w.Write(rspJson); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to write response")
	}
}
