package httpx

import (
	"io"
	"mime"
	"net/http"
	"net/url"

	json "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/tansive/resourcesrv/internal/common/apperrors"
	"github.com/tidwall/gjson"
)

// MaxRequestBodySize caps the payload accepted by ReadRequestBody.
const MaxRequestBodySize = 1 << 20

// ReadRequestBody returns the request payload as a JSON document. Form-encoded
// payloads are converted to a flat object of string values. An empty body is
// returned as an empty object.
func ReadRequestBody(r *http.Request) ([]byte, error) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		return nil, ErrReqMethodNotSupported()
	}
	if r.Body == nil {
		return []byte("{}"), nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, MaxRequestBodySize))
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("unable to read request body")
		return nil, ErrUnableToReadRequest()
	}
	if len(body) == 0 {
		return []byte("{}"), nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		return formToJSON(body)
	}
	if !gjson.ValidBytes(body) {
		return nil, ErrUnableToParseReqData()
	}
	return body, nil
}

func formToJSON(body []byte) ([]byte, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, ErrUnableToParseReqData()
	}
	flat := make(map[string]string, len(values))
	for k := range values {
		flat[k] = values.Get(k)
	}
	b, err := json.Marshal(flat)
	if err != nil {
		return nil, ErrUnableToParseReqData()
	}
	return b, nil
}

// GetRequestData decodes the request payload into data.
func GetRequestData(r *http.Request, data any) error {
	body, err := ReadRequestBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, data); err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Msg("unable to decode request body")
		return ErrUnableToParseReqData()
	}
	return nil
}

type Response struct {
	StatusCode  int
	Location    string
	Response    any
	ContentType string
}

type RequestHandler func(r *http.Request) (*Response, error)

func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			if httperror, ok := err.(*Error); ok {
				httperror.Send(w)
			} else if appErr, ok := err.(apperrors.Error); ok {
				SendError(w, appErr)
			} else {
				ErrApplicationError(err.Error()).Send(w)
			}
			return
		}
		if rsp == nil {
			ErrApplicationError().Send(w)
			return
		}
		if rsp.ContentType == "" {
			rsp.ContentType = "application/json"
		}
		var location []string
		if rsp.Location != "" {
			location = append(location, rsp.Location)
		}
		if rsp.ContentType == "application/json" {
			SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response, location...)
		} else {
			ErrApplicationError("unsupported response type").Send(w)
		}
	})
}

type ResponseHandlerParam struct {
	Method  string
	Path    string
	Handler RequestHandler
}
