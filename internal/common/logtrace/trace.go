package logtrace

import (
	"context"
	"os"
)

type requestIdContextKey string

// RequestIdKey is the context key the request logger stores the request id under.
const RequestIdKey = requestIdContextKey("requestId")

func RequestIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	r, ok := ctx.Value(RequestIdKey).(string)
	if !ok {
		return ""
	}
	return r
}

// IsTraceEnabled reports whether the route table should be dumped at startup.
func IsTraceEnabled() bool {
	return os.Getenv("RESOURCESRV_TRACE") != ""
}
