package mycontext

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// CtxTraceContext is a context key for the trace context (used by mylog)
type CtxTraceContext struct{}

// ContextFromHTTPRequest derives from the request context and attaches the Cloud Trace id.
func ContextFromHTTPRequest(r *http.Request) context.Context {
	var trace string

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	traceContext := r.Header.Get("X-Cloud-Trace-Context")
	traceParts := strings.Split(traceContext, "/")

	if len(traceParts) > 0 && len(traceParts[0]) > 0 {
		trace = fmt.Sprintf("projects/%s/traces/%s", projectID, traceParts[0])
	}

	return WithTrace(r.Context(), trace)
}

func WithTrace(c context.Context, trace string) context.Context {
	return context.WithValue(c, CtxTraceContext{}, trace)
}

func TraceFromContext(c context.Context) string {
	trace, ok := c.Value(CtxTraceContext{}).(string)
	if !ok {
		return ""
	}
	return trace
}
