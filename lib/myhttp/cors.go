package myhttp

import "net/http"

const (
	allowedOrigins = "*"
	allowedHeaders = "authorization, x-client-info, apikey, content-type"
)

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
	w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
}

// WithCORS allows every origin to call the wrapped handler.
func WithCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)
		next(w, r)
	}
}

// Preflight answers a cross-origin pre-flight unconditionally: 200 with an empty body.
func Preflight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)
		w.WriteHeader(http.StatusOK)
	}
}
