package myhttp

import (
	"fmt"
	"net/http"
)

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// Origin returns the Origin header as sent, falling back to the address the request was made on.
func Origin(r *http.Request) string {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return HostnameWithScheme(r)
	}
	return origin
}
