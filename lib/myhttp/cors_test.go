package myhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {

	t.Run("Preflight", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodOptions, "/anything", nil)
		response := httptest.NewRecorder()

		Preflight()(response, request)

		assert.Equal(t, 200, response.Code)
		assert.Empty(t, response.Body.String())
		assert.Equal(t, "*", response.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "authorization, x-client-info, apikey, content-type", response.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("Wrapped handler", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/anything", nil)
		response := httptest.NewRecorder()

		WithCORS(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})(response, request)

		assert.Equal(t, http.StatusTeapot, response.Code)
		assert.Equal(t, "*", response.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestOrigin(t *testing.T) {

	t.Run("Header verbatim", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", nil)
		request.Header.Set("Origin", "https://funnel.example")
		assert.Equal(t, "https://funnel.example", Origin(request))
	})

	t.Run("Fallback on host", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", nil)
		request.Host = "localhost:8888"
		assert.Equal(t, "http://localhost:8888", Origin(request))
	})
}
