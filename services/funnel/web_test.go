package funnel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/storyfunnel/services/reveal"
)

func TestFunnelWebService(t *testing.T) {

	t.Run("Funnel page", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "text/html; charset=utf-8", response.Header().Get("Content-Type"))
		body := response.Body.String()
		assert.Equal(t, 6, strings.Count(body, "<section "))
		assert.Contains(t, body, `data-section="0" class="story-reveal in-view"`)
		for _, index := range []string{"1", "2", "3", "4", "5"} {
			assert.Contains(t, body, `data-section="`+index+`" class="story-reveal"`)
		}
		assert.Equal(t, 1, strings.Count(body, `type="email"`))
		assert.Equal(t, 1, strings.Count(body, `<button`))
		assert.Contains(t, body, `action="/checkout"`)
		assert.Contains(t, body, "/functions/v1/create-payment")
		assert.Contains(t, body, "0.3")
		assert.Contains(t, body, "-50px 0px -50px 0px")
		assert.Contains(t, body, `window.open(data.url, "_blank")`)
	})

	t.Run("Payment success page", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/payment-success", nil)
		require.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		body := response.Body.String()
		assert.Contains(t, body, "The Wisdom Has Been Passed")
		assert.Equal(t, 1, strings.Count(body, "<a "))
		assert.Contains(t, body, `href="/"`)
	})
}

func TestRender(t *testing.T) {

	t.Run("Classes follow reveal state", func(t *testing.T) {
		// given
		tracker := reveal.NewTracker(len(sections), reveal.DefaultOptions())
		tracker.OnIntersection(2, true)
		tracker.OnIntersection(4, true)
		tracker.OnIntersection(4, false)

		// when
		data := newPageData(tracker, reveal.DefaultOptions(), "/pay", "/form")

		// then
		require.Len(t, data.Sections, 6)
		for _, s := range data.Sections {
			if s.Index == 2 || s.Index == 4 {
				assert.Equal(t, "story-reveal in-view", s.Classes)
			} else {
				assert.Equal(t, "story-reveal", s.Classes)
			}
		}
		assert.Equal(t, "/pay", data.CheckoutPath)
		assert.Equal(t, "/form", data.FormPath)
	})

	t.Run("Only final section holds checkout", func(t *testing.T) {
		for i, s := range sections {
			assert.Equal(t, i, s.Index)
			assert.Equal(t, i == len(sections)-1, s.Checkout)
		}
	})

	t.Run("Initial state reveals the first screen only", func(t *testing.T) {
		// when
		tracker, err := initialState(reveal.DefaultOptions(), firstScreen)

		// then
		require.NoError(t, err)
		assert.Equal(t, []int{0}, tracker.Revealed())
	})

	t.Run("Initial state is stopped", func(t *testing.T) {
		// given
		tracker, err := initialState(reveal.DefaultOptions(), firstScreen)
		require.NoError(t, err)

		// when
		tracker.OnIntersection(3, true)

		// then
		assert.False(t, tracker.IsRevealed(3))
	})

	t.Run("Css margin", func(t *testing.T) {
		assert.Equal(t, "-50px 0px -50px 0px", cssMargin(reveal.DefaultOptions().RootMargin))
		assert.Equal(t, "10px 1.5px 0px 0px", cssMargin(reveal.Margin{Top: 10, Right: 1.5}))
	})
}

func setup(t *testing.T) *mux.Router {
	router := mux.NewRouter()
	sut := NewWebService(reveal.DefaultOptions(), "/functions/v1/create-payment", "/checkout")
	err := sut.RegisterEndpoints(context.TODO(), router)
	require.NoError(t, err)
	return router
}
