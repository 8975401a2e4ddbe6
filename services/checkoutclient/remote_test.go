package checkoutclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/storyfunnel/lib/myerrors"
	"github.com/MarcGrol/storyfunnel/lib/myhttpclient"
)

func TestCreateSession(t *testing.T) {

	t.Run("Returns url", func(t *testing.T) {
		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/functions/v1/create-payment", r.URL.Path)
			assert.Equal(t, "Bearer anon_123", r.Header.Get("Authorization"))
			assert.Equal(t, "anon_123", r.Header.Get("apikey"))
			assert.Equal(t, "storyfunnel-go", r.Header.Get("x-client-info"))
			assert.JSONEq(t, `{"email":"a@x.com"}`, string(body))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"url":"https://pay.example/cs_123"}`))
		}))
		defer server.Close()
		sut := newRemote(server.URL)

		// when
		url, err := sut.CreateSession(context.TODO(), "a@x.com")

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/cs_123", url)
	})

	t.Run("Error status", func(t *testing.T) {
		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Email is required"}`))
		}))
		defer server.Close()
		sut := newRemote(server.URL)

		// when
		_, err := sut.CreateSession(context.TODO(), "a@x.com")

		// then
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, myerrors.GetHTTPStatus(err))
		assert.Contains(t, err.Error(), "Email is required")
	})

	t.Run("Error payload with success status", func(t *testing.T) {
		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"No such price"}`))
		}))
		defer server.Close()
		sut := newRemote(server.URL)

		// when
		_, err := sut.CreateSession(context.TODO(), "a@x.com")

		// then
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, myerrors.GetHTTPStatus(err))
	})

	t.Run("Unparseable body", func(t *testing.T) {
		// setup
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		}))
		defer server.Close()
		sut := newRemote(server.URL)

		// when
		_, err := sut.CreateSession(context.TODO(), "a@x.com")

		// then
		assert.Equal(t, http.StatusBadGateway, myerrors.GetHTTPStatus(err))
	})

	t.Run("Unreachable", func(t *testing.T) {
		// setup
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()
		sut := newRemote(url)

		// when
		_, err := sut.CreateSession(context.TODO(), "a@x.com")

		// then
		assert.Equal(t, http.StatusServiceUnavailable, myerrors.GetHTTPStatus(err))
	})
}

func newRemote(baseURL string) SessionCreator {
	cfg := Config{
		BackingStoreURL:     baseURL,
		BackingStoreAnonKey: "anon_123",
	}
	return NewRemoteSessionCreator(cfg, myhttpclient.New(time.Second))
}

func TestWriters(t *testing.T) {

	t.Run("Opener prints url", func(t *testing.T) {
		buf := &strings.Builder{}

		err := NewWriterOpener(buf).Open("https://pay.example/cs_123")

		assert.NoError(t, err)
		assert.Equal(t, "Open https://pay.example/cs_123\n", buf.String())
	})

	t.Run("Notifier prints title and message", func(t *testing.T) {
		buf := &strings.Builder{}

		NewWriterNotifier(buf).Notify(context.TODO(), failureTitle, failureMessage)

		assert.Equal(t, "Payment error: Something went wrong starting your checkout. Please try again.\n", buf.String())
	})
}
