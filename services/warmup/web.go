package warmup

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/storyfunnel/lib/mycontext"
	"github.com/MarcGrol/storyfunnel/lib/myerrors"
	"github.com/MarcGrol/storyfunnel/lib/myhttp"
	"github.com/MarcGrol/storyfunnel/lib/mylog"
	"github.com/MarcGrol/storyfunnel/services/checkoutstripe"
)

const (
	WarmupPath = "/_ah/warmup"
)

type webService struct {
	logger     mylog.Logger
	loadConfig func() checkoutstripe.Config
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(loadConfig func() checkoutstripe.Config) *webService {
	return &webService{
		logger:     mylog.New("warmup"),
		loadConfig: loadConfig,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc(WarmupPath, s.warmupPage()).Methods(http.MethodGet)

	return nil
}

// warmupPage reports 503 as long as the checkout cannot reach the payment processor.
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		missing := s.loadConfig().Missing()
		if len(missing) > 0 {
			responseWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
