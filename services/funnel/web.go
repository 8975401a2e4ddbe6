package funnel

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/storyfunnel/lib/mycontext"
	"github.com/MarcGrol/storyfunnel/lib/myerrors"
	"github.com/MarcGrol/storyfunnel/lib/myhttp"
	"github.com/MarcGrol/storyfunnel/lib/mylog"
	"github.com/MarcGrol/storyfunnel/services/reveal"
)

const (
	FunnelPath         = "/"
	PaymentSuccessPath = "/payment-success"
)

//go:embed templates
var templateFolder embed.FS
var (
	funnelPageTemplate         *template.Template
	paymentSuccessPageTemplate *template.Template
)

func init() {
	funnelPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/funnel.html"))
	paymentSuccessPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/payment_success.html"))
}

type webService struct {
	logger       mylog.Logger
	opts         reveal.Options
	checkoutPath string
	formPath     string
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(opts reveal.Options, checkoutPath string, formPath string) *webService {
	return &webService{
		logger:       mylog.New("funnel"),
		opts:         opts,
		checkoutPath: checkoutPath,
		formPath:     formPath,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc(FunnelPath, s.funnelPage()).Methods("GET")
	router.HandleFunc(PaymentSuccessPath, s.paymentSuccessPage()).Methods("GET")

	return nil
}

func (s *webService) funnelPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		state, err := initialState(s.opts, firstScreen)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
		s.logger.Log(c, "", mylog.SeverityDebug, "Render funnel with sections %v revealed", state.Revealed())

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = funnelPageTemplate.Execute(w, newPageData(state, s.opts, s.checkoutPath, s.formPath))
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) paymentSuccessPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := paymentSuccessPageTemplate.Execute(w, struct{ ReturnPath string }{ReturnPath: FunnelPath})
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}
