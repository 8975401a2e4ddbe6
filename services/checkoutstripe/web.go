package checkoutstripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/storyfunnel/lib/mycontext"
	"github.com/MarcGrol/storyfunnel/lib/myerrors"
	"github.com/MarcGrol/storyfunnel/lib/myhttp"
	"github.com/MarcGrol/storyfunnel/lib/mylog"
	"github.com/MarcGrol/storyfunnel/lib/mypublisher"
	"github.com/MarcGrol/storyfunnel/services/checkoutevents"
)

const (
	CreatePaymentPath = "/functions/v1/create-payment"
	CheckoutFormPath  = "/checkout"

	maxRequestBodySize = 1 << 20
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(loadConfig func() Config, newPayer PayerFactory, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("checkoutstripe")
	return &webService{
		logger:  logger,
		service: newService(logger, loadConfig, newPayer, publisher),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc(CreatePaymentPath, myhttp.WithCORS(s.createPaymentPage())).Methods(http.MethodPost)
	router.HandleFunc(CreatePaymentPath, myhttp.Preflight()).Methods(http.MethodOptions)

	// Plain html form submit for browsers without scripting
	router.HandleFunc(CheckoutFormPath, s.checkoutFormPage()).Methods(http.MethodPost)

	err := s.service.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

// createPaymentPage answers every failure with 500 and {"error": message}
func (s *webService) createPaymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		req := CreatePaymentRequest{}
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInternalError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		redirectURL, err := s.service.createCheckoutSession(c, myhttp.Origin(r), req.Email)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, CreatePaymentResponse{
			URL: redirectURL,
		})
	}
}

func (s *webService) checkoutFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		req, err := parseForm(w, r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		redirectURL, err := s.service.createCheckoutSession(c, myhttp.Origin(r), req.Email)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		if redirectURL == "" {
			redirectURL = "/"
		}
		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
	}
}

func parseForm(w http.ResponseWriter, r *http.Request) (CreatePaymentRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	err := r.ParseForm()
	if err != nil {
		return CreatePaymentRequest{}, myerrors.NewInvalidInputError(err)
	}

	req := CreatePaymentRequest{}
	err = formcodec.NewDecoder().Decode(&req, r.Form)
	if err != nil {
		return CreatePaymentRequest{}, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	return req, nil
}
