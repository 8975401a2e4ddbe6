package checkoutclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MarcGrol/storyfunnel/lib/myerrors"
	"github.com/MarcGrol/storyfunnel/lib/myhttpclient"
)

const (
	clientInfo = "storyfunnel-go"
)

type createPaymentRequest struct {
	Email string `json:"email"`
}

type createPaymentResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

type remoteSessionCreator struct {
	sender   myhttpclient.HTTPSender
	endpoint string
	anonKey  string
}

func NewRemoteSessionCreator(cfg Config, sender myhttpclient.HTTPSender) SessionCreator {
	return &remoteSessionCreator{
		sender:   sender,
		endpoint: cfg.Endpoint(),
		anonKey:  cfg.BackingStoreAnonKey,
	}
}

// CreateSession makes a single attempt; retrying is up to the visitor.
func (r *remoteSessionCreator) CreateSession(c context.Context, email string) (string, error) {
	body, err := json.Marshal(createPaymentRequest{Email: email})
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error marshalling request: %s", err))
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+r.anonKey)
	headers.Set("apikey", r.anonKey)
	headers.Set("x-client-info", clientInfo)

	status, respBody, err := r.sender.Send(c, http.MethodPost, r.endpoint, headers, body)
	if err != nil {
		return "", myerrors.NewUnavailableError(err)
	}

	resp := createPaymentResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return "", myerrors.NewUpstreamError(fmt.Errorf("error parsing response (status %d): %s", status, err))
	}

	if status < 200 || status >= 300 {
		return "", myerrors.NewUpstreamError(fmt.Errorf("%s returned %d: %s", functionName, status, resp.Error))
	}
	if resp.Error != "" {
		return "", myerrors.NewUpstreamError(fmt.Errorf("%s: %s", functionName, resp.Error))
	}

	return resp.URL, nil
}
