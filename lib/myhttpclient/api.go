package myhttpclient

import (
	"context"
	"net/http"
	"time"
)

type HTTPSender interface {
	Send(c context.Context, method string, url string, headers http.Header, body []byte) (int, []byte, error)
}

func New(timeout time.Duration) HTTPSender {
	return newJSONHTTPClient(timeout)
}
