package utils

import (
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request identifier so that client log lines
// can be matched with server log lines.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that stamps every outgoing request with
// a fresh [RequestIDHeader] and logs each completed request and each
// transport failure to log.
//
// Each call returns an independent client with its own configuration and
// connection pool.
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://api.example.com/users")
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New()

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, uuid.NewString())
		}
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("http request completed")
		return nil
	})

	client.OnError(func(r *resty.Request, err error) {
		log.Err(err).
			Str("method", r.Method).
			Str("url", r.URL).
			Str("request_id", r.Header.Get(RequestIDHeader)).
			Msg("http request failed")
	})

	return &HTTPClient{Client: client}
}
