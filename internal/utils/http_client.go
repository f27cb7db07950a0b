package utils

import (
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// maxRedirects bounds how many 303 hops the client follows for one request.
const maxRedirects = 5

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// The client keeps cookies between requests, so the session cookie issued by
// POST /sessions is replayed on every later call, and it follows redirects
// the way a browser does (303 turns the next hop into a GET).
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// Each call returns an independent client with its own cookie jar,
// connection pool and configuration. A zero timeout leaves resty's default.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/comments?post_id=1")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))

	// cookiejar.New never fails with nil options.
	if jar, err := cookiejar.New(nil); err == nil {
		client.SetCookieJar(jar)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
