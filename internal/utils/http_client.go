package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://example.com", 10*time.Second)
//	resp, err := client.R().Get("/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that resolves relative request paths
// against baseURL, gives up on a request after timeout and asks for JSON
// responses.
//
// A trailing slash on baseURL is dropped so that paths such as "/{db}" join
// cleanly. An empty baseURL leaves the client usable with absolute URLs only.
// A non-positive timeout leaves the client without a deadline; callers are
// then expected to bound requests through their context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
