package portfoliosdk

import (
	"net/http"
	"strings"
	"time"
)

// Client is a typed HTTP client for the portfolio allocation service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a service client with a sane default timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
