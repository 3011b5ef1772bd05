package jobs

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultAPIURL = "https://v2xv23a4zk.execute-api.us-east-1.amazonaws.com/dev/jobs"
	userAgent     = "lex-job-assistant"
	// Max amount of the payload written to debug logs.
	logBodyLimit = 2048
)

type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New returns a client for the recommendation API. A zero timeout leaves the
// request bounded only by the caller's context.
func New(logger *zap.Logger, timeout time.Duration) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		APIURL: DefaultAPIURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// Recommendations fetches the current recommendation list. A non-200 answer is
// reported as *StatusError.
func (c *Client) Recommendations(ctx context.Context) (*Listings, error) {
	return c.recommendations(ctx)
}
