package ytstats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mstolbov/ytstats/logger"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Ensure http.Client implements HTTPClient
var _ HTTPClient = (*http.Client)(nil)

// Client fetches video statistics from the YouTube Data API v3. It
// holds only immutable configuration and is safe for concurrent use as
// long as its HTTPClient is.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	logger     logger.Logger
}

type Option func(*Client)

func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithBaseURL overrides the provider endpoint, used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// NewClient creates a stats client with the given API key. An empty
// key fails with ErrMissingAPIKey before any network call.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetStats resolves the video ID from rawURL and fetches its
// statistics in a single one-shot round trip. No retries, no caching.
func (c *Client) GetStats(ctx context.Context, rawURL string) (*Stats, error) {
	id, err := ParseVideoURL(rawURL)
	if err != nil {
		return nil, err
	}
	return c.GetStatsByID(ctx, id)
}

// GetStatsByID fetches statistics for an already resolved video ID.
func (c *Client) GetStatsByID(ctx context.Context, id VideoID) (*Stats, error) {
	q := url.Values{}
	q.Set("part", "snippet,statistics")
	q.Set("id", id.String())
	q.Set("key", c.apiKey)
	endpoint := c.baseURL + "/videos?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("video_id", id.String()).Debug("Fetching video statistics")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.apiError(resp)
	}

	var payload videoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Join(ErrDecodeResponse, err)
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, id)
	}
	return newStats(id, payload.Items[0])
}

// apiError maps a non-success response to APIError, pulling status and
// reason out of the provider error body when it is present.
func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var payload apiErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		apiErr.Message = payload.Error.Message
		if len(payload.Error.Errors) > 0 {
			apiErr.Reason = payload.Error.Errors[0].Reason
		}
	}

	c.logger.WithFields(logger.Fields{
		"status": apiErr.StatusCode,
		"reason": apiErr.Reason,
	}).Warn("Provider returned an error")

	return apiErr
}
