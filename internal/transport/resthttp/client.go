// Package resthttp implements the transport contract against the service's
// REST wire protocol: master-key request signing, feed envelopes, and the
// last-response-headers side channel.
package resthttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// apiVersion is the wire protocol version sent on every request.
const apiVersion = "2018-12-31"

// Config holds the configuration for the HTTP transport.
type Config struct {
	// Endpoint is the account endpoint URL.
	Endpoint string
	// Key is the base64-encoded account master key.
	Key string
	// HTTPClient optionally overrides the underlying HTTP client.
	HTTPClient *http.Client
	// Logger optionally overrides the logger; requests are logged at debug
	// level.
	Logger *zerolog.Logger
}

// Client is the HTTP transport context.
type Client struct {
	endpoint   string
	signer     *signer
	httpClient *http.Client
	logger     zerolog.Logger

	mu          sync.RWMutex
	lastHeaders http.Header
}

var _ transport.TransportContext = (*Client)(nil)

// NewClient creates a new HTTP transport for the given account.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("account key is required")
	}

	signer, err := newSigner(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account key: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		signer:     signer,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// LastResponseHeaders returns the headers of the most recently completed
// response.
func (c *Client) LastResponseHeaders() http.Header {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastHeaders
}

func (c *Client) setLastHeaders(headers http.Header) {
	c.mu.Lock()
	c.lastHeaders = headers.Clone()
	c.mu.Unlock()
}

// request describes one wire-level operation.
type request struct {
	method       string
	path         string
	resourceType string
	resourceLink string
	body         any
	isQuery      bool
	isUpsert     bool
	feedOpts     *transport.FeedOptions
	partitionKey string
}

// do executes the request, records the response headers, and returns the raw
// response body. Non-success statuses are mapped to *transport.Error.
func (c *Client) do(ctx context.Context, r *request) ([]byte, error) {
	var reqBody io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint+r.path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, r)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	c.setLastHeaders(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("cosmos request completed")

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) setHeaders(req *http.Request, r *request) {
	date := time.Now().UTC().Format(http.TimeFormat)
	req.Header.Set("Authorization", c.signer.sign(r.method, r.resourceType, r.resourceLink, date))
	req.Header.Set(transport.HeaderDate, date)
	req.Header.Set(transport.HeaderVersion, apiVersion)
	req.Header.Set("Accept", "application/json")

	switch {
	case r.isQuery:
		req.Header.Set("Content-Type", "application/query+json")
		req.Header.Set(transport.HeaderIsQuery, "true")
	case r.body != nil:
		req.Header.Set("Content-Type", "application/json")
	}
	if r.isUpsert {
		req.Header.Set(transport.HeaderIsUpsert, "true")
	}
	if r.partitionKey != "" {
		pk, _ := json.Marshal([]string{r.partitionKey})
		req.Header.Set(transport.HeaderPartitionKey, string(pk))
	}
	if r.feedOpts != nil {
		if r.feedOpts.MaxItemCount > 0 {
			req.Header.Set(transport.HeaderMaxItemCount, strconv.Itoa(r.feedOpts.MaxItemCount))
		}
		if r.feedOpts.SessionToken != "" {
			req.Header.Set(transport.HeaderSessionToken, r.feedOpts.SessionToken)
		}
	}
}

// serviceError is the error envelope the service returns on failures.
type serviceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(statusCode int, body []byte) error {
	var se serviceError
	if err := json.Unmarshal(body, &se); err == nil && se.Code != "" {
		return &transport.Error{StatusCode: statusCode, Code: se.Code, Message: se.Message}
	}
	return transport.NewError(statusCode, strings.TrimSpace(string(body)))
}

// decodeResource decodes a single-resource response body.
func decodeResource(body []byte) (map[string]any, error) {
	var resource map[string]any
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, fmt.Errorf("failed to decode resource: %w", err)
	}
	return resource, nil
}

// decodeFeed decodes a feed response body, extracting the entries under the
// given envelope key. A missing key decodes as an empty feed.
func decodeFeed(body []byte, key string) ([]map[string]any, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, nil
	}
	var entries []map[string]any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode feed entries: %w", err)
	}
	return entries, nil
}

func toProperties(entries []map[string]any) []transport.Properties {
	props := make([]transport.Properties, len(entries))
	for i, entry := range entries {
		props[i] = transport.Properties(entry)
	}
	return props
}
