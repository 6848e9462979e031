package cosmos

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
	"github.com/unifiedui/cosmos-client/internal/transport/resthttp"
)

// Client is the entry point to the object model. It owns one transport
// context and exposes database lifecycle operations.
type Client struct {
	tc transport.TransportContext
}

// ClientConfig holds the configuration for connecting a Client to an account.
type ClientConfig struct {
	// Endpoint is the account endpoint URL, e.g. "https://myaccount.documents.example.com".
	Endpoint string
	// Key is the base64-encoded account master key.
	Key string
	// HTTPClient optionally overrides the HTTP client used by the transport.
	HTTPClient *http.Client
	// Logger optionally overrides the transport's logger.
	Logger *zerolog.Logger
}

// NewClient creates a Client backed by the HTTP transport.
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	tc, err := resthttp.NewClient(&resthttp.Config{
		Endpoint:   cfg.Endpoint,
		Key:        cfg.Key,
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}
	return &Client{tc: tc}, nil
}

// NewClientWithTransport creates a Client on top of an existing transport
// context.
func NewClientWithTransport(tc transport.TransportContext) *Client {
	return &Client{tc: tc}
}

// CreateDatabaseOptions holds options for CreateDatabase.
type CreateDatabaseOptions struct {
	// FailIfExists makes CreateDatabase return the conflict failure when a
	// database with the given id already exists. When false (the default),
	// CreateDatabase returns a handle to the existing database instead.
	FailIfExists bool
}

// CreateDatabase creates a new database with the given id.
//
// When the database already exists the behavior depends on opts: with
// FailIfExists set the 409 conflict failure is returned, otherwise the
// existing database is fetched and returned, making create an upsert by
// default.
func (c *Client) CreateDatabase(ctx context.Context, id string, opts *CreateDatabaseOptions) (*Database, error) {
	props, err := c.tc.CreateDatabase(ctx, transport.Properties{"id": id})
	if err == nil {
		return newDatabase(c.tc, propString(props, "id"), props), nil
	}
	if !transport.IsConflict(err) {
		return nil, err
	}
	if opts != nil && opts.FailIfExists {
		return nil, err
	}
	return c.GetDatabase(ctx, id)
}

// GetDatabase retrieves the existing database with the given id. The returned
// handle carries a properties snapshot from this read.
func (c *Client) GetDatabase(ctx context.Context, id string) (*Database, error) {
	props, err := c.tc.ReadDatabase(ctx, databaseLink(id))
	if err != nil {
		return nil, err
	}
	return newDatabase(c.tc, id, props), nil
}

// GetDatabaseProperties returns the raw properties of the database with the
// given id.
func (c *Client) GetDatabaseProperties(ctx context.Context, id string) (transport.Properties, error) {
	return c.tc.ReadDatabase(ctx, databaseLink(id))
}

// ListDatabases returns an iterator over all databases in the account. The
// remote call happens on the first Next; the sequence is one-shot and not
// restartable. An account with no databases yields an empty sequence.
func (c *Client) ListDatabases(ctx context.Context) *DatabaseIterator {
	return newDatabaseIterator(c.tc, func() ([]transport.Properties, error) {
		return c.tc.ReadDatabases(ctx)
	})
}

// QueryDatabases returns an iterator over the databases matching the query.
// The sequence is one-shot and not restartable.
func (c *Client) QueryDatabases(ctx context.Context, query transport.Query) *DatabaseIterator {
	return newDatabaseIterator(c.tc, func() ([]transport.Properties, error) {
		return c.tc.QueryDatabases(ctx, query)
	})
}

// DeleteDatabase deletes the database with the given id. Remote failures,
// including 404 for a nonexistent database, are returned unchanged.
func (c *Client) DeleteDatabase(ctx context.Context, id string) error {
	return c.tc.DeleteDatabase(ctx, databaseLink(id))
}

// propString returns the string value of a property, or "" if absent.
func propString(props transport.Properties, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}
