package resthttp

import (
	"context"
	"net/http"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// CreateDatabase creates a database from the given definition.
func (c *Client) CreateDatabase(ctx context.Context, def transport.Properties) (transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPost,
		path:         "/dbs",
		resourceType: "dbs",
		body:         def,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReadDatabase reads the database addressed by dbLink.
func (c *Client) ReadDatabase(ctx context.Context, dbLink string) (transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodGet,
		path:         "/" + dbLink,
		resourceType: "dbs",
		resourceLink: dbLink,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReadDatabases reads the account's database feed.
func (c *Client) ReadDatabases(ctx context.Context) ([]transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodGet,
		path:         "/dbs",
		resourceType: "dbs",
	})
	if err != nil {
		return nil, err
	}
	entries, err := decodeFeed(body, transport.FeedKeyDatabases)
	if err != nil {
		return nil, err
	}
	return toProperties(entries), nil
}

// QueryDatabases queries the account's database feed.
func (c *Client) QueryDatabases(ctx context.Context, query transport.Query) ([]transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPost,
		path:         "/dbs",
		resourceType: "dbs",
		body:         query,
		isQuery:      true,
	})
	if err != nil {
		return nil, err
	}
	entries, err := decodeFeed(body, transport.FeedKeyDatabases)
	if err != nil {
		return nil, err
	}
	return toProperties(entries), nil
}

// DeleteDatabase deletes the database addressed by dbLink.
func (c *Client) DeleteDatabase(ctx context.Context, dbLink string) error {
	_, err := c.do(ctx, &request{
		method:       http.MethodDelete,
		path:         "/" + dbLink,
		resourceType: "dbs",
		resourceLink: dbLink,
	})
	return err
}
