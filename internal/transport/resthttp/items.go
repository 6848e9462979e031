package resthttp

import (
	"context"
	"net/http"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// CreateItem creates a document under collLink.
func (c *Client) CreateItem(ctx context.Context, collLink string, doc map[string]any) (map[string]any, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPost,
		path:         "/" + collLink + "/docs",
		resourceType: "docs",
		resourceLink: collLink,
		body:         doc,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// UpsertItem creates or replaces a document under collLink.
func (c *Client) UpsertItem(ctx context.Context, collLink string, doc map[string]any) (map[string]any, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPost,
		path:         "/" + collLink + "/docs",
		resourceType: "docs",
		resourceLink: collLink,
		body:         doc,
		isUpsert:     true,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReplaceItem replaces the document addressed by docLink.
func (c *Client) ReplaceItem(ctx context.Context, docLink string, doc map[string]any) (map[string]any, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPut,
		path:         "/" + docLink,
		resourceType: "docs",
		resourceLink: docLink,
		body:         doc,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReadItem reads the document addressed by docLink.
func (c *Client) ReadItem(ctx context.Context, docLink string) (map[string]any, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodGet,
		path:         "/" + docLink,
		resourceType: "docs",
		resourceLink: docLink,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReadItems reads the document feed of the container addressed by collLink.
func (c *Client) ReadItems(ctx context.Context, collLink string, opts *transport.FeedOptions) ([]map[string]any, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodGet,
		path:         "/" + collLink + "/docs",
		resourceType: "docs",
		resourceLink: collLink,
		feedOpts:     opts,
	})
	if err != nil {
		return nil, err
	}
	return decodeFeed(body, transport.FeedKeyDocuments)
}

// QueryItems queries the document feed of the container addressed by
// collLink, optionally scoped to a single partition key.
func (c *Client) QueryItems(ctx context.Context, collLink string, query transport.Query, opts *transport.FeedOptions, partitionKey string) ([]map[string]any, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPost,
		path:         "/" + collLink + "/docs",
		resourceType: "docs",
		resourceLink: collLink,
		body:         query,
		isQuery:      true,
		feedOpts:     opts,
		partitionKey: partitionKey,
	})
	if err != nil {
		return nil, err
	}
	return decodeFeed(body, transport.FeedKeyDocuments)
}

// DeleteItem deletes the document addressed by docLink.
func (c *Client) DeleteItem(ctx context.Context, docLink string) error {
	_, err := c.do(ctx, &request{
		method:       http.MethodDelete,
		path:         "/" + docLink,
		resourceType: "docs",
		resourceLink: docLink,
	})
	return err
}
