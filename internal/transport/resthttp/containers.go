package resthttp

import (
	"context"
	"net/http"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// CreateContainer creates a container under dbLink from the given definition.
func (c *Client) CreateContainer(ctx context.Context, dbLink string, def transport.Properties) (transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPost,
		path:         "/" + dbLink + "/colls",
		resourceType: "colls",
		resourceLink: dbLink,
		body:         def,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReadContainer reads the container addressed by collLink.
func (c *Client) ReadContainer(ctx context.Context, collLink string) (transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodGet,
		path:         "/" + collLink,
		resourceType: "colls",
		resourceLink: collLink,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReadContainers reads the container feed of the database addressed by dbLink.
func (c *Client) ReadContainers(ctx context.Context, dbLink string) ([]transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodGet,
		path:         "/" + dbLink + "/colls",
		resourceType: "colls",
		resourceLink: dbLink,
	})
	if err != nil {
		return nil, err
	}
	entries, err := decodeFeed(body, transport.FeedKeyContainers)
	if err != nil {
		return nil, err
	}
	return toProperties(entries), nil
}

// ReplaceContainer replaces the definition of the container addressed by
// collLink.
func (c *Client) ReplaceContainer(ctx context.Context, collLink string, def transport.Properties) (transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPut,
		path:         "/" + collLink,
		resourceType: "colls",
		resourceLink: collLink,
		body:         def,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// DeleteContainer deletes the container addressed by collLink.
func (c *Client) DeleteContainer(ctx context.Context, collLink string) error {
	_, err := c.do(ctx, &request{
		method:       http.MethodDelete,
		path:         "/" + collLink,
		resourceType: "colls",
		resourceLink: collLink,
	})
	return err
}
