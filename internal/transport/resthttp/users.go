package resthttp

import (
	"context"
	"net/http"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// CreateUser creates a user under dbLink from the given definition.
func (c *Client) CreateUser(ctx context.Context, dbLink string, def transport.Properties) (transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodPost,
		path:         "/" + dbLink + "/users",
		resourceType: "users",
		resourceLink: dbLink,
		body:         def,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReadUser reads the user addressed by userLink.
func (c *Client) ReadUser(ctx context.Context, userLink string) (transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodGet,
		path:         "/" + userLink,
		resourceType: "users",
		resourceLink: userLink,
	})
	if err != nil {
		return nil, err
	}
	return decodeResource(body)
}

// ReadUsers reads the user feed of the database addressed by dbLink.
func (c *Client) ReadUsers(ctx context.Context, dbLink string) ([]transport.Properties, error) {
	body, err := c.do(ctx, &request{
		method:       http.MethodGet,
		path:         "/" + dbLink + "/users",
		resourceType: "users",
		resourceLink: dbLink,
	})
	if err != nil {
		return nil, err
	}
	entries, err := decodeFeed(body, transport.FeedKeyUsers)
	if err != nil {
		return nil, err
	}
	return toProperties(entries), nil
}

// DeleteUser deletes the user addressed by userLink.
func (c *Client) DeleteUser(ctx context.Context, userLink string) error {
	_, err := c.do(ctx, &request{
		method:       http.MethodDelete,
		path:         "/" + userLink,
		resourceType: "users",
		resourceLink: userLink,
	})
	return err
}
