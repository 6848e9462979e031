package cosmos

import (
	"context"
	"net/http"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// Container represents one remote container resource. A container handle is
// owned by exactly one Database at construction time and records the session
// token of its most recent read.
type Container struct {
	tc transport.TransportContext

	// Database is the owning database handle.
	Database *Database
	// ID is the unique container name within the database.
	ID string
	// Link is the container resource link, derived from the owning database
	// link and the id.
	Link string
	// Properties is the snapshot captured when this handle was constructed.
	// It is not refreshed automatically.
	Properties transport.Properties

	sessionToken string
}

func newContainer(db *Database, id string, props transport.Properties) *Container {
	return &Container{
		tc:         db.tc,
		Database:   db,
		ID:         id,
		Link:       containerLinkFor(db.Link, id),
		Properties: props,
	}
}

// SessionToken returns the session token observed on the most recent read
// through this handle, or "" if no read has happened yet. Callers depending
// on session-consistent reads pass this token along on subsequent calls.
func (c *Container) SessionToken() string {
	return c.sessionToken
}

// updateSessionToken records the session token from a completed read. A
// response without a token leaves the previous one in place.
func (c *Container) updateSessionToken(headers http.Header) {
	if headers == nil {
		return
	}
	if token := headers.Get(transport.HeaderSessionToken); token != "" {
		c.sessionToken = token
	}
}

// GetItem retrieves the item with the given id. The container's session
// token is updated from the response as a side effect.
func (c *Container) GetItem(ctx context.Context, id string) (*Item, error) {
	doc, err := c.tc.ReadItem(ctx, itemLinkFor(c.Link, id))
	if err != nil {
		return nil, err
	}
	headers := c.tc.LastResponseHeaders()
	c.updateSessionToken(headers)
	return newItem(headers, doc), nil
}

// ListItems returns an iterator over the container's items. The remote call
// happens on the first Next and updates the container's session token; the
// sequence is one-shot and not restartable.
func (c *Container) ListItems(ctx context.Context, opts *transport.FeedOptions) *ItemIterator {
	return newItemIterator(func() ([]map[string]any, http.Header, error) {
		docs, err := c.tc.ReadItems(ctx, c.Link, opts)
		if err != nil {
			return nil, nil, err
		}
		headers := c.tc.LastResponseHeaders()
		c.updateSessionToken(headers)
		return docs, headers, nil
	})
}

// QueryItems returns an iterator over the items matching the query,
// optionally scoped to a single partition key. The remote call happens on
// the first Next and updates the container's session token; the sequence is
// one-shot and not restartable.
func (c *Container) QueryItems(ctx context.Context, query transport.Query, opts *transport.FeedOptions, partitionKey string) *ItemIterator {
	return newItemIterator(func() ([]map[string]any, http.Header, error) {
		docs, err := c.tc.QueryItems(ctx, c.Link, query, opts, partitionKey)
		if err != nil {
			return nil, nil, err
		}
		headers := c.tc.LastResponseHeaders()
		c.updateSessionToken(headers)
		return docs, headers, nil
	})
}

// CreateItem creates a new item from the given document body.
func (c *Container) CreateItem(ctx context.Context, body map[string]any) (*Item, error) {
	doc, err := c.tc.CreateItem(ctx, c.Link, body)
	if err != nil {
		return nil, err
	}
	return newItem(c.tc.LastResponseHeaders(), doc), nil
}

// UpsertItem creates the item or replaces an existing one with the same id.
func (c *Container) UpsertItem(ctx context.Context, body map[string]any) (*Item, error) {
	doc, err := c.tc.UpsertItem(ctx, c.Link, body)
	if err != nil {
		return nil, err
	}
	return newItem(c.tc.LastResponseHeaders(), doc), nil
}

// ReplaceItem replaces the item addressed by ref with the given document
// body. An *Item reference resolves through its embedded self-link.
func (c *Container) ReplaceItem(ctx context.Context, ref ItemRef, body map[string]any) (*Item, error) {
	doc, err := c.tc.ReplaceItem(ctx, resolveItemLink(c, ref), body)
	if err != nil {
		return nil, err
	}
	return newItem(c.tc.LastResponseHeaders(), doc), nil
}

// DeleteItem deletes the item addressed by ref. Remote failures are returned
// unchanged.
func (c *Container) DeleteItem(ctx context.Context, ref ItemRef) error {
	return c.tc.DeleteItem(ctx, resolveItemLink(c, ref))
}
