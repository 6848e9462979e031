// Package transport defines the transport-context contract the cosmos object
// model is built on: the set of verb-oriented remote operations, the shared
// wire-level value types, and the status-coded failure signal.
//
// The object model in package cosmos never performs I/O itself; it forwards
// every call to a TransportContext and wraps the returned property maps.
package transport

import (
	"context"
	"net/http"
)

// Properties is the raw property map of a remote resource (database,
// container or user) as returned by the service.
type Properties map[string]any

// Parameter is a single named value in a parameterized query.
type Parameter struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Query is a SQL query with optional parameters, serialized in the service's
// parameterized-query format.
type Query struct {
	Text       string      `json:"query"`
	Parameters []Parameter `json:"parameters,omitempty"`
}

// NewQuery returns an unparameterized query.
func NewQuery(text string) Query {
	return Query{Text: text}
}

// FeedOptions holds per-call options for feed (listing and query) operations.
type FeedOptions struct {
	// MaxItemCount limits the number of results per page. Zero means the
	// service default.
	MaxItemCount int
	// SessionToken, when set, is echoed to the service so the read observes
	// at least the state captured by that token.
	SessionToken string
}

// TransportContext performs the authenticated remote operations the object
// model delegates to. Implementations record the headers of the most recently
// completed response and expose them through LastResponseHeaders, which is
// how session tokens are threaded back to callers.
//
// A TransportContext is not required to be safe for concurrent use; the
// object model drives it strictly sequentially.
type TransportContext interface {
	// Database operations.
	CreateDatabase(ctx context.Context, def Properties) (Properties, error)
	ReadDatabase(ctx context.Context, dbLink string) (Properties, error)
	ReadDatabases(ctx context.Context) ([]Properties, error)
	QueryDatabases(ctx context.Context, query Query) ([]Properties, error)
	DeleteDatabase(ctx context.Context, dbLink string) error

	// Container operations.
	CreateContainer(ctx context.Context, dbLink string, def Properties) (Properties, error)
	ReadContainer(ctx context.Context, collLink string) (Properties, error)
	ReadContainers(ctx context.Context, dbLink string) ([]Properties, error)
	ReplaceContainer(ctx context.Context, collLink string, def Properties) (Properties, error)
	DeleteContainer(ctx context.Context, collLink string) error

	// Item operations.
	CreateItem(ctx context.Context, collLink string, doc map[string]any) (map[string]any, error)
	UpsertItem(ctx context.Context, collLink string, doc map[string]any) (map[string]any, error)
	ReplaceItem(ctx context.Context, docLink string, doc map[string]any) (map[string]any, error)
	ReadItem(ctx context.Context, docLink string) (map[string]any, error)
	ReadItems(ctx context.Context, collLink string, opts *FeedOptions) ([]map[string]any, error)
	QueryItems(ctx context.Context, collLink string, query Query, opts *FeedOptions, partitionKey string) ([]map[string]any, error)
	DeleteItem(ctx context.Context, docLink string) error

	// User operations.
	CreateUser(ctx context.Context, dbLink string, def Properties) (Properties, error)
	ReadUser(ctx context.Context, userLink string) (Properties, error)
	ReadUsers(ctx context.Context, dbLink string) ([]Properties, error)
	DeleteUser(ctx context.Context, userLink string) error

	// LastResponseHeaders returns the headers of the most recently completed
	// response, or nil if no request has completed yet.
	LastResponseHeaders() http.Header
}
