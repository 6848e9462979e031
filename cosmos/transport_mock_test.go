package cosmos_test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// mockTransport is a mock implementation of transport.TransportContext.
type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) CreateDatabase(ctx context.Context, def transport.Properties) (transport.Properties, error) {
	args := m.Called(ctx, def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transport.Properties), args.Error(1)
}

func (m *mockTransport) ReadDatabase(ctx context.Context, dbLink string) (transport.Properties, error) {
	args := m.Called(ctx, dbLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transport.Properties), args.Error(1)
}

func (m *mockTransport) ReadDatabases(ctx context.Context) ([]transport.Properties, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transport.Properties), args.Error(1)
}

func (m *mockTransport) QueryDatabases(ctx context.Context, query transport.Query) ([]transport.Properties, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transport.Properties), args.Error(1)
}

func (m *mockTransport) DeleteDatabase(ctx context.Context, dbLink string) error {
	args := m.Called(ctx, dbLink)
	return args.Error(0)
}

func (m *mockTransport) CreateContainer(ctx context.Context, dbLink string, def transport.Properties) (transport.Properties, error) {
	args := m.Called(ctx, dbLink, def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transport.Properties), args.Error(1)
}

func (m *mockTransport) ReadContainer(ctx context.Context, collLink string) (transport.Properties, error) {
	args := m.Called(ctx, collLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transport.Properties), args.Error(1)
}

func (m *mockTransport) ReadContainers(ctx context.Context, dbLink string) ([]transport.Properties, error) {
	args := m.Called(ctx, dbLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transport.Properties), args.Error(1)
}

func (m *mockTransport) ReplaceContainer(ctx context.Context, collLink string, def transport.Properties) (transport.Properties, error) {
	args := m.Called(ctx, collLink, def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transport.Properties), args.Error(1)
}

func (m *mockTransport) DeleteContainer(ctx context.Context, collLink string) error {
	args := m.Called(ctx, collLink)
	return args.Error(0)
}

func (m *mockTransport) CreateItem(ctx context.Context, collLink string, doc map[string]any) (map[string]any, error) {
	args := m.Called(ctx, collLink, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *mockTransport) UpsertItem(ctx context.Context, collLink string, doc map[string]any) (map[string]any, error) {
	args := m.Called(ctx, collLink, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *mockTransport) ReplaceItem(ctx context.Context, docLink string, doc map[string]any) (map[string]any, error) {
	args := m.Called(ctx, docLink, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *mockTransport) ReadItem(ctx context.Context, docLink string) (map[string]any, error) {
	args := m.Called(ctx, docLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *mockTransport) ReadItems(ctx context.Context, collLink string, opts *transport.FeedOptions) ([]map[string]any, error) {
	args := m.Called(ctx, collLink, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *mockTransport) QueryItems(ctx context.Context, collLink string, query transport.Query, opts *transport.FeedOptions, partitionKey string) ([]map[string]any, error) {
	args := m.Called(ctx, collLink, query, opts, partitionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *mockTransport) DeleteItem(ctx context.Context, docLink string) error {
	args := m.Called(ctx, docLink)
	return args.Error(0)
}

func (m *mockTransport) CreateUser(ctx context.Context, dbLink string, def transport.Properties) (transport.Properties, error) {
	args := m.Called(ctx, dbLink, def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transport.Properties), args.Error(1)
}

func (m *mockTransport) ReadUser(ctx context.Context, userLink string) (transport.Properties, error) {
	args := m.Called(ctx, userLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transport.Properties), args.Error(1)
}

func (m *mockTransport) ReadUsers(ctx context.Context, dbLink string) ([]transport.Properties, error) {
	args := m.Called(ctx, dbLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transport.Properties), args.Error(1)
}

func (m *mockTransport) DeleteUser(ctx context.Context, userLink string) error {
	args := m.Called(ctx, userLink)
	return args.Error(0)
}

func (m *mockTransport) LastResponseHeaders() http.Header {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(http.Header)
}
