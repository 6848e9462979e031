package emulator_test

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/cosmos-client/cosmos"
	"github.com/unifiedui/cosmos-client/cosmos/transport"
	"github.com/unifiedui/cosmos-client/internal/emulator"
)

// newTestFacade starts an emulator and returns a client speaking the real
// wire protocol against it.
func newTestFacade(t *testing.T) *cosmos.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(emulator.NewRouter())
	t.Cleanup(server.Close)

	client, err := cosmos.NewClient(&cosmos.ClientConfig{
		Endpoint: server.URL,
		Key:      base64.StdEncoding.EncodeToString([]byte("emulator-master-key")),
	})
	require.NoError(t, err)
	return client
}

// TestDatabaseLifecycle walks database create, get-or-create, query, list and
// delete end to end.
func TestDatabaseLifecycle(t *testing.T) {
	client := newTestFacade(t)
	ctx := context.Background()

	db, err := client.CreateDatabase(ctx, "testdb", nil)
	require.NoError(t, err)
	assert.Equal(t, "testdb", db.ID)
	assert.Equal(t, "dbs/testdb", db.Link)
	assert.Equal(t, "dbs/testdb", db.Properties["_self"])
	assert.NotEmpty(t, db.Properties["_rid"])

	// Second create without FailIfExists returns the existing database.
	again, err := client.CreateDatabase(ctx, "testdb", nil)
	require.NoError(t, err)
	assert.Equal(t, db.Properties["_rid"], again.Properties["_rid"])

	// With FailIfExists the conflict surfaces.
	_, err = client.CreateDatabase(ctx, "testdb", &cosmos.CreateDatabaseOptions{FailIfExists: true})
	require.Error(t, err)
	assert.True(t, transport.IsConflict(err))

	// Query by id finds exactly the one database.
	query := transport.Query{
		Text:       "SELECT * FROM r WHERE r.id=@id",
		Parameters: []transport.Parameter{{Name: "@id", Value: "testdb"}},
	}
	it := client.QueryDatabases(ctx, query)
	require.True(t, it.Next())
	assert.Equal(t, "testdb", it.Database().ID)
	assert.False(t, it.Next())
	require.NoError(t, it.Err())

	// A second database shows up in the listing alongside the first.
	_, err = client.CreateDatabase(ctx, "otherdb", nil)
	require.NoError(t, err)
	var ids []string
	for it := client.ListDatabases(ctx); it.Next(); {
		ids = append(ids, it.Database().ID)
	}
	assert.Equal(t, []string{"testdb", "otherdb"}, ids)

	require.NoError(t, client.DeleteDatabase(ctx, "otherdb"))
	err = client.DeleteDatabase(ctx, "otherdb")
	require.Error(t, err)
	assert.True(t, transport.IsNotFound(err))
}

// TestContainerLifecycle walks container create, read, partial update, list
// and delete end to end.
func TestContainerLifecycle(t *testing.T) {
	client := newTestFacade(t)
	ctx := context.Background()

	db, err := client.CreateDatabase(ctx, "testdb", nil)
	require.NoError(t, err)

	ttl := 3600
	container, err := db.CreateContainer(ctx, "orders", &cosmos.ContainerOptions{DefaultTTL: &ttl})
	require.NoError(t, err)
	assert.Equal(t, "orders", container.ID)
	assert.Equal(t, "dbs/testdb/colls/orders", container.Link)
	// JSON numbers decode as float64.
	assert.Equal(t, float64(3600), container.Properties["defaultTtl"])

	_, err = db.CreateContainer(ctx, "orders", nil)
	require.Error(t, err)
	assert.True(t, transport.IsConflict(err))

	newTTL := 60
	require.NoError(t, db.SetContainerProperties(ctx, container, &cosmos.ContainerOptions{DefaultTTL: &newTTL}))
	props, err := db.GetContainerProperties(ctx, cosmos.ContainerID("orders"))
	require.NoError(t, err)
	assert.Equal(t, float64(60), props["defaultTtl"])
	// System fields survive the replace.
	assert.Equal(t, container.Properties["_rid"], props["_rid"])

	var ids []string
	for it := db.ListContainers(ctx); it.Next(); {
		ids = append(ids, it.Container().ID)
	}
	assert.Equal(t, []string{"orders"}, ids)

	require.NoError(t, db.DeleteContainer(ctx, cosmos.ContainerID("orders")))
	_, err = db.GetContainer(ctx, cosmos.ContainerID("orders"))
	require.Error(t, err)
	assert.True(t, transport.IsNotFound(err))
}

// TestItemLifecycle walks item create, read, upsert, replace, query and
// delete end to end, checking session token movement on reads.
func TestItemLifecycle(t *testing.T) {
	client := newTestFacade(t)
	ctx := context.Background()

	db, err := client.CreateDatabase(ctx, "testdb", nil)
	require.NoError(t, err)
	container, err := db.CreateContainer(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Empty(t, container.SessionToken())

	created, err := container.CreateItem(ctx, map[string]any{"id": "o1", "total": 9.5})
	require.NoError(t, err)
	assert.Equal(t, "o1", created.ID())
	assert.Equal(t, "dbs/testdb/colls/orders/docs/o1", created.SelfLink())
	assert.NotEmpty(t, created.ResponseHeaders.Get(transport.HeaderSessionToken))
	// Writes do not advance the container's read session token.
	assert.Empty(t, container.SessionToken())

	_, err = container.CreateItem(ctx, map[string]any{"id": "o1"})
	require.Error(t, err)
	assert.True(t, transport.IsConflict(err))

	got, err := container.GetItem(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 9.5, got.Get("total"))
	assert.NotEmpty(t, container.SessionToken())

	// Upsert over the same id succeeds and changes the payload.
	_, err = container.UpsertItem(ctx, map[string]any{"id": "o1", "total": 12.0})
	require.NoError(t, err)
	got, err = container.GetItem(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.Get("total"))

	// Replace through the item's self link.
	replaced, err := container.ReplaceItem(ctx, got, map[string]any{"id": "o1", "total": 15.0, "note": "rush"})
	require.NoError(t, err)
	assert.Equal(t, 15.0, replaced.Get("total"))

	// An item created without an id gets a generated one.
	anon, err := container.CreateItem(ctx, map[string]any{"kind": "draft"})
	require.NoError(t, err)
	assert.NotEmpty(t, anon.ID())

	query := transport.Query{
		Text:       "SELECT * FROM r WHERE r.id=@id",
		Parameters: []transport.Parameter{{Name: "@id", Value: "o1"}},
	}
	var matched []string
	for it := container.QueryItems(ctx, query, nil, ""); it.Next(); {
		matched = append(matched, it.Item().ID())
	}
	assert.Equal(t, []string{"o1"}, matched)

	var all []string
	for it := container.ListItems(ctx, &transport.FeedOptions{MaxItemCount: 10}); it.Next(); {
		all = append(all, it.Item().ID())
	}
	assert.Len(t, all, 2)

	require.NoError(t, container.DeleteItem(ctx, replaced))
	_, err = container.GetItem(ctx, "o1")
	require.Error(t, err)
	assert.True(t, transport.IsNotFound(err))
}

// TestUserLifecycle walks user create, get, list and delete end to end.
func TestUserLifecycle(t *testing.T) {
	client := newTestFacade(t)
	ctx := context.Background()

	db, err := client.CreateDatabase(ctx, "testdb", nil)
	require.NoError(t, err)

	user, err := db.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)
	assert.Equal(t, "dbs/testdb/users/alice", user.Link)

	_, err = db.CreateUser(ctx, "alice")
	require.Error(t, err)
	assert.True(t, transport.IsConflict(err))

	got, err := db.GetUser(ctx, cosmos.UserID("alice"))
	require.NoError(t, err)
	assert.Equal(t, user.Link, got.Link)

	var ids []string
	for it := db.ListUsers(ctx); it.Next(); {
		ids = append(ids, it.User().ID)
	}
	assert.Equal(t, []string{"alice"}, ids)

	require.NoError(t, db.DeleteUser(ctx, user))
	_, err = db.GetUser(ctx, cosmos.UserID("alice"))
	require.Error(t, err)
	assert.True(t, transport.IsNotFound(err))
}
