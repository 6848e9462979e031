package cosmos_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unifiedui/cosmos-client/cosmos"
	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// TestCreateDatabase_Success tests creating a fresh database.
func TestCreateDatabase_Success(t *testing.T) {
	tc := new(mockTransport)
	props := transport.Properties{"id": "db1", "_self": "dbs/db1"}
	tc.On("CreateDatabase", mock.Anything, transport.Properties{"id": "db1"}).Return(props, nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	db, err := client.CreateDatabase(context.Background(), "db1", nil)

	require.NoError(t, err)
	assert.Equal(t, "db1", db.ID)
	assert.Equal(t, "dbs/db1", db.Link)
	assert.Equal(t, props, db.Properties)
	tc.AssertExpectations(t)
}

// TestCreateDatabase_ConflictReturnsExisting tests that a 409 on create falls
// back to fetching the existing database when FailIfExists is not set.
func TestCreateDatabase_ConflictReturnsExisting(t *testing.T) {
	tc := new(mockTransport)
	conflict := &transport.Error{StatusCode: http.StatusConflict, Code: "Conflict"}
	existing := transport.Properties{"id": "db1", "_self": "dbs/db1"}
	tc.On("CreateDatabase", mock.Anything, mock.Anything).Return(nil, conflict).Once()
	tc.On("ReadDatabase", mock.Anything, "dbs/db1").Return(existing, nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	db, err := client.CreateDatabase(context.Background(), "db1", nil)

	require.NoError(t, err)
	assert.Equal(t, "db1", db.ID)
	assert.Equal(t, existing, db.Properties)
	tc.AssertExpectations(t)
}

// TestCreateDatabase_FailIfExists tests that a 409 on create is returned
// unchanged when FailIfExists is set.
func TestCreateDatabase_FailIfExists(t *testing.T) {
	tc := new(mockTransport)
	conflict := &transport.Error{StatusCode: http.StatusConflict, Code: "Conflict"}
	tc.On("CreateDatabase", mock.Anything, mock.Anything).Return(nil, conflict).Once()

	client := cosmos.NewClientWithTransport(tc)
	db, err := client.CreateDatabase(context.Background(), "db1", &cosmos.CreateDatabaseOptions{FailIfExists: true})

	require.Error(t, err)
	assert.Nil(t, db)
	assert.True(t, transport.IsConflict(err))
	tc.AssertNotCalled(t, "ReadDatabase", mock.Anything, mock.Anything)
}

// TestCreateDatabase_OtherErrorPropagates tests that non-conflict failures
// are not special-cased into get-or-create.
func TestCreateDatabase_OtherErrorPropagates(t *testing.T) {
	tc := new(mockTransport)
	failure := &transport.Error{StatusCode: http.StatusServiceUnavailable, Code: "ServiceUnavailable"}
	tc.On("CreateDatabase", mock.Anything, mock.Anything).Return(nil, failure).Once()

	client := cosmos.NewClientWithTransport(tc)
	db, err := client.CreateDatabase(context.Background(), "db1", nil)

	require.Error(t, err)
	assert.Nil(t, db)
	assert.True(t, transport.IsStatus(err, http.StatusServiceUnavailable))
	tc.AssertNotCalled(t, "ReadDatabase", mock.Anything, mock.Anything)
}

// TestGetDatabase tests that the handle's id matches the requested one and
// that the link is derived from it.
func TestGetDatabase(t *testing.T) {
	tc := new(mockTransport)
	tc.On("ReadDatabase", mock.Anything, "dbs/mydb").Return(transport.Properties{"id": "mydb"}, nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	db, err := client.GetDatabase(context.Background(), "mydb")

	require.NoError(t, err)
	assert.Equal(t, "mydb", db.ID)
	assert.Equal(t, "dbs/mydb", db.Link)
	tc.AssertExpectations(t)
}

// TestListDatabases_Empty tests that an account with zero databases yields an
// empty sequence, not an error.
func TestListDatabases_Empty(t *testing.T) {
	tc := new(mockTransport)
	tc.On("ReadDatabases", mock.Anything).Return([]transport.Properties{}, nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	it := client.ListDatabases(context.Background())

	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

// TestListDatabases_Lazy tests that the remote call is deferred until the
// first Next.
func TestListDatabases_Lazy(t *testing.T) {
	tc := new(mockTransport)
	tc.On("ReadDatabases", mock.Anything).Return([]transport.Properties{{"id": "a"}}, nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	it := client.ListDatabases(context.Background())
	tc.AssertNotCalled(t, "ReadDatabases", mock.Anything)

	require.True(t, it.Next())
	assert.Equal(t, "a", it.Database().ID)
	tc.AssertExpectations(t)
}

// TestListDatabases_OneShot tests that a consumed iterator stays exhausted.
func TestListDatabases_OneShot(t *testing.T) {
	tc := new(mockTransport)
	tc.On("ReadDatabases", mock.Anything).Return([]transport.Properties{{"id": "a"}, {"id": "b"}}, nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	it := client.ListDatabases(context.Background())

	var ids []string
	for it.Next() {
		ids = append(ids, it.Database().ID)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"a", "b"}, ids)

	assert.False(t, it.Next())
	assert.Nil(t, it.Database())
	tc.AssertExpectations(t)
}

// TestQueryDatabases tests that the query is forwarded unchanged.
func TestQueryDatabases(t *testing.T) {
	tc := new(mockTransport)
	query := transport.Query{
		Text:       "SELECT * FROM r WHERE r.id=@id",
		Parameters: []transport.Parameter{{Name: "@id", Value: "db1"}},
	}
	tc.On("QueryDatabases", mock.Anything, query).Return([]transport.Properties{{"id": "db1"}}, nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	it := client.QueryDatabases(context.Background(), query)

	require.True(t, it.Next())
	assert.Equal(t, "db1", it.Database().ID)
	assert.False(t, it.Next())
	tc.AssertExpectations(t)
}

// TestQueryDatabases_FetchError tests that a failed fetch surfaces through
// Err after Next returns false.
func TestQueryDatabases_FetchError(t *testing.T) {
	tc := new(mockTransport)
	failure := &transport.Error{StatusCode: http.StatusBadRequest, Code: "BadRequest"}
	tc.On("QueryDatabases", mock.Anything, mock.Anything).Return(nil, failure).Once()

	client := cosmos.NewClientWithTransport(tc)
	it := client.QueryDatabases(context.Background(), transport.NewQuery("SELECT *"))

	assert.False(t, it.Next())
	assert.True(t, transport.IsStatus(it.Err(), http.StatusBadRequest))
}

// TestDeleteDatabase tests link derivation on delete.
func TestDeleteDatabase(t *testing.T) {
	tc := new(mockTransport)
	tc.On("DeleteDatabase", mock.Anything, "dbs/db1").Return(nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	require.NoError(t, client.DeleteDatabase(context.Background(), "db1"))
	tc.AssertExpectations(t)
}

// TestDeleteDatabase_NotFoundPropagates tests that a 404 on delete reaches
// the caller unchanged.
func TestDeleteDatabase_NotFoundPropagates(t *testing.T) {
	tc := new(mockTransport)
	notFound := &transport.Error{StatusCode: http.StatusNotFound, Code: "NotFound", Message: "database missing"}
	tc.On("DeleteDatabase", mock.Anything, "dbs/ghost").Return(notFound).Once()

	client := cosmos.NewClientWithTransport(tc)
	err := client.DeleteDatabase(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, transport.IsNotFound(err))
	te, ok := transport.AsError(err)
	require.True(t, ok)
	assert.Same(t, notFound, te)
}

// TestGetDatabaseProperties tests the raw property read.
func TestGetDatabaseProperties(t *testing.T) {
	tc := new(mockTransport)
	props := transport.Properties{"id": "db1", "_etag": `"abc"`}
	tc.On("ReadDatabase", mock.Anything, "dbs/db1").Return(props, nil).Once()

	client := cosmos.NewClientWithTransport(tc)
	got, err := client.GetDatabaseProperties(context.Background(), "db1")

	require.NoError(t, err)
	assert.Equal(t, props, got)
}

// TestNewClient_Validation tests config validation of the HTTP-backed
// constructor.
func TestNewClient_Validation(t *testing.T) {
	client, err := cosmos.NewClient(nil)
	require.Error(t, err)
	assert.Nil(t, client)

	client, err = cosmos.NewClient(&cosmos.ClientConfig{Key: "dGVzdA=="})
	require.Error(t, err)
	assert.Nil(t, client)

	client, err = cosmos.NewClient(&cosmos.ClientConfig{Endpoint: "http://localhost:8081"})
	require.Error(t, err)
	assert.Nil(t, client)
}
