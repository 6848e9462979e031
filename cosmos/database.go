package cosmos

import (
	"context"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// ContainerAdmin is the container lifecycle capability of a database.
type ContainerAdmin interface {
	CreateContainer(ctx context.Context, id string, opts *ContainerOptions) (*Container, error)
	GetContainer(ctx context.Context, ref ContainerRef) (*Container, error)
	ListContainers(ctx context.Context) *ContainerIterator
	SetContainerProperties(ctx context.Context, ref ContainerRef, opts *ContainerOptions) error
	GetContainerProperties(ctx context.Context, ref ContainerRef) (transport.Properties, error)
	DeleteContainer(ctx context.Context, ref ContainerRef) error
}

// UserAdmin is the user lifecycle capability of a database.
type UserAdmin interface {
	CreateUser(ctx context.Context, id string) (*User, error)
	GetUser(ctx context.Context, ref UserRef) (*User, error)
	ListUsers(ctx context.Context) *UserIterator
	DeleteUser(ctx context.Context, ref UserRef) error
}

// Database represents one remote database resource. Handles are constructed
// by Client operations; a handle has no lifecycle of its own beyond its Go
// object scope.
type Database struct {
	tc transport.TransportContext

	// ID is the unique database name.
	ID string
	// Link is the database resource link, derived from the id.
	Link string
	// Properties is the snapshot captured when this handle was constructed.
	// It is not refreshed automatically.
	Properties transport.Properties
}

var (
	_ ContainerAdmin = (*Database)(nil)
	_ UserAdmin      = (*Database)(nil)
)

func newDatabase(tc transport.TransportContext, id string, props transport.Properties) *Database {
	return &Database{
		tc:         tc,
		ID:         id,
		Link:       databaseLink(id),
		Properties: props,
	}
}

// ContainerOptions holds the optional container properties for container
// creation and property updates. Nil fields are omitted from the payload
// entirely, never sent as null, so an update touches only the supplied
// subset.
type ContainerOptions struct {
	PartitionKey             map[string]any
	IndexingPolicy           map[string]any
	DefaultTTL               *int
	ConflictResolutionPolicy map[string]any
}

// containerDefinition builds the wire payload for a container definition:
// the id plus only the explicitly supplied optional properties.
func containerDefinition(id string, opts *ContainerOptions) transport.Properties {
	def := transport.Properties{"id": id}
	if opts == nil {
		return def
	}
	if opts.PartitionKey != nil {
		def["partitionKey"] = opts.PartitionKey
	}
	if opts.IndexingPolicy != nil {
		def["indexingPolicy"] = opts.IndexingPolicy
	}
	if opts.DefaultTTL != nil {
		def["defaultTtl"] = *opts.DefaultTTL
	}
	if opts.ConflictResolutionPolicy != nil {
		def["conflictResolutionPolicy"] = opts.ConflictResolutionPolicy
	}
	return def
}

// CreateContainer creates a new container with the given id. If a container
// with the id already exists the remote 409 conflict is returned unchanged.
func (db *Database) CreateContainer(ctx context.Context, id string, opts *ContainerOptions) (*Container, error) {
	props, err := db.tc.CreateContainer(ctx, db.Link, containerDefinition(id, opts))
	if err != nil {
		return nil, err
	}
	return newContainer(db, propString(props, "id"), props), nil
}

// GetContainer retrieves the container addressed by ref. The returned handle
// carries a properties snapshot from this read.
func (db *Database) GetContainer(ctx context.Context, ref ContainerRef) (*Container, error) {
	props, err := db.tc.ReadContainer(ctx, resolveContainerLink(db, ref))
	if err != nil {
		return nil, err
	}
	return newContainer(db, propString(props, "id"), props), nil
}

// ListContainers returns an iterator over the database's containers. The
// sequence is one-shot and not restartable.
func (db *Database) ListContainers(ctx context.Context) *ContainerIterator {
	return newContainerIterator(db, func() ([]transport.Properties, error) {
		return db.tc.ReadContainers(ctx, db.Link)
	})
}

// SetContainerProperties updates the properties of the container addressed by
// ref. Only the fields supplied in opts are part of the update payload;
// omitted fields are absent from it and unrelated properties are left alone.
// The change is persisted immediately.
func (db *Database) SetContainerProperties(ctx context.Context, ref ContainerRef, opts *ContainerOptions) error {
	id := containerRefID(ref)
	_, err := db.tc.ReplaceContainer(ctx, containerLinkFor(db.Link, id), containerDefinition(id, opts))
	return err
}

// GetContainerProperties returns the raw properties of the container
// addressed by ref.
func (db *Database) GetContainerProperties(ctx context.Context, ref ContainerRef) (transport.Properties, error) {
	return db.tc.ReadContainer(ctx, resolveContainerLink(db, ref))
}

// DeleteContainer deletes the container addressed by ref. Remote failures
// are returned unchanged.
func (db *Database) DeleteContainer(ctx context.Context, ref ContainerRef) error {
	return db.tc.DeleteContainer(ctx, resolveContainerLink(db, ref))
}

// User represents one remote user resource within a database.
type User struct {
	// ID is the unique user name within the database.
	ID string
	// Link is the user resource link.
	Link string
	// Properties is the snapshot captured when this handle was constructed.
	Properties transport.Properties
}

func newUser(dbLink, id string, props transport.Properties) *User {
	return &User{
		ID:         id,
		Link:       userLinkFor(dbLink, id),
		Properties: props,
	}
}

// CreateUser creates a new user with the given id.
func (db *Database) CreateUser(ctx context.Context, id string) (*User, error) {
	props, err := db.tc.CreateUser(ctx, db.Link, transport.Properties{"id": id})
	if err != nil {
		return nil, err
	}
	return newUser(db.Link, propString(props, "id"), props), nil
}

// GetUser retrieves the user addressed by ref.
func (db *Database) GetUser(ctx context.Context, ref UserRef) (*User, error) {
	props, err := db.tc.ReadUser(ctx, resolveUserLink(db, ref))
	if err != nil {
		return nil, err
	}
	return newUser(db.Link, propString(props, "id"), props), nil
}

// ListUsers returns an iterator over the database's users. The sequence is
// one-shot and not restartable.
func (db *Database) ListUsers(ctx context.Context) *UserIterator {
	return newUserIterator(db, func() ([]transport.Properties, error) {
		return db.tc.ReadUsers(ctx, db.Link)
	})
}

// DeleteUser deletes the user addressed by ref. Remote failures are returned
// unchanged.
func (db *Database) DeleteUser(ctx context.Context, ref UserRef) error {
	return db.tc.DeleteUser(ctx, resolveUserLink(db, ref))
}
