package cosmos

import (
	"context"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// Server-side programmability (stored procedures, triggers and user-defined
// functions) is part of the container surface but not implemented by this
// client. Every operation fails with ErrNotImplemented rather than silently
// succeeding.

func (c *Container) ListStoredProcedures(ctx context.Context, query transport.Query) ([]transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) GetStoredProcedure(ctx context.Context, id string) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) CreateStoredProcedure(ctx context.Context, def transport.Properties) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) UpsertStoredProcedure(ctx context.Context, def transport.Properties) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) DeleteStoredProcedure(ctx context.Context, id string) error {
	return ErrNotImplemented
}

func (c *Container) ListTriggers(ctx context.Context, query transport.Query) ([]transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) GetTrigger(ctx context.Context, id string) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) CreateTrigger(ctx context.Context, def transport.Properties) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) UpsertTrigger(ctx context.Context, def transport.Properties) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) DeleteTrigger(ctx context.Context, id string) error {
	return ErrNotImplemented
}

func (c *Container) ListUserDefinedFunctions(ctx context.Context, query transport.Query) ([]transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) GetUserDefinedFunction(ctx context.Context, id string) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) CreateUserDefinedFunction(ctx context.Context, def transport.Properties) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) UpsertUserDefinedFunction(ctx context.Context, def transport.Properties) (transport.Properties, error) {
	return nil, ErrNotImplemented
}

func (c *Container) DeleteUserDefinedFunction(ctx context.Context, id string) error {
	return ErrNotImplemented
}
