package cosmos

import "errors"

// ErrNotImplemented is returned by declared operations this client does not
// implement, such as the server-side programmability surface.
var ErrNotImplemented = errors.New("cosmos: operation not implemented by this client")
