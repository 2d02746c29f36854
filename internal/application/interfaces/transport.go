package interfaces

import (
	"context"
	"encoding/json"
)

// Transport performs a single call to the remote API. Path segments are
// joined with "/" relative to the configured base URL. With useSessionAuth
// the transport attaches the stored session credentials itself.
type Transport interface {
	Call(ctx context.Context, method string, path []string, params map[string]string, useSessionAuth bool) (json.RawMessage, error)
}
