package interfaces

import (
	"context"
	"encoding/json"

	"github.com/KretovDmitry/ordrin-go/internal/application/params"
)

// OrderService represents all order actions.
type OrderService interface {
	Submit(context.Context, *params.SubmitOrder) (json.RawMessage, error)
}
