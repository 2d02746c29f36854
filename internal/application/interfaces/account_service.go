package interfaces

import (
	"context"
	"encoding/json"

	"github.com/KretovDmitry/ordrin-go/internal/application/params"
	"github.com/KretovDmitry/ordrin-go/internal/domain/entities"
)

// AccountService represents all user account actions.
type AccountService interface {
	Create(ctx context.Context, email, password, firstName, lastName string) (json.RawMessage, error)
	GetAccountInfo(context.Context) (json.RawMessage, error)
	GetAddress(ctx context.Context, nick string) (json.RawMessage, error)
	SetAddress(ctx context.Context, nick string, addr *entities.Address) (json.RawMessage, error)
	DeleteAddress(ctx context.Context, nick string) (json.RawMessage, error)
	GetCard(ctx context.Context, nick string) (json.RawMessage, error)
	SetCard(context.Context, *params.SetCard) (json.RawMessage, error)
	DeleteCard(ctx context.Context, nick string) (json.RawMessage, error)
	GetOrderHistory(ctx context.Context, orderID string) (json.RawMessage, error)
	UpdatePassword(ctx context.Context, password string) (json.RawMessage, error)
}
